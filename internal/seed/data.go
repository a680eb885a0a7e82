package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/yigit/courseadmin/internal/app/models"
)

type sampleUser struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
	Admin    bool
}

type sampleInvoice struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int
	Status     models.InvoiceStatus
	Date       string
}

// invoiceNamespace derives stable invoice ids so re-seeding never duplicates rows
var invoiceNamespace = uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")

func invoiceID(n int) uuid.UUID {
	return uuid.NewSHA1(invoiceNamespace, []byte{byte(n)})
}

var users = []sampleUser{
	{ID: uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"), Name: "User", Email: "user@nextmail.com", Password: "123456"},
	{ID: uuid.MustParse("8c2f6a1e-5b7d-4d3a-9e61-2b0f4c7a9d10"), Name: "Admin", Email: "admin@nextmail.com", Password: "123456", Admin: true},
}

var customers = []models.Customer{
	{ID: uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"), Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a"), Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a"), Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2"), Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9"), Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb"), Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

var invoices = []sampleInvoice{
	{ID: invoiceID(1), CustomerID: customers[0].ID, Amount: 15795, Status: models.InvoiceStatusPending, Date: "2022-12-06"},
	{ID: invoiceID(2), CustomerID: customers[1].ID, Amount: 20348, Status: models.InvoiceStatusPending, Date: "2022-11-14"},
	{ID: invoiceID(3), CustomerID: customers[4].ID, Amount: 3040, Status: models.InvoiceStatusPaid, Date: "2022-10-29"},
	{ID: invoiceID(4), CustomerID: customers[3].ID, Amount: 44800, Status: models.InvoiceStatusPaid, Date: "2023-09-10"},
	{ID: invoiceID(5), CustomerID: customers[5].ID, Amount: 34577, Status: models.InvoiceStatusPending, Date: "2023-08-05"},
	{ID: invoiceID(6), CustomerID: customers[2].ID, Amount: 54246, Status: models.InvoiceStatusPending, Date: "2023-07-16"},
	{ID: invoiceID(7), CustomerID: customers[0].ID, Amount: 666, Status: models.InvoiceStatusPending, Date: "2023-06-27"},
	{ID: invoiceID(8), CustomerID: customers[3].ID, Amount: 32545, Status: models.InvoiceStatusPaid, Date: "2023-06-09"},
	{ID: invoiceID(9), CustomerID: customers[4].ID, Amount: 1250, Status: models.InvoiceStatusPaid, Date: "2023-06-17"},
	{ID: invoiceID(10), CustomerID: customers[5].ID, Amount: 8546, Status: models.InvoiceStatusPaid, Date: "2023-06-07"},
	{ID: invoiceID(11), CustomerID: customers[1].ID, Amount: 500, Status: models.InvoiceStatusPaid, Date: "2023-08-19"},
	{ID: invoiceID(12), CustomerID: customers[5].ID, Amount: 8945, Status: models.InvoiceStatusPaid, Date: "2023-06-03"},
	{ID: invoiceID(13), CustomerID: customers[2].ID, Amount: 1000, Status: models.InvoiceStatusPaid, Date: "2022-06-05"},
}

var revenue = []models.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

var courses = []models.Course{
	{ID: uuid.MustParse("a1f0c6d2-3e4b-4c59-8d7a-1b2c3d4e5f60"), Name: "Forklift Safety", CourseNumber: 1042, StartDate: day("2024-09-02"), EndDate: day("2024-12-20"), MaxHours: 40, Status: models.CourseStatusActive},
	{ID: uuid.MustParse("b2e1d7c3-4f5a-4d6b-9e8f-2c3d4e5f6a71"), Name: "Welding Fundamentals", CourseNumber: 2210, StartDate: day("2024-10-07"), EndDate: day("2025-01-31"), MaxHours: 120, Status: models.CourseStatusActive},
	{ID: uuid.MustParse("c3f2e8d4-5a6b-4e7c-8f90-3d4e5f6a7b82"), Name: "First Aid Refresher", CourseNumber: 315, StartDate: day("2024-11-04"), EndDate: day("2024-11-08"), MaxHours: 8, Status: models.CourseStatusDisabled},
	{ID: uuid.MustParse("d4a3f9e5-6b7c-4f8d-9a01-4e5f6a7b8c93"), Name: "Blueprint Reading", CourseNumber: 4120, StartDate: day("2025-01-13"), EndDate: day("2025-04-25"), MaxHours: 60, Status: models.CourseStatusActive},
}
