package dto

import "github.com/yigit/courseadmin/internal/app/models"

// OverviewResponse is the admin landing view
type OverviewResponse struct {
	Courses       models.CourseCounts  `json:"courses"`
	Invoices      models.InvoiceTotals `json:"invoices"`
	CustomerCount int64                `json:"customerCount"`
	Revenue       []models.Revenue     `json:"revenue"`
}

// DashboardResponse is the non-admin landing view
type DashboardResponse struct {
	ActiveCourses []models.Course `json:"activeCourses"`
}

// CourseListResponse is a page of courses
type CourseListResponse struct {
	Courses    []models.Course `json:"courses"`
	Pagination PaginationInfo  `json:"pagination"`
}

// InvoiceListResponse is a page of invoices joined with their customer
type InvoiceListResponse struct {
	Invoices   []models.Invoice `json:"invoices"`
	Pagination PaginationInfo   `json:"pagination"`
}
