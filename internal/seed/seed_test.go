package seed

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func expectInserts(mock pgxmock.PgxPoolIface, table string, n int) {
	for i := 0; i < n; i++ {
		mock.ExpectExec("INSERT INTO " + table + " .* ON CONFLICT").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
}

func expectPrimaryTables(mock pgxmock.PgxPoolIface) {
	mock.ExpectExec(regexp.QuoteMeta(createExtension)).WillReturnResult(pgxmock.NewResult("CREATE EXTENSION", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	expectInserts(mock, "users", len(users))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	expectInserts(mock, "customers", len(customers))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS invoices").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	expectInserts(mock, "invoices", len(invoices))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS revenue").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	expectInserts(mock, "revenue", len(revenue))
}

func TestRunSeedsEverything(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	expectPrimaryTables(mock)
	mock.ExpectCommit()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS courses").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	expectInserts(mock, "courses", len(courses))

	err = New(mock, bcrypt.MinCost, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunRollsBackAndSkipsCourses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("relation exists with different shape")
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(createExtension)).WillReturnResult(pgxmock.NewResult("CREATE EXTENSION", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	expectInserts(mock, "users", len(users))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").WillReturnError(boom)
	mock.ExpectRollback()

	err = New(mock, bcrypt.MinCost, zerolog.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "seeding customers")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunReportsCourseFailureAfterCommit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("disk full")
	mock.ExpectBegin()
	expectPrimaryTables(mock)
	mock.ExpectCommit()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS courses").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec("INSERT INTO courses").WillReturnError(boom)

	err = New(mock, bcrypt.MinCost, zerolog.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSampleRowsHaveDistinctIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, inv := range invoices {
		assert.False(t, seen[inv.ID.String()], "duplicate invoice id %s", inv.ID)
		seen[inv.ID.String()] = true
	}
	assert.Equal(t, invoiceID(3), invoices[2].ID)

	names, numbers := map[string]bool{}, map[int]bool{}
	for _, c := range courses {
		assert.False(t, names[c.Name])
		assert.False(t, numbers[c.CourseNumber])
		names[c.Name], numbers[c.CourseNumber] = true, true
		assert.False(t, c.EndDate.Before(c.StartDate), c.Name)
	}
}
