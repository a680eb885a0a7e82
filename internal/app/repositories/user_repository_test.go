package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
)

func TestUserRepository_GetByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT id, name, email, password, admin FROM users WHERE email").
		WithArgs("user@nextmail.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password", "admin"}).
			AddRow(id, "User", "user@nextmail.com", "$2a$10$hash", true))

	user, err := repo.GetByEmail(context.Background(), "user@nextmail.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.True(t, user.Admin)
	assert.Equal(t, "$2a$10$hash", user.Password)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("nobody@nextmail.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByEmail(context.Background(), "nobody@nextmail.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCustomerRepository_ListCountRevenue(t *testing.T) {
	mock := newMock(t)
	repo := NewCustomerRepository(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT id, name, email, image_url FROM customers ORDER BY name ASC").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "image_url"}).
			AddRow(id, "Amy Burns", "amy@burns.com", "/customers/amy-burns.png"))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT month, revenue FROM revenue").
		WillReturnRows(pgxmock.NewRows([]string{"month", "revenue"}).AddRow("Jan", 2000).AddRow("Feb", 1800))

	customers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Amy Burns", customers[0].Name)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	revenue, err := repo.Revenue(context.Background())
	require.NoError(t, err)
	assert.Len(t, revenue, 2)
	assert.Equal(t, "Feb", revenue[1].Month)
}
