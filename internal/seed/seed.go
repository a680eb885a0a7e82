// Package seed creates the sample tables and rows. Every row has a fixed identifier and is
// inserted with ON CONFLICT DO NOTHING, so running the seed again changes nothing.
package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/db"
	"github.com/yigit/courseadmin/internal/pkg/auth"
)

const createExtension = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`

const createUsers = `CREATE TABLE IF NOT EXISTS users (
	id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	admin BOOLEAN NOT NULL DEFAULT FALSE
)`

const createCustomers = `CREATE TABLE IF NOT EXISTS customers (
	id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	image_url VARCHAR(255) NOT NULL
)`

const createInvoices = `CREATE TABLE IF NOT EXISTS invoices (
	id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
	customer_id UUID NOT NULL REFERENCES customers (id),
	amount INT NOT NULL,
	status VARCHAR(255) NOT NULL,
	date DATE NOT NULL
)`

const createRevenue = `CREATE TABLE IF NOT EXISTS revenue (
	month VARCHAR(4) NOT NULL UNIQUE,
	revenue INT NOT NULL
)`

const createCourses = `CREATE TABLE IF NOT EXISTS courses (
	id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
	name VARCHAR(255) NOT NULL UNIQUE,
	course_number INT NOT NULL UNIQUE,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	max_hours INT NOT NULL,
	status VARCHAR(255) NOT NULL,
	CONSTRAINT courses_dates_ordered CHECK (end_date >= start_date)
)`

// Seeder loads the sample data set
type Seeder struct {
	pool       db.Pool
	bcryptCost int
	sb         squirrel.StatementBuilderType
	log        zerolog.Logger
}

// New creates a Seeder. bcryptCost 0 uses the bcrypt default.
func New(pool db.Pool, bcryptCost int, log zerolog.Logger) *Seeder {
	return &Seeder{
		pool:       pool,
		bcryptCost: bcryptCost,
		sb:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		log:        log,
	}
}

// Run seeds users, customers, invoices and revenue in one transaction, then courses on their
// own. A failure in the transactional part rolls all of it back and leaves courses untouched.
func (s *Seeder) Run(ctx context.Context) error {
	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, createExtension); err != nil {
			return fmt.Errorf("creating uuid-ossp extension: %w", err)
		}
		for _, step := range []struct {
			name string
			run  func(context.Context, db.DBTX) error
		}{
			{"users", s.seedUsers},
			{"customers", s.seedCustomers},
			{"invoices", s.seedInvoices},
			{"revenue", s.seedRevenue},
		} {
			if err := step.run(ctx, tx); err != nil {
				return fmt.Errorf("seeding %s: %w", step.name, err)
			}
			s.log.Debug().Str("table", step.name).Msg("Seeded table")
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Msg("Seed transaction rolled back")
		return err
	}

	if err := s.seedCourses(ctx, s.pool); err != nil {
		s.log.Error().Err(err).Msg("Seeding courses failed")
		return fmt.Errorf("seeding courses: %w", err)
	}

	s.log.Info().Msg("Database seeded")
	return nil
}

func (s *Seeder) insert(ctx context.Context, conn db.DBTX, q squirrel.InsertBuilder) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}
	_, err = conn.Exec(ctx, sql, args...)
	return err
}

func (s *Seeder) seedUsers(ctx context.Context, conn db.DBTX) error {
	if _, err := conn.Exec(ctx, createUsers); err != nil {
		return err
	}
	for _, u := range users {
		hash, err := auth.HashPassword(u.Password, s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", u.Email, err)
		}
		q := s.sb.Insert("users").
			Columns("id", "name", "email", "password", "admin").
			Values(u.ID, u.Name, u.Email, hash, u.Admin).
			Suffix("ON CONFLICT (id) DO NOTHING")
		if err := s.insert(ctx, conn, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context, conn db.DBTX) error {
	if _, err := conn.Exec(ctx, createCustomers); err != nil {
		return err
	}
	for _, c := range customers {
		q := s.sb.Insert("customers").
			Columns("id", "name", "email", "image_url").
			Values(c.ID, c.Name, c.Email, c.ImageURL).
			Suffix("ON CONFLICT (id) DO NOTHING")
		if err := s.insert(ctx, conn, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedInvoices(ctx context.Context, conn db.DBTX) error {
	if _, err := conn.Exec(ctx, createInvoices); err != nil {
		return err
	}
	for _, inv := range invoices {
		q := s.sb.Insert("invoices").
			Columns("id", "customer_id", "amount", "status", "date").
			Values(inv.ID, inv.CustomerID, inv.Amount, string(inv.Status), day(inv.Date)).
			Suffix("ON CONFLICT (id) DO NOTHING")
		if err := s.insert(ctx, conn, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedRevenue(ctx context.Context, conn db.DBTX) error {
	if _, err := conn.Exec(ctx, createRevenue); err != nil {
		return err
	}
	for _, rev := range revenue {
		q := s.sb.Insert("revenue").
			Columns("month", "revenue").
			Values(rev.Month, rev.Revenue).
			Suffix("ON CONFLICT (month) DO NOTHING")
		if err := s.insert(ctx, conn, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedCourses(ctx context.Context, conn db.DBTX) error {
	if _, err := conn.Exec(ctx, createCourses); err != nil {
		return err
	}
	// no conflict target: a course created through the forms may already hold a sample name or number
	for _, c := range courses {
		q := s.sb.Insert("courses").
			Columns("id", "name", "course_number", "start_date", "end_date", "max_hours", "status").
			Values(c.ID, c.Name, c.CourseNumber, c.StartDate, c.EndDate, c.MaxHours, string(c.Status)).
			Suffix("ON CONFLICT DO NOTHING")
		if err := s.insert(ctx, conn, q); err != nil {
			return err
		}
	}
	return nil
}
