package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/db"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/dberrors"
	"github.com/yigit/courseadmin/internal/pkg/logger"
)

// Unique constraint names created by the init migration
const (
	CourseNameConstraint   = "courses_name_key"
	CourseNumberConstraint = "courses_course_number_key"
)

var courseColumns = []string{"id", "name", "course_number", "start_date", "end_date", "max_hours", "status"}

// CourseFilter narrows a course listing
type CourseFilter struct {
	Status models.CourseStatus
	Search string
	Offset uint64
	Limit  int
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(conn db.DBTX) *CourseRepository {
	return &CourseRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// mapCourseUniqueViolation converts a unique violation on a course constraint into the matching sentinel
func mapCourseUniqueViolation(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, CourseNameConstraint):
		return apperrors.ErrCourseNameExists
	case dberrors.IsDuplicateConstraintError(err, CourseNumberConstraint):
		return apperrors.ErrCourseNumberExists
	default:
		return nil
	}
}

// Create inserts a course and returns its generated id
func (r *CourseRepository) Create(ctx context.Context, in *models.CourseInput) (uuid.UUID, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "course_number", "start_date", "end_date", "max_hours", "status").
		Values(in.Name, in.CourseNumber, in.StartDate, in.EndDate, in.MaxHours, string(in.Status)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if mapped := mapCourseUniqueViolation(err); mapped != nil {
			return uuid.Nil, mapped
		}
		logger.Error().Err(err).Str("name", in.Name).Msg("Error executing create course query")
		return uuid.Nil, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// ExistsByName reports whether any course already uses name
func (r *CourseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"name": name})
}

// ExistsByNumber reports whether any course already uses the course number
func (r *CourseRepository) ExistsByNumber(ctx context.Context, number int) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"course_number": number})
}

func (r *CourseRepository) exists(ctx context.Context, pred squirrel.Eq) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("courses").
		Where(pred).
		Limit(1).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build course exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// Update overwrites every mutable column of a course and returns the affected row count
func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, in *models.CourseInput) (int64, error) {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"name":          in.Name,
			"course_number": in.CourseNumber,
			"start_date":    in.StartDate,
			"end_date":      in.EndDate,
			"max_hours":     in.MaxHours,
			"status":        string(in.Status),
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing update course query")
		return 0, fmt.Errorf("error updating course: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes a course and returns the affected row count
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	sql, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing delete course query")
		return 0, fmt.Errorf("error deleting course: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// GetByID retrieves a course by id
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return course, nil
}

func (r *CourseRepository) applyFilter(q squirrel.SelectBuilder, f CourseFilter) squirrel.SelectBuilder {
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"status": string(f.Status)})
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.Expr("course_number::text ILIKE ?", pattern),
		})
	}
	return q
}

// List returns one page of courses ordered by start date
func (r *CourseRepository) List(ctx context.Context, f CourseFilter) ([]models.Course, error) {
	q := r.applyFilter(r.sb.Select(courseColumns...).From("courses"), f).
		OrderBy("start_date DESC", "name ASC")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit)).Offset(f.Offset)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Count returns the number of courses matching the filter, ignoring paging
func (r *CourseRepository) Count(ctx context.Context, f CourseFilter) (int64, error) {
	sql, args, err := r.applyFilter(r.sb.Select("COUNT(*)").From("courses"), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}

// Counts returns total and active course counts
func (r *CourseRepository) Counts(ctx context.Context) (models.CourseCounts, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", string(models.CourseStatusActive))).
		From("courses").
		ToSql()
	if err != nil {
		return models.CourseCounts{}, fmt.Errorf("failed to build course counts query: %w", err)
	}

	var counts models.CourseCounts
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&counts.Total, &counts.Active); err != nil {
		return models.CourseCounts{}, fmt.Errorf("error counting courses: %w", err)
	}
	return counts, nil
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var (
		c      models.Course
		status string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.CourseNumber, &c.StartDate, &c.EndDate, &c.MaxHours, &status); err != nil {
		return nil, err
	}
	c.Status = models.CourseStatus(status)
	return &c, nil
}
