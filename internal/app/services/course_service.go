package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/helpers"
	"github.com/yigit/courseadmin/internal/pkg/logger"
	"github.com/yigit/courseadmin/internal/pkg/metrics"
	"github.com/yigit/courseadmin/internal/pkg/validation"
	"github.com/yigit/courseadmin/internal/pkg/viewcache"
)

const courseEntity = "course"

// CourseRepository is the course storage used by CourseService
type CourseRepository interface {
	Create(ctx context.Context, in *models.CourseInput) (uuid.UUID, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByNumber(ctx context.Context, number int) (bool, error)
	Update(ctx context.Context, id uuid.UUID, in *models.CourseInput) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	List(ctx context.Context, f repositories.CourseFilter) ([]models.Course, error)
	Count(ctx context.Context, f repositories.CourseFilter) (int64, error)
	Counts(ctx context.Context) (models.CourseCounts, error)
}

// CourseService runs course form actions and course views
type CourseService struct {
	repo  CourseRepository
	views *viewcache.Cache
	log   zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(repo CourseRepository, views *viewcache.Cache) *CourseService {
	return &CourseService{
		repo:  repo,
		views: views,
		log:   logger.Component("course_service"),
	}
}

// courseViews lists the cached views showing courses
var courseViews = []string{AdminCoursesPath, AdminPath, DashboardPath}

// Create validates the form, rejects duplicate names or numbers and inserts the course
func (s *CourseService) Create(ctx context.Context, form dto.CourseForm) FormResult[dto.CourseForm] {
	result := s.create(ctx, form)
	metrics.RecordFormAction(courseEntity, "create", result.Outcome.String())
	return result
}

func (s *CourseService) create(ctx context.Context, form dto.CourseForm) FormResult[dto.CourseForm] {
	input, errs := form.Decode()
	if errs.HasErrors() {
		return rejected(OutcomeInvalid, form, errs, MsgCreateCourseInvalid)
	}

	dupes, err := s.duplicates(ctx, input)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("Course uniqueness check failed")
		return rejected(OutcomeFailed, form, nil, MsgCreateCourseFailed)
	}
	if dupes.HasErrors() {
		return rejected(OutcomeDuplicate, form, dupes, MsgCreateCourseDuplicate)
	}

	id, err := s.repo.Create(ctx, input)
	if err != nil {
		if dupes := duplicateFromConstraint(err); dupes != nil {
			s.log.Warn().Str("name", input.Name).Int("number", input.CourseNumber).Msg("Concurrent duplicate course rejected by constraint")
			return rejected(OutcomeDuplicate, form, dupes, MsgCreateCourseDuplicate)
		}
		s.log.Error().Err(err).Str("name", input.Name).Msg("Failed to create course")
		return rejected(OutcomeFailed, form, nil, MsgCreateCourseFailed)
	}

	s.log.Info().Str("courseID", id.String()).Str("name", input.Name).Msg("Course created")
	s.views.Revalidate(ctx, courseViews...)
	return succeeded[dto.CourseForm](AdminCoursesPath)
}

// duplicates runs both existence lookups and reports every clash
func (s *CourseService) duplicates(ctx context.Context, in *models.CourseInput) (validation.FieldErrors, error) {
	errs := validation.FieldErrors{}

	nameTaken, err := s.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("checking course name: %w", err)
	}
	if nameTaken {
		errs.Add("name", dto.MsgCourseNameTaken)
	}

	numberTaken, err := s.repo.ExistsByNumber(ctx, in.CourseNumber)
	if err != nil {
		return nil, fmt.Errorf("checking course number: %w", err)
	}
	if numberTaken {
		errs.Add("number", dto.MsgCourseNumberTaken)
	}
	return errs, nil
}

func duplicateFromConstraint(err error) validation.FieldErrors {
	switch {
	case errors.Is(err, apperrors.ErrCourseNameExists):
		return validation.FieldErrors{"name": {dto.MsgCourseNameTaken}}
	case errors.Is(err, apperrors.ErrCourseNumberExists):
		return validation.FieldErrors{"number": {dto.MsgCourseNumberTaken}}
	default:
		return nil
	}
}

// Update validates the form and overwrites the course. Uniqueness is not pre-checked; a clash
// with another course fails on the unique constraints and is reported as a database error.
// Updating a missing course succeeds without changing anything.
func (s *CourseService) Update(ctx context.Context, id uuid.UUID, form dto.CourseForm) FormResult[dto.CourseForm] {
	result := s.update(ctx, id, form)
	metrics.RecordFormAction(courseEntity, "update", result.Outcome.String())
	return result
}

func (s *CourseService) update(ctx context.Context, id uuid.UUID, form dto.CourseForm) FormResult[dto.CourseForm] {
	input, errs := form.Decode()
	if errs.HasErrors() {
		return rejected(OutcomeInvalid, form, errs, MsgUpdateCourseInvalid)
	}

	rows, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.log.Error().Err(err).Str("courseID", id.String()).Msg("Failed to update course")
		return rejected(OutcomeFailed, form, nil, MsgUpdateCourseFailed)
	}
	if rows == 0 {
		s.log.Debug().Str("courseID", id.String()).Msg("Update matched no course")
	}

	s.views.Revalidate(ctx, courseViews...)
	return succeeded[dto.CourseForm](AdminCoursesPath)
}

// Delete removes a course. Deleting a missing course succeeds.
func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) DeleteResult {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("courseID", id.String()).Msg("Failed to delete course")
		metrics.RecordFormAction(courseEntity, "delete", OutcomeFailed.String())
		return DeleteResult{Outcome: OutcomeFailed, Message: MsgDeleteCourseFailed}
	}
	if rows == 0 {
		s.log.Debug().Str("courseID", id.String()).Msg("Delete matched no course")
	}

	s.views.Revalidate(ctx, courseViews...)
	metrics.RecordFormAction(courseEntity, "delete", OutcomeSuccess.String())
	return DeleteResult{Outcome: OutcomeSuccess, Message: MsgDeleteCourse}
}

// Get retrieves a course by id
func (s *CourseService) Get(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns one page of courses, cached under viewKey
func (s *CourseService) List(ctx context.Context, viewKey string, page helpers.Page, search string) (*dto.CourseListResponse, error) {
	return viewcache.Fetch(ctx, s.views, viewKey, func(ctx context.Context) (*dto.CourseListResponse, error) {
		filter := repositories.CourseFilter{Search: search, Offset: page.Offset(), Limit: page.Size}

		courses, err := s.repo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return nil, err
		}
		return &dto.CourseListResponse{
			Courses:    courses,
			Pagination: helpers.NewPaginationInfo(total, page),
		}, nil
	})
}

// Dashboard returns the active courses shown to non-admin users
func (s *CourseService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	return viewcache.Fetch(ctx, s.views, DashboardPath, func(ctx context.Context) (*dto.DashboardResponse, error) {
		courses, err := s.repo.List(ctx, repositories.CourseFilter{Status: models.CourseStatusActive})
		if err != nil {
			return nil, err
		}
		return &dto.DashboardResponse{ActiveCourses: courses}, nil
	})
}
