package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/middleware"
	"github.com/yigit/courseadmin/internal/pkg/helpers"
)

// CourseActions is the course service surface used by CourseController
type CourseActions interface {
	Create(ctx context.Context, form dto.CourseForm) services.FormResult[dto.CourseForm]
	Update(ctx context.Context, id uuid.UUID, form dto.CourseForm) services.FormResult[dto.CourseForm]
	Delete(ctx context.Context, id uuid.UUID) services.DeleteResult
	Get(ctx context.Context, id uuid.UUID) (*models.Course, error)
	List(ctx context.Context, viewKey string, page helpers.Page, search string) (*dto.CourseListResponse, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

// CourseController handles course pages and form actions
type CourseController struct {
	courses CourseActions
	logger  zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courses CourseActions, logger zerolog.Logger) *CourseController {
	return &CourseController{courses: courses, logger: logger}
}

// CreateCourse handles the create course form
// @Summary Create a course
// @Description Validates the submission, rejects duplicate names or numbers and inserts the course
// @Tags courses
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param request body dto.CourseForm true "Course form"
// @Success 303 "Redirect to /admin/courses"
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 422 {object} dto.CourseFormState "Invalid or duplicate fields"
// @Failure 500 {object} dto.CourseFormState "Database error"
// @Router /admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var form dto.CourseForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		c.logger.Warn().Err(err).Msg("Unreadable course submission")
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondForm(ctx, c.courses.Create(ctx.Request.Context(), form))
}

// UpdateCourse handles the edit course form
// @Summary Update a course
// @Description Applies the same field rules as create and updates the course. A missing id is a no-op.
// @Tags courses
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param id path string true "Course ID" format(uuid)
// @Param request body dto.CourseForm true "Course form"
// @Success 303 "Redirect to /admin/courses"
// @Failure 400 {object} dto.ErrorResponse "Malformed id or body"
// @Failure 422 {object} dto.CourseFormState "Invalid fields"
// @Failure 500 {object} dto.CourseFormState "Database error"
// @Router /admin/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := middleware.UUIDParam(ctx, "id")
	if !ok {
		return
	}

	var form dto.CourseForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		c.logger.Warn().Err(err).Str("courseID", id.String()).Msg("Unreadable course submission")
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondForm(ctx, c.courses.Update(ctx.Request.Context(), id, form))
}

// DeleteCourse handles the delete course action
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" format(uuid)
// @Success 200 {object} dto.MessageResponse "Deleted Course."
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 500 {object} dto.MessageResponse "Database error"
// @Router /admin/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := middleware.UUIDParam(ctx, "id")
	if !ok {
		return
	}

	respondDelete(ctx, c.courses.Delete(ctx.Request.Context(), id))
}

// ListCourses returns a page of courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Param query query string false "Search by name or number"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page := helpers.ParsePaginationParams(ctx)

	list, err := c.courses.List(ctx.Request.Context(), viewKey(ctx), page, ctx.Query("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(list))
}

// GetCourse returns one course rendered as form values for editing
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.CourseForm}
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := middleware.UUIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courses.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseFromModel(course)))
}

// Dashboard returns the active courses for signed-in non-admin users
// @Summary Member dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *CourseController) Dashboard(ctx *gin.Context) {
	view, err := c.courses.Dashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}
