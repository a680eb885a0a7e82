package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/helpers"
)

func validCourseForm() dto.CourseForm {
	return dto.CourseForm{
		Name:   "Intro",
		Number: "100",
		Start:  "2024-01-08",
		End:    "2024-03-29",
		Max:    "30",
		Status: "active",
	}
}

func existingIntro() models.Course {
	return models.Course{
		ID: uuid.New(), Name: "Intro", CourseNumber: 100,
		StartDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC),
		MaxHours:  30, Status: models.CourseStatusActive,
	}
}

func TestCourseCreate_Success(t *testing.T) {
	repo := newFakeCourses()
	views, store := newViews()
	svc := NewCourseService(repo, views)
	ctx := context.Background()

	for _, key := range []string{AdminCoursesPath, AdminCoursesPath + "?page=2", AdminPath, DashboardPath, AdminInvoicesPath} {
		require.NoError(t, store.Set(ctx, key, []byte(`{}`)))
	}

	result := svc.Create(ctx, validCourseForm())

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, AdminCoursesPath, result.Redirect)
	assert.Equal(t, 1, repo.inserts)
	assert.False(t, cached(t, store, AdminCoursesPath))
	assert.False(t, cached(t, store, AdminCoursesPath+"?page=2"))
	assert.False(t, cached(t, store, AdminPath))
	assert.False(t, cached(t, store, DashboardPath))
	assert.True(t, cached(t, store, AdminInvoicesPath))
}

func TestCourseCreate_InvalidEchoesSubmission(t *testing.T) {
	repo := newFakeCourses()
	views, _ := newViews()
	svc := NewCourseService(repo, views)

	form := validCourseForm()
	form.Name = "   "
	form.End = "2024-01-01"

	result := svc.Create(context.Background(), form)

	assert.Equal(t, OutcomeInvalid, result.Outcome)
	assert.Equal(t, MsgCreateCourseInvalid, result.State.Message)
	assert.Equal(t, []string{dto.MsgCourseName}, result.State.Errors["name"])
	assert.Equal(t, []string{dto.MsgCourseDateOrder}, result.State.Errors["end"])
	require.NotNil(t, result.State.Data)
	assert.Equal(t, form, *result.State.Data)
	assert.Zero(t, repo.inserts)
}

func TestCourseCreate_Duplicates(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*dto.CourseForm)
		want   map[string][]string
	}{
		{"name taken", func(f *dto.CourseForm) { f.Number = "101" }, map[string][]string{"name": {dto.MsgCourseNameTaken}}},
		{"number taken", func(f *dto.CourseForm) { f.Name = "Advanced" }, map[string][]string{"number": {dto.MsgCourseNumberTaken}}},
		{"both taken", func(f *dto.CourseForm) {}, map[string][]string{
			"name":   {dto.MsgCourseNameTaken},
			"number": {dto.MsgCourseNumberTaken},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCourses(existingIntro())
			views, _ := newViews()
			svc := NewCourseService(repo, views)
			form := validCourseForm()
			tt.modify(&form)

			result := svc.Create(context.Background(), form)

			assert.Equal(t, OutcomeDuplicate, result.Outcome)
			assert.Equal(t, MsgCreateCourseDuplicate, result.State.Message)
			assert.Equal(t, tt.want, map[string][]string(result.State.Errors))
			assert.Zero(t, repo.inserts)
		})
	}
}

func TestCourseCreate_ConstraintRaceReportsDuplicate(t *testing.T) {
	repo := newFakeCourses()
	repo.raceErr = apperrors.ErrCourseNumberExists
	views, _ := newViews()
	svc := NewCourseService(repo, views)

	result := svc.Create(context.Background(), validCourseForm())

	assert.Equal(t, OutcomeDuplicate, result.Outcome)
	assert.Equal(t, []string{dto.MsgCourseNumberTaken}, result.State.Errors["number"])
}

func TestCourseCreate_DatabaseErrorsAreGeneric(t *testing.T) {
	for _, op := range []string{"exists", "create"} {
		t.Run(op, func(t *testing.T) {
			repo := newFakeCourses()
			repo.failOn = op
			views, store := newViews()
			require.NoError(t, store.Set(context.Background(), AdminCoursesPath, []byte(`{}`)))
			svc := NewCourseService(repo, views)

			result := svc.Create(context.Background(), validCourseForm())

			assert.Equal(t, OutcomeFailed, result.Outcome)
			assert.Equal(t, MsgCreateCourseFailed, result.State.Message)
			assert.Empty(t, result.State.Errors)
			assert.NotContains(t, result.State.Message, errDB.Error())
			assert.True(t, cached(t, store, AdminCoursesPath))
		})
	}
}

func TestCourseUpdate(t *testing.T) {
	intro := existingIntro()
	repo := newFakeCourses(intro)
	views, _ := newViews()
	svc := NewCourseService(repo, views)
	ctx := context.Background()

	form := validCourseForm()
	form.Max = "45"
	result := svc.Update(ctx, intro.ID, form)
	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, 45, repo.rows[intro.ID].MaxHours)

	missing := svc.Update(ctx, uuid.New(), form)
	assert.Equal(t, OutcomeSuccess, missing.Outcome)

	form.Start, form.End = "2024-05-01", "2024-04-01"
	invalid := svc.Update(ctx, intro.ID, form)
	assert.Equal(t, OutcomeInvalid, invalid.Outcome)
	assert.Equal(t, MsgUpdateCourseInvalid, invalid.State.Message)
	assert.Equal(t, []string{dto.MsgCourseDateOrder}, invalid.State.Errors["end"])

	repo.failOn = "update"
	failed := svc.Update(ctx, intro.ID, validCourseForm())
	assert.Equal(t, OutcomeFailed, failed.Outcome)
	assert.Equal(t, MsgUpdateCourseFailed, failed.State.Message)
}

func TestCourseDelete(t *testing.T) {
	intro := existingIntro()
	repo := newFakeCourses(intro)
	views, _ := newViews()
	svc := NewCourseService(repo, views)
	ctx := context.Background()

	assert.Equal(t, DeleteResult{Outcome: OutcomeSuccess, Message: MsgDeleteCourse}, svc.Delete(ctx, intro.ID))
	assert.Empty(t, repo.rows)
	assert.Equal(t, DeleteResult{Outcome: OutcomeSuccess, Message: MsgDeleteCourse}, svc.Delete(ctx, intro.ID))

	repo.failOn = "delete"
	assert.Equal(t, DeleteResult{Outcome: OutcomeFailed, Message: MsgDeleteCourseFailed}, svc.Delete(ctx, intro.ID))
}

func TestCourseListIsCachedUntilRevalidated(t *testing.T) {
	repo := newFakeCourses(existingIntro())
	views, _ := newViews()
	svc := NewCourseService(repo, views)
	ctx := context.Background()
	page := helpers.NormalizePage(1, 10)

	first, err := svc.List(ctx, AdminCoursesPath, page, "")
	require.NoError(t, err)
	_, err = svc.List(ctx, AdminCoursesPath, page, "")
	require.NoError(t, err)
	assert.Len(t, first.Courses, 1)
	assert.Equal(t, 1, repo.lists)

	form := validCourseForm()
	form.Name, form.Number = "Second", "200"
	require.Equal(t, OutcomeSuccess, svc.Create(ctx, form).Outcome)

	again, err := svc.List(ctx, AdminCoursesPath, page, "")
	require.NoError(t, err)
	assert.Len(t, again.Courses, 2)
	assert.Equal(t, 2, repo.lists)
}

func TestCourseDashboardShowsActiveOnly(t *testing.T) {
	active := existingIntro()
	disabled := existingIntro()
	disabled.ID, disabled.Name, disabled.Status = uuid.New(), "Old", models.CourseStatusDisabled
	views, _ := newViews()
	svc := NewCourseService(newFakeCourses(active, disabled), views)

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, dash.ActiveCourses, 1)
	assert.Equal(t, "Intro", dash.ActiveCourses[0].Name)
}

func TestCourseListPropagatesLoadErrors(t *testing.T) {
	repo := newFakeCourses()
	repo.failOn = "list"
	views, _ := newViews()
	svc := NewCourseService(repo, views)

	_, err := svc.List(context.Background(), AdminCoursesPath, helpers.NormalizePage(1, 10), "")
	assert.ErrorIs(t, err, errDB)
}
