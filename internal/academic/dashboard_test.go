package academic

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-portal/internal/dto"
	"github.com/noah-isme/edu-portal/internal/models"
	"github.com/noah-isme/edu-portal/internal/store"
)

func newCachedService(t *testing.T) (*service, *store.Store, *miniredis.Miniredis) {
	t.Helper()

	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	st := store.New()
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewService(st, validate, client, time.Minute, zerolog.Nop()).(*service)

	clock := time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	return svc, st, mini
}

func TestStudentDashboardAggregation(t *testing.T) {
	svc, st, _ := newCachedService(t)
	teacher, sarah, classroom := seedActors(st)

	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	ids := make([]string, 0, 3)
	for _, title := range []string{"One", "Two", "Three"} {
		assignment, err := svc.CreateAssignment(teacher, dto.CreateAssignmentRequest{
			Title: title, Description: "work", DueDate: due, ClassroomID: classroom.ID,
		})
		require.NoError(t, err)
		ids = append(ids, assignment.ID)
	}

	st.Grades.Insert(models.Grade{StudentID: sarah.ID, Subject: "Mathematics", Letter: "A", Progress: 95})

	ctx := context.Background()

	_, err := svc.SubmitAssignment(ctx, dto.SubmitAssignmentRequest{
		AssignmentID: ids[0], StudentID: sarah.ID, FileReference: "one.pdf",
	})
	require.NoError(t, err)
	_, err = svc.GradeSubmission(ctx, ids[0], sarah.ID, "A")
	require.NoError(t, err)

	dashboard, err := svc.StudentDashboard(ctx, sarah.ID)
	require.NoError(t, err)
	require.False(t, dashboard.CacheHit)
	require.Equal(t, 3, dashboard.TotalAssignments)
	require.Equal(t, 1, dashboard.Submitted)
	require.Equal(t, 2, dashboard.Pending)
	require.Equal(t, 1, dashboard.Graded)
	require.NotNil(t, dashboard.AverageGrade)
	require.InDelta(t, 95, *dashboard.AverageGrade, 0.001)
}

func TestStudentDashboardCacheHitAndInvalidation(t *testing.T) {
	svc, st, _ := newCachedService(t)
	teacher, sarah, classroom := seedActors(st)

	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assignment, err := svc.CreateAssignment(teacher, dto.CreateAssignmentRequest{
		Title: "One", Description: "work", DueDate: due, ClassroomID: classroom.ID,
	})
	require.NoError(t, err)

	ctx := context.Background()

	first, err := svc.StudentDashboard(ctx, sarah.ID)
	require.NoError(t, err)
	require.False(t, first.CacheHit)
	require.Equal(t, 1, first.Pending)

	second, err := svc.StudentDashboard(ctx, sarah.ID)
	require.NoError(t, err)
	require.True(t, second.CacheHit)

	// A submission invalidates the cached aggregate.
	_, err = svc.SubmitAssignment(ctx, dto.SubmitAssignmentRequest{
		AssignmentID: assignment.ID, StudentID: sarah.ID, FileReference: "one.pdf",
	})
	require.NoError(t, err)

	third, err := svc.StudentDashboard(ctx, sarah.ID)
	require.NoError(t, err)
	require.False(t, third.CacheHit)
	require.Equal(t, 1, third.Submitted)
	require.Equal(t, 0, third.Pending)

	// Grading invalidates again.
	_, err = svc.GradeSubmission(ctx, assignment.ID, sarah.ID, "B+")
	require.NoError(t, err)

	fourth, err := svc.StudentDashboard(ctx, sarah.ID)
	require.NoError(t, err)
	require.False(t, fourth.CacheHit)
	require.Equal(t, 1, fourth.Graded)
}

func TestStudentDashboardWithoutCache(t *testing.T) {
	svc, st := newTestService(t)
	_, sarah, _ := seedActors(st)

	dashboard, err := svc.StudentDashboard(context.Background(), sarah.ID)
	require.NoError(t, err)
	require.False(t, dashboard.CacheHit)
	require.Equal(t, 0, dashboard.TotalAssignments)
	require.Nil(t, dashboard.AverageGrade)
}
