// Package academic manages assignments, submissions, grade aggregation and
// announcements, with role-scoped derived views for the consuming screens.
package academic

import (
	"context"
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edu-portal/internal/apperr"
	"github.com/noah-isme/edu-portal/internal/dto"
	"github.com/noah-isme/edu-portal/internal/models"
	"github.com/noah-isme/edu-portal/internal/observability"
	"github.com/noah-isme/edu-portal/internal/store"
)

// StatusFilter narrows an assignment listing by the viewing student's
// submission state.
type StatusFilter string

const (
	// FilterAll lists every assignment.
	FilterAll StatusFilter = "all"
	// FilterPending lists assignments the student has not submitted.
	FilterPending StatusFilter = "pending"
	// FilterSubmitted lists assignments the student has submitted.
	FilterSubmitted StatusFilter = "submitted"
)

// Valid reports whether the filter is one of the known values.
func (f StatusFilter) Valid() bool {
	switch f {
	case FilterAll, FilterPending, FilterSubmitted:
		return true
	}
	return false
}

var (
	// ErrAssignmentNotFound indicates the assignment id does not resolve.
	ErrAssignmentNotFound = fmt.Errorf("assignment not found: %w", apperr.ErrNotFound)
	// ErrClassroomNotFound indicates the classroom id does not resolve.
	ErrClassroomNotFound = fmt.Errorf("classroom not found: %w", apperr.ErrNotFound)
	// ErrSubmissionNotFound indicates no submission exists for the
	// (assignment, student) pair.
	ErrSubmissionNotFound = fmt.Errorf("submission not found: %w", apperr.ErrNotFound)
	// ErrDuplicateSubmission indicates the student already submitted and did
	// not ask for a resubmission.
	ErrDuplicateSubmission = fmt.Errorf("student already submitted: %w", apperr.ErrConflict)
	// ErrNoGrades indicates an average was requested for a student with no
	// grade records.
	ErrNoGrades = fmt.Errorf("student has no grade records: %w", apperr.ErrValidation)
)

// letterScores is the fixed letter-to-numeric scale used for averaging.
// Unrecognised letters fall back to the record's own progress value.
var letterScores = map[string]float64{
	"A": 95, "A-": 92,
	"B+": 88, "B": 85, "B-": 82,
	"C+": 78, "C": 75, "C-": 72,
	"D": 65, "F": 55,
}

// Service exposes the academic operations consumed by the view layer.
type Service interface {
	ListAssignments(actor models.User, filter StatusFilter) ([]dto.AssignmentView, error)
	CreateAssignment(actor models.User, req dto.CreateAssignmentRequest) (models.Assignment, error)
	SubmitAssignment(ctx context.Context, req dto.SubmitAssignmentRequest) (models.Submission, error)
	GradeSubmission(ctx context.Context, assignmentID, studentID, grade string) (models.Submission, error)
	StudentGrades(studentID string) []models.Grade
	AverageGrade(studentID string) (float64, error)
	AddAnnouncement(req dto.CreateAnnouncementRequest) (models.Announcement, error)
	ListAnnouncements() []models.Announcement
	Classrooms() []models.Classroom
	ClassroomByID(id string) (models.Classroom, error)
	Materials(classroomID string) ([]models.Material, error)
	StudentDashboard(ctx context.Context, studentID string) (dto.StudentDashboard, error)
}

type service struct {
	store     *store.Store
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewService constructs the academic service. The cache client is optional;
// a nil client disables dashboard caching.
func NewService(st *store.Store, validate *validator.Validate, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) Service {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &service{
		store:     st,
		validate:  validate,
		sanitizer: bluemonday.UGCPolicy(),
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger.With().Str("component", "academic_service").Logger(),
		now:       time.Now,
	}
}

// ListAssignments returns assignments in insertion order, filtered by the
// actor's submission state. The filter only applies to student viewers; a
// teacher has no submission of their own, so every filter behaves as "all".
func (s *service) ListAssignments(actor models.User, filter StatusFilter) ([]dto.AssignmentView, error) {
	if filter == "" {
		filter = FilterAll
	}
	if !filter.Valid() {
		return nil, apperr.Validation("unknown status filter %q", filter)
	}

	assignments := s.store.Assignments.All()
	views := make([]dto.AssignmentView, 0, len(assignments))
	for _, assignment := range assignments {
		view := dto.AssignmentView{Assignment: assignment}

		if actor.IsStudent() {
			if sub, pos := assignment.SubmissionFor(actor.ID); pos >= 0 {
				view.Submitted = true
				view.Submission = &sub
			}

			if filter == FilterPending && view.Submitted {
				continue
			}
			if filter == FilterSubmitted && !view.Submitted {
				continue
			}
		}

		views = append(views, view)
	}

	return views, nil
}

// CreateAssignment adds an assignment with an empty submission sequence.
// Only teachers create assignments.
func (s *service) CreateAssignment(actor models.User, req dto.CreateAssignmentRequest) (models.Assignment, error) {
	if !actor.IsTeacher() {
		return models.Assignment{}, apperr.Validation("only teachers can create assignments")
	}

	if err := s.validate.Struct(req); err != nil {
		return models.Assignment{}, fmt.Errorf("invalid assignment: %v: %w", err, apperr.ErrValidation)
	}

	if _, ok := s.store.Classrooms.Get(req.ClassroomID); !ok {
		return models.Assignment{}, ErrClassroomNotFound
	}

	assignment := models.Assignment{
		ID:          s.store.NewID(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		DueDate:     req.DueDate,
		ClassroomID: req.ClassroomID,
		Submissions: []models.Submission{},
		CreatedAt:   s.now(),
	}
	s.store.Assignments.Insert(assignment)

	observability.Operations().WithLabelValues("academic", "create_assignment", "ok").Inc()
	s.logger.Info().Str("assignment_id", assignment.ID).Str("classroom_id", assignment.ClassroomID).Msg("assignment created")

	return assignment, nil
}

// SubmitAssignment records a student's submission with a pending grade.
// A second submission by the same student is rejected unless the request
// asks for a resubmission, in which case the prior record is replaced in
// place, keeping its position in the sequence.
func (s *service) SubmitAssignment(ctx context.Context, req dto.SubmitAssignmentRequest) (models.Submission, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Submission{}, fmt.Errorf("invalid submission: %v: %w", err, apperr.ErrValidation)
	}

	submission := models.Submission{
		StudentID:     req.StudentID,
		FileReference: req.FileReference,
		SubmittedAt:   s.now(),
		Grade:         models.GradePending,
	}

	var conflict bool
	ok := s.store.Assignments.Update(req.AssignmentID, func(a models.Assignment) models.Assignment {
		_, pos := a.SubmissionFor(req.StudentID)
		if pos < 0 {
			a.Submissions = append(a.Submissions, submission)
			return a
		}
		if !req.Resubmit {
			conflict = true
			return a
		}
		a.Submissions[pos] = submission
		return a
	})
	if !ok {
		return models.Submission{}, ErrAssignmentNotFound
	}
	if conflict {
		observability.Operations().WithLabelValues("academic", "submit_assignment", "conflict").Inc()
		return models.Submission{}, ErrDuplicateSubmission
	}

	s.invalidateDashboard(ctx, req.StudentID)

	observability.Operations().WithLabelValues("academic", "submit_assignment", "ok").Inc()
	s.logger.Info().
		Str("assignment_id", req.AssignmentID).
		Str("student_id", req.StudentID).
		Bool("resubmit", req.Resubmit).
		Msg("assignment submitted")

	return submission, nil
}

// GradeSubmission updates the grade of the submission identified by
// (assignmentID, studentID) in place.
func (s *service) GradeSubmission(ctx context.Context, assignmentID, studentID, grade string) (models.Submission, error) {
	grade = strings.TrimSpace(grade)
	if grade == "" {
		return models.Submission{}, apperr.Validation("grade is required")
	}

	var graded models.Submission
	var found bool
	ok := s.store.Assignments.Update(assignmentID, func(a models.Assignment) models.Assignment {
		_, pos := a.SubmissionFor(studentID)
		if pos < 0 {
			return a
		}
		a.Submissions[pos].Grade = grade
		graded = a.Submissions[pos]
		found = true
		return a
	})
	if !ok {
		return models.Submission{}, ErrAssignmentNotFound
	}
	if !found {
		return models.Submission{}, ErrSubmissionNotFound
	}

	s.invalidateDashboard(ctx, studentID)

	observability.Operations().WithLabelValues("academic", "grade_submission", "ok").Inc()
	s.logger.Info().
		Str("assignment_id", assignmentID).
		Str("student_id", studentID).
		Str("grade", grade).
		Msg("submission graded")

	return graded, nil
}

// StudentGrades returns the student's grade records in insertion order.
func (s *service) StudentGrades(studentID string) []models.Grade {
	grades := s.store.Grades.All()
	out := make([]models.Grade, 0, len(grades))
	for _, grade := range grades {
		if grade.StudentID == studentID {
			out = append(out, grade)
		}
	}
	return out
}

// AverageGrade maps each grade letter onto the fixed numeric scale, falling
// back to the record's own progress value for unrecognised letters, and
// returns the mean rounded to two decimals. A student with no grade records
// is a validation failure, not a zero average.
func (s *service) AverageGrade(studentID string) (float64, error) {
	grades := s.StudentGrades(studentID)
	if len(grades) == 0 {
		return 0, ErrNoGrades
	}

	var total float64
	for _, grade := range grades {
		score, ok := letterScores[grade.Letter]
		if !ok {
			score = float64(grade.Progress)
		}
		total += score
	}

	mean := total / float64(len(grades))
	return math.Round(mean*100) / 100, nil
}

// AddAnnouncement records a school-wide notice. The message body is
// sanitised the same way user-generated content is everywhere else.
func (s *service) AddAnnouncement(req dto.CreateAnnouncementRequest) (models.Announcement, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Announcement{}, fmt.Errorf("invalid announcement: %v: %w", err, apperr.ErrValidation)
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}

	announcement := models.Announcement{
		ID:         s.store.NewID(),
		Title:      strings.TrimSpace(req.Title),
		Message:    html.UnescapeString(s.sanitizer.Sanitize(req.Message)),
		Date:       date,
		AuthorName: req.AuthorName,
	}
	s.store.Announcements.Insert(announcement)

	observability.Operations().WithLabelValues("academic", "add_announcement", "ok").Inc()
	s.logger.Info().Str("announcement_id", announcement.ID).Msg("announcement added")

	return announcement, nil
}

// ListAnnouncements returns announcements in insertion order. Any
// most-recent-first presentation is the consumer's concern.
func (s *service) ListAnnouncements() []models.Announcement {
	return s.store.Announcements.All()
}

// Classrooms returns every classroom in insertion order.
func (s *service) Classrooms() []models.Classroom {
	return s.store.Classrooms.All()
}

// ClassroomByID returns a single classroom.
func (s *service) ClassroomByID(id string) (models.Classroom, error) {
	classroom, ok := s.store.Classrooms.Get(id)
	if !ok {
		return models.Classroom{}, ErrClassroomNotFound
	}
	return classroom, nil
}

// Materials returns the classroom's material sequence.
func (s *service) Materials(classroomID string) ([]models.Material, error) {
	classroom, ok := s.store.Classrooms.Get(classroomID)
	if !ok {
		return nil, ErrClassroomNotFound
	}
	return classroom.Materials, nil
}
