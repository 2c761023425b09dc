package academic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/edu-portal/internal/dto"
	"github.com/noah-isme/edu-portal/internal/observability"
)

// StudentDashboard aggregates a student's assignment progress and grade
// average. The result is served cache-aside with a TTL when a cache client
// is configured; every submission or grading mutation for the student
// invalidates the cached entry.
func (s *service) StudentDashboard(ctx context.Context, studentID string) (dto.StudentDashboard, error) {
	cacheKey := dashboardCacheKey(studentID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var dashboard dto.StudentDashboard
			if unmarshalErr := json.Unmarshal([]byte(cached), &dashboard); unmarshalErr == nil {
				dashboard.CacheHit = true
				s.logger.Debug().Str("student_id", studentID).Msg("dashboard cache hit")
				observability.Operations().WithLabelValues("academic", "student_dashboard", "hit").Inc()
				return dashboard, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	dashboard := s.buildDashboard(studentID)

	if s.cache != nil {
		if payload, err := json.Marshal(dashboard); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	observability.Operations().WithLabelValues("academic", "student_dashboard", "miss").Inc()

	return dashboard, nil
}

func (s *service) buildDashboard(studentID string) dto.StudentDashboard {
	dashboard := dto.StudentDashboard{
		StudentID:   studentID,
		GeneratedAt: s.now(),
	}

	for _, assignment := range s.store.Assignments.All() {
		dashboard.TotalAssignments++

		sub, pos := assignment.SubmissionFor(studentID)
		if pos < 0 {
			dashboard.Pending++
			continue
		}

		dashboard.Submitted++
		if sub.IsGraded() {
			dashboard.Graded++
		}
	}

	if average, err := s.AverageGrade(studentID); err == nil {
		dashboard.AverageGrade = &average
	}

	return dashboard
}

func (s *service) invalidateDashboard(ctx context.Context, studentID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey(studentID)).Err(); err != nil {
		s.logger.Warn().Err(err).Str("student_id", studentID).Msg("failed to invalidate dashboard cache")
	}
}

func dashboardCacheKey(studentID string) string {
	return fmt.Sprintf("dashboard:student:%s", studentID)
}
