package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edu-portal/internal/academic"
	"github.com/noah-isme/edu-portal/internal/config"
	"github.com/noah-isme/edu-portal/internal/messaging"
	"github.com/noah-isme/edu-portal/internal/seed"
	"github.com/noah-isme/edu-portal/internal/session"
	"github.com/noah-isme/edu-portal/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)

	st := store.New()

	var fixtures seed.Data
	if cfg.SeedDemoData {
		fixtures = seed.Apply(st)
		logger.Info().Int("users", st.Users.Len()).Int("chats", st.Chats.Len()).Msg("demo fixtures seeded")
	}

	cache, err := connectRedis(cfg.RedisURL)
	if err != nil {
		logger.Warn().Err(err).Msg("dashboard cache unavailable, recomputing per call")
		cache = nil
	}
	if cache != nil {
		defer cache.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	sessions := session.NewManager(st, validate, logger)
	messages := messaging.NewService(st, validate, logger)
	academics := academic.NewService(st, validate, cache, cfg.DashboardCacheTTL, logger)

	if !cfg.SeedDemoData {
		logger.Info().Msg("empty store ready; embed the portal core and register users to begin")
		return
	}

	// Smoke scenario over the seeded data, standing in for the embedding UI.
	ctx := context.Background()

	teacher, err := sessions.Login(fixtures.Teacher.Email, "password")
	if err != nil {
		logger.Fatal().Err(err).Msg("seeded teacher login failed")
	}

	for _, chat := range messages.ListChats(teacher, "") {
		logger.Info().
			Str("chat", chat.DisplayName).
			Str("preview", chat.Preview).
			Bool("unread", chat.Unread).
			Msg("conversation")
	}

	views, err := academics.ListAssignments(fixtures.Student, academic.FilterSubmitted)
	if err != nil {
		logger.Fatal().Err(err).Msg("assignment listing failed")
	}
	for _, view := range views {
		logger.Info().
			Str("assignment", view.Assignment.Title).
			Str("grade", view.Submission.Grade).
			Msg("submitted assignment")
	}

	dashboard, err := academics.StudentDashboard(ctx, fixtures.Student.ID)
	if err != nil {
		logger.Fatal().Err(err).Msg("dashboard aggregation failed")
	}
	event := logger.Info().
		Int("total", dashboard.TotalAssignments).
		Int("submitted", dashboard.Submitted).
		Int("pending", dashboard.Pending)
	if dashboard.AverageGrade != nil {
		event = event.Float64("average", *dashboard.AverageGrade)
	}
	event.Msg("student dashboard")

	sessions.Logout()
	logger.Info().Str("app", cfg.AppName).Msg("portal core smoke scenario complete")
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = zerolog.ConsoleWriter{Out: os.Stdout}
	if cfg.IsDevelopment() {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}

func connectRedis(url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
