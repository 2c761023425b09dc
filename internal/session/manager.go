// Package session authenticates users and holds the current actor for the
// lifetime of an interactive session.
package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edu-portal/internal/apperr"
	"github.com/noah-isme/edu-portal/internal/dto"
	"github.com/noah-isme/edu-portal/internal/models"
	"github.com/noah-isme/edu-portal/internal/observability"
	"github.com/noah-isme/edu-portal/internal/store"
)

// ErrInvalidCredentials indicates no user matches the (email, secret) pair.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperr.ErrAuthentication)

// ErrEmailTaken indicates the email is already registered to another account.
var ErrEmailTaken = fmt.Errorf("email already registered: %w", apperr.ErrConflict)

// Manager owns the current actor and credential lookup against the user
// collection.
type Manager struct {
	store    *store.Store
	validate *validator.Validate
	logger   zerolog.Logger
	now      func() time.Time

	mu      sync.RWMutex
	current *models.User
}

// NewManager constructs a session manager bound to the given store.
func NewManager(st *store.Store, validate *validator.Validate, logger zerolog.Logger) *Manager {
	return &Manager{
		store:    st,
		validate: validate,
		logger:   logger.With().Str("component", "session_manager").Logger(),
		now:      time.Now,
	}
}

// Login authenticates on an exact match of email and secret and sets the
// matched user as the current actor.
func (m *Manager) Login(email, secret string) (models.User, error) {
	user, ok := m.store.Users.Find(func(u models.User) bool {
		return u.Email == email && u.Secret == secret
	})
	if !ok {
		observability.Operations().WithLabelValues("session", "login", "denied").Inc()
		return models.User{}, ErrInvalidCredentials
	}

	m.setCurrent(&user)
	observability.Operations().WithLabelValues("session", "login", "ok").Inc()
	m.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")

	return user, nil
}

// Register creates a new account and sets it as the current actor.
// Email uniqueness is enforced; a duplicate registration fails with a
// conflict instead of producing a second record the login invariant
// could no longer distinguish.
func (m *Manager) Register(req dto.RegisterRequest) (models.User, error) {
	if err := m.validate.Struct(req); err != nil {
		return models.User{}, fmt.Errorf("invalid registration: %v: %w", err, apperr.ErrValidation)
	}

	role := models.Role(req.Role)
	if _, ok := m.store.Users.Find(func(u models.User) bool {
		return strings.EqualFold(u.Email, req.Email)
	}); ok {
		observability.Operations().WithLabelValues("session", "register", "conflict").Inc()
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		ID:          m.store.NewID(),
		Email:       req.Email,
		Secret:      req.Secret,
		DisplayName: req.Name,
		Role:        role,
		Avatar:      req.Avatar,
		CreatedAt:   m.now(),
	}
	if user.Avatar == "" {
		user.Avatar = DefaultAvatar(role)
	}

	switch role {
	case models.RoleTeacher:
		user.Teacher = &models.TeacherProfile{Subjects: req.Subjects}
	case models.RoleStudent:
		user.Student = &models.StudentProfile{GradeLevel: req.GradeLevel}
	case models.RoleParent:
		for _, childID := range req.ChildIDs {
			child, ok := m.store.Users.Get(childID)
			if !ok || !child.IsStudent() {
				return models.User{}, apperr.Validation("child %q does not resolve to a student", childID)
			}
		}
		user.Parent = &models.ParentProfile{ChildIDs: req.ChildIDs}
	}

	m.store.Users.Insert(user)
	m.setCurrent(&user)
	observability.Operations().WithLabelValues("session", "register", "ok").Inc()
	m.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")

	return user, nil
}

// Logout clears the current actor. Calling it with no actor is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}

// CurrentActor returns the logged-in user, if any.
func (m *Manager) CurrentActor() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return models.User{}, false
	}
	return *m.current, true
}

func (m *Manager) setCurrent(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = user
}

// DefaultAvatar returns the avatar marker assigned when registration does
// not supply one.
func DefaultAvatar(role models.Role) string {
	switch role {
	case models.RoleTeacher:
		return "👨‍🏫"
	case models.RoleStudent:
		return "👩‍🎓"
	default:
		return "👨‍👧"
	}
}
