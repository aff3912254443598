package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/shared"
)

// ActivityPort records auth events in the activity log.
type ActivityPort interface {
	Record(ctx context.Context, entry shared.ActivityEntry) error
}

// Service wraps authentication business rules.
type Service struct {
	repo     Repository
	activity ActivityPort
}

// NewService constructs a new Service.
func NewService(repo Repository, activity ActivityPort) *Service {
	return &Service{repo: repo, activity: activity}
}

// Authenticate validates email/password credentials. Every failure collapses
// into ErrInvalidCredentials so responses never leak which part was wrong.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

// Register creates a new account with a validated role.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	role, err := rbac.ParseRole(string(input.Role))
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}
	user, err := s.repo.CreateUser(ctx, strings.TrimSpace(input.Name), strings.ToLower(strings.TrimSpace(input.Email)), string(hash), role)
	if err != nil {
		return nil, err
	}
	s.recordActivity(ctx, user.ID, "auth:signup")
	return user, nil
}

// GetUser loads an account by ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// RegisterSession persists the session metadata and logs the sign-in.
func (s *Service) RegisterSession(ctx context.Context, id string, userID int64, expiresAt time.Time, ip, ua string) error {
	if err := s.repo.CreateSession(ctx, id, userID, expiresAt, ip, ua); err != nil {
		return err
	}
	s.recordActivity(ctx, userID, "auth:signin")
	return nil
}

// RemoveSession deletes a session record and logs the sign-out.
func (s *Service) RemoveSession(ctx context.Context, id string, userID int64) error {
	if err := s.repo.DeleteSession(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, userID, "auth:signout")
	return nil
}

func (s *Service) recordActivity(ctx context.Context, userID int64, action string) {
	if s.activity == nil {
		return
	}
	_ = s.activity.Record(ctx, shared.ActivityEntry{
		ActorID:  userID,
		Action:   action,
		Entity:   "user",
		EntityID: fmt.Sprintf("%d", userID),
	})
}
