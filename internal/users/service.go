package users

import (
	"context"
	"strconv"

	"github.com/wheels-hub/wheels-hub/internal/shared"
)

// RepositoryPort defines data access methods for accounts.
type RepositoryPort interface {
	ListUsers(ctx context.Context) ([]User, error)
	SetActive(ctx context.Context, id int64, active bool) (User, []string, error)
}

// ActivityPort records admin actions in the activity log.
type ActivityPort interface {
	Record(ctx context.Context, entry shared.ActivityEntry) error
}

// SessionPort revokes live sessions by ID.
type SessionPort interface {
	Revoke(ctx context.Context, id string) error
}

// Service handles account management rules.
type Service struct {
	repo     RepositoryPort
	activity ActivityPort
	sessions SessionPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, activity ActivityPort, sessions SessionPort) *Service {
	return &Service{repo: repo, activity: activity, sessions: sessions}
}

// ListUsers returns all accounts.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}

// SetActive flips an account's active flag and records who did it.
// Deactivation revokes every live session the account still holds.
func (s *Service) SetActive(ctx context.Context, actorID, id int64, active bool) (User, error) {
	user, revoked, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return User{}, err
	}
	if s.sessions != nil {
		for _, sessionID := range revoked {
			if err := s.sessions.Revoke(ctx, sessionID); err != nil {
				return User{}, err
			}
		}
	}
	if s.activity != nil {
		_ = s.activity.Record(ctx, shared.ActivityEntry{
			ActorID:  actorID,
			Action:   "users:set_active",
			Entity:   "user",
			EntityID: strconv.FormatInt(id, 10),
			Meta:     map[string]any{"active": active},
		})
	}
	return user, nil
}
