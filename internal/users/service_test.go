package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wheels-hub/wheels-hub/internal/shared"
)

type memoryRepo struct {
	users    []User
	sessions map[int64][]string
}

func (m *memoryRepo) ListUsers(_ context.Context) ([]User, error) {
	out := make([]User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *memoryRepo) SetActive(_ context.Context, id int64, active bool) (User, []string, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].IsActive = active
			var revoked []string
			if !active {
				revoked = m.sessions[id]
				delete(m.sessions, id)
			}
			return m.users[i], revoked, nil
		}
	}
	return User{}, nil, shared.ErrNotFound
}

type captureActivity struct {
	entries []shared.ActivityEntry
}

func (c *captureActivity) Record(_ context.Context, entry shared.ActivityEntry) error {
	c.entries = append(c.entries, entry)
	return nil
}

type captureSessions struct {
	revoked []string
}

func (c *captureSessions) Revoke(_ context.Context, id string) error {
	c.revoked = append(c.revoked, id)
	return nil
}

func TestSetActiveRecordsActor(t *testing.T) {
	repo := &memoryRepo{users: []User{
		{ID: 1, Email: "admin@wheels.local", Role: "admin", IsActive: true},
		{ID: 2, Email: "user@wheels.local", Role: "user", IsActive: true},
	}}
	activity := &captureActivity{}
	service := NewService(repo, activity, &captureSessions{})

	user, err := service.SetActive(context.Background(), 1, 2, false)
	require.NoError(t, err)
	require.False(t, user.IsActive)

	require.Len(t, activity.entries, 1)
	entry := activity.entries[0]
	require.Equal(t, int64(1), entry.ActorID)
	require.Equal(t, "users:set_active", entry.Action)
	require.Equal(t, "2", entry.EntityID)
	require.Equal(t, false, entry.Meta["active"])
}

func TestDeactivationRevokesLiveSessions(t *testing.T) {
	repo := &memoryRepo{
		users: []User{
			{ID: 2, Email: "user@wheels.local", Role: "user", IsActive: true},
		},
		sessions: map[int64][]string{2: {"sess-a", "sess-b"}},
	}
	sessions := &captureSessions{}
	service := NewService(repo, &captureActivity{}, sessions)

	user, err := service.SetActive(context.Background(), 1, 2, false)
	require.NoError(t, err)
	require.False(t, user.IsActive)
	require.Equal(t, []string{"sess-a", "sess-b"}, sessions.revoked)

	// Reactivation must not touch sessions.
	_, err = service.SetActive(context.Background(), 1, 2, true)
	require.NoError(t, err)
	require.Len(t, sessions.revoked, 2)
}

func TestSetActiveUnknownUser(t *testing.T) {
	service := NewService(&memoryRepo{}, &captureActivity{}, &captureSessions{})

	_, err := service.SetActive(context.Background(), 1, 99, true)
	require.ErrorIs(t, err, shared.ErrNotFound)

	users, err := service.ListUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)
}
