package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wheels-hub/wheels-hub/internal/platform/db"
	"github.com/wheels-hub/wheels-hub/internal/shared"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListUsers returns all accounts.
func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, email, name, role, is_active, created_at, updated_at
		FROM users
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// SetActive flips an account's active flag. Deactivating also drops the
// account's persisted session rows in the same transaction and returns their
// IDs, so the caller can revoke the matching live sessions.
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) (User, []string, error) {
	var user User
	var revoked []string
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			UPDATE users
			SET is_active = $2, updated_at = now()
			WHERE id = $1
			RETURNING id, email, name, role, is_active, created_at, updated_at`, id, active)
		if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return shared.ErrNotFound
			}
			return err
		}
		if !active {
			rows, err := tx.Query(ctx, `DELETE FROM sessions WHERE user_id = $1 RETURNING id`, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			for rows.Next() {
				var sessionID string
				if err := rows.Scan(&sessionID); err != nil {
					return err
				}
				revoked = append(revoked, sessionID)
			}
			return rows.Err()
		}
		return nil
	})
	if err != nil {
		return User{}, nil, err
	}
	return user, revoked, nil
}
