package twofactor

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence for per-user MFA settings.
type Repository interface {
	// Get returns the settings row, or a zero Settings when none exists.
	Get(ctx context.Context, userID int64) (Settings, error)
	SaveTOTP(ctx context.Context, userID int64, secret string, enabled bool) error
	SetEmailEnabled(ctx context.Context, userID int64, enabled bool) error
	DisableTOTP(ctx context.Context, userID int64) error
}

// PGRepository implements Repository against the user_mfa table.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Get returns the settings row, or a zero Settings when none exists.
func (r *PGRepository) Get(ctx context.Context, userID int64) (Settings, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT user_id, totp_enabled, totp_secret, email_2fa_enabled, updated_at FROM user_mfa WHERE user_id = $1`,
		userID)
	var s Settings
	err := row.Scan(&s.UserID, &s.TOTPEnabled, &s.TOTPSecret, &s.EmailEnabled, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Settings{UserID: userID}, nil
		}
		return Settings{}, err
	}
	return s, nil
}

// SaveTOTP upserts the TOTP secret and enabled flag.
func (r *PGRepository) SaveTOTP(ctx context.Context, userID int64, secret string, enabled bool) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_mfa (user_id, totp_enabled, totp_secret, email_2fa_enabled, updated_at)
		 VALUES ($1, $2, $3, FALSE, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET totp_enabled = $2, totp_secret = $3, updated_at = NOW()`,
		userID, enabled, secret)
	return err
}

// SetEmailEnabled upserts the email second-factor flag.
func (r *PGRepository) SetEmailEnabled(ctx context.Context, userID int64, enabled bool) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_mfa (user_id, totp_enabled, totp_secret, email_2fa_enabled, updated_at)
		 VALUES ($1, FALSE, '', $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET email_2fa_enabled = $2, updated_at = NOW()`,
		userID, enabled)
	return err
}

// DisableTOTP clears the secret along with the flag so a stale secret can
// never be replayed after re-enrollment.
func (r *PGRepository) DisableTOTP(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE user_mfa SET totp_enabled = FALSE, totp_secret = '', updated_at = NOW() WHERE user_id = $1`,
		userID)
	return err
}

var _ Repository = (*PGRepository)(nil)
