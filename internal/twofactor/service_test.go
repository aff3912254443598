package twofactor

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pquerna/otp/totp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/wheels-hub/wheels-hub/internal/shared"
)

type memoryRepo struct {
	rows map[int64]Settings
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[int64]Settings)}
}

func (r *memoryRepo) Get(ctx context.Context, userID int64) (Settings, error) {
	if s, ok := r.rows[userID]; ok {
		return s, nil
	}
	return Settings{UserID: userID}, nil
}

func (r *memoryRepo) SaveTOTP(ctx context.Context, userID int64, secret string, enabled bool) error {
	s := r.rows[userID]
	s.UserID = userID
	s.TOTPSecret = secret
	s.TOTPEnabled = enabled
	r.rows[userID] = s
	return nil
}

func (r *memoryRepo) SetEmailEnabled(ctx context.Context, userID int64, enabled bool) error {
	s := r.rows[userID]
	s.UserID = userID
	s.EmailEnabled = enabled
	r.rows[userID] = s
	return nil
}

func (r *memoryRepo) DisableTOTP(ctx context.Context, userID int64) error {
	s := r.rows[userID]
	s.TOTPEnabled = false
	s.TOTPSecret = ""
	r.rows[userID] = s
	return nil
}

type captureMailer struct {
	email string
	code  string
	sent  int
}

func (m *captureMailer) SendCode(ctx context.Context, email, code string) error {
	m.email = email
	m.code = code
	m.sent++
	return nil
}

func newTestService(t *testing.T) (*Service, *memoryRepo, *captureMailer) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repo := newMemoryRepo()
	mailer := &captureMailer{}
	return NewService(repo, client, mailer, "Wheels", time.Minute), repo, mailer
}

func TestTOTPEnrollConfirmVerify(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	enrollment, err := svc.EnrollTOTP(ctx, 7, "demo@wheels.local")
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.Contains(t, enrollment.URL, "otpauth://totp/")
	require.Contains(t, enrollment.URL, "Wheels")

	// Pending enrollment does not gate login yet.
	method, err := svc.ActiveMethod(ctx, 7)
	require.NoError(t, err)
	require.Empty(t, method)

	code, err := totp.GenerateCode(enrollment.Secret, time.Now().UTC())
	require.NoError(t, err)

	require.ErrorIs(t, svc.ConfirmTOTP(ctx, 7, "000000"), shared.ErrInvalidCode)
	require.False(t, repo.rows[7].TOTPEnabled)

	require.NoError(t, svc.ConfirmTOTP(ctx, 7, code))
	require.True(t, repo.rows[7].TOTPEnabled)

	method, err = svc.ActiveMethod(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, MethodTOTP, method)

	code, err = totp.GenerateCode(enrollment.Secret, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, svc.VerifyLogin(ctx, 7, MethodTOTP, code))
	require.ErrorIs(t, svc.VerifyLogin(ctx, 7, MethodTOTP, "999999"), shared.ErrInvalidCode)
}

func TestTOTPAcceptsAdjacentTimeStep(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	enrollment, err := svc.EnrollTOTP(ctx, 7, "demo@wheels.local")
	require.NoError(t, err)

	// A code from the previous 30s step stays valid with one step of skew.
	code, err := totp.GenerateCode(enrollment.Secret, time.Now().UTC().Add(-30*time.Second))
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmTOTP(ctx, 7, code))
}

func TestDisableTOTPClearsSecret(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.EnrollTOTP(ctx, 7, "demo@wheels.local")
	require.NoError(t, err)
	require.NoError(t, svc.DisableTOTP(ctx, 7))
	require.Empty(t, repo.rows[7].TOTPSecret)
	require.False(t, repo.rows[7].TOTPEnabled)
}

func TestEmailCodeFlow(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetEmailEnabled(ctx, 7, true))

	method, err := svc.ActiveMethod(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, MethodEmail, method)

	require.NoError(t, svc.SendEmailCode(ctx, 7, "demo@wheels.local"))
	require.Equal(t, 1, mailer.sent)
	require.Equal(t, "demo@wheels.local", mailer.email)
	require.Len(t, mailer.code, 6)

	require.ErrorIs(t, svc.VerifyLogin(ctx, 7, MethodEmail, "wrong!"), shared.ErrInvalidCode)
	require.NoError(t, svc.VerifyLogin(ctx, 7, MethodEmail, mailer.code))

	// Codes are single use.
	require.ErrorIs(t, svc.VerifyLogin(ctx, 7, MethodEmail, mailer.code), shared.ErrInvalidCode)
}

func TestEmailCodeAttemptLimit(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetEmailEnabled(ctx, 7, true))
	require.NoError(t, svc.SendEmailCode(ctx, 7, "demo@wheels.local"))

	wrong := "000000"
	if mailer.code == wrong {
		wrong = "111111"
	}
	for i := 0; i < maxEmailCodeAttempts; i++ {
		require.ErrorIs(t, svc.VerifyLogin(ctx, 7, MethodEmail, wrong), shared.ErrInvalidCode)
	}

	// The budget is spent: the real code is burned with it.
	require.ErrorIs(t, svc.VerifyLogin(ctx, 7, MethodEmail, mailer.code), shared.ErrInvalidCode)

	// A fresh issue starts a fresh budget.
	require.NoError(t, svc.SendEmailCode(ctx, 7, "demo@wheels.local"))
	if mailer.code == wrong {
		wrong = "222222"
	}
	require.ErrorIs(t, svc.VerifyLogin(ctx, 7, MethodEmail, wrong), shared.ErrInvalidCode)
	require.NoError(t, svc.VerifyLogin(ctx, 7, MethodEmail, mailer.code))
}

func TestEmailWinsWhenBothEnabled(t *testing.T) {
	s := Settings{TOTPEnabled: true, EmailEnabled: true}
	require.Equal(t, MethodEmail, s.ActiveMethod())
}
