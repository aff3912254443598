package twofactor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/redis/go-redis/v9"

	"github.com/wheels-hub/wheels-hub/internal/shared"
)

// Mailer delivers email verification codes. The server wires this to an
// asynq enqueue so delivery never blocks the login path.
type Mailer interface {
	SendCode(ctx context.Context, email, code string) error
}

// Service owns MFA enrollment and login verification.
type Service struct {
	repo         Repository
	redis        *redis.Client
	mailer       Mailer
	issuer       string
	emailCodeTTL time.Duration
}

// NewService constructs a Service.
func NewService(repo Repository, redisClient *redis.Client, mailer Mailer, issuer string, emailCodeTTL time.Duration) *Service {
	if issuer == "" {
		issuer = "Wheels"
	}
	if emailCodeTTL <= 0 {
		emailCodeTTL = 10 * time.Minute
	}
	return &Service{repo: repo, redis: redisClient, mailer: mailer, issuer: issuer, emailCodeTTL: emailCodeTTL}
}

// validateOpts mirrors the authenticator-app contract: SHA1, 6 digits, 30s
// period, one step of clock skew either way.
var validateOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// Settings returns the user's MFA settings.
func (s *Service) Settings(ctx context.Context, userID int64) (Settings, error) {
	return s.repo.Get(ctx, userID)
}

// ActiveMethod reports which second factor gates login, "" when none.
func (s *Service) ActiveMethod(ctx context.Context, userID int64) (string, error) {
	settings, err := s.repo.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return settings.ActiveMethod(), nil
}

// EnrollTOTP generates a fresh secret and stores it disabled until the user
// confirms with a valid code.
func (s *Service) EnrollTOTP(ctx context.Context, userID int64, accountName string) (Enrollment, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: accountName,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return Enrollment{}, fmt.Errorf("twofactor: generate totp key: %w", err)
	}
	if err := s.repo.SaveTOTP(ctx, userID, key.Secret(), false); err != nil {
		return Enrollment{}, err
	}
	return Enrollment{Secret: key.Secret(), URL: key.URL()}, nil
}

// ConfirmTOTP enables TOTP after the user proves possession of the secret.
func (s *Service) ConfirmTOTP(ctx context.Context, userID int64, code string) error {
	settings, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if settings.TOTPSecret == "" {
		return errors.New("twofactor: no pending enrollment")
	}
	if !s.validateTOTP(settings.TOTPSecret, code) {
		return shared.ErrInvalidCode
	}
	return s.repo.SaveTOTP(ctx, userID, settings.TOTPSecret, true)
}

// DisableTOTP turns the authenticator factor off.
func (s *Service) DisableTOTP(ctx context.Context, userID int64) error {
	return s.repo.DisableTOTP(ctx, userID)
}

// SetEmailEnabled toggles the email-code factor.
func (s *Service) SetEmailEnabled(ctx context.Context, userID int64, enabled bool) error {
	return s.repo.SetEmailEnabled(ctx, userID, enabled)
}

// VerifyLogin checks the second-factor code during login.
func (s *Service) VerifyLogin(ctx context.Context, userID int64, method, code string) error {
	switch method {
	case MethodTOTP:
		settings, err := s.repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if !settings.TOTPEnabled || !s.validateTOTP(settings.TOTPSecret, code) {
			return shared.ErrInvalidCode
		}
		return nil
	case MethodEmail:
		return s.consumeEmailCode(ctx, userID, code)
	default:
		return fmt.Errorf("twofactor: unknown method %q", method)
	}
}

// maxEmailCodeAttempts caps wrong guesses per issued code. The counter lives
// next to the code in Redis and dies with it.
const maxEmailCodeAttempts = 5

// SendEmailCode issues a one-time code and hands it to the mailer. Issuing a
// new code resets the attempt budget.
func (s *Service) SendEmailCode(ctx context.Context, userID int64, email string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, s.codeKey(userID), code, s.emailCodeTTL).Err(); err != nil {
		return fmt.Errorf("twofactor: store email code: %w", err)
	}
	if err := s.redis.Del(ctx, s.attemptsKey(userID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("twofactor: reset attempts: %w", err)
	}
	if s.mailer == nil {
		return errors.New("twofactor: mailer not configured")
	}
	return s.mailer.SendCode(ctx, email, code)
}

func (s *Service) consumeEmailCode(ctx context.Context, userID int64, code string) error {
	key := s.codeKey(userID)
	stored, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return shared.ErrInvalidCode
		}
		return err
	}
	if stored != code {
		attempts, err := s.redis.Incr(ctx, s.attemptsKey(userID)).Result()
		if err != nil {
			return err
		}
		if attempts == 1 {
			_ = s.redis.Expire(ctx, s.attemptsKey(userID), s.emailCodeTTL).Err()
		}
		if attempts >= maxEmailCodeAttempts {
			// Burn the code: a guesser gets a fixed number of tries per issue.
			_ = s.redis.Del(ctx, key, s.attemptsKey(userID)).Err()
		}
		return shared.ErrInvalidCode
	}
	// One shot: a matched code can never be replayed.
	return s.redis.Del(ctx, key, s.attemptsKey(userID)).Err()
}

func (s *Service) validateTOTP(secret, code string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), validateOpts)
	return err == nil && ok
}

func (s *Service) codeKey(userID int64) string {
	return fmt.Sprintf("2fa:email:%d", userID)
}

func (s *Service) attemptsKey(userID int64) string {
	return fmt.Sprintf("2fa:email:attempts:%d", userID)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("twofactor: generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
