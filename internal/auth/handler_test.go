package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/shared"
)

type stubRepo struct {
	user     *User
	sessions []string
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, shared.ErrNotFound
	}
	return s.user, nil
}

func (s *stubRepo) FindByID(ctx context.Context, id int64) (*User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, shared.ErrNotFound
	}
	return s.user, nil
}

func (s *stubRepo) CreateUser(ctx context.Context, name, email, passwordHash string, role rbac.Role) (*User, error) {
	if s.user != nil && s.user.Email == email {
		return nil, ErrEmailTaken
	}
	s.user = &User{ID: 42, Name: name, Email: email, PasswordHash: passwordHash, Role: role, IsActive: true}
	return s.user, nil
}

func (s *stubRepo) CreateSession(ctx context.Context, id string, userID int64, expiresAt time.Time, ip, ua string) error {
	s.sessions = append(s.sessions, id)
	return nil
}

func (s *stubRepo) DeleteSession(ctx context.Context, id string) error {
	return nil
}

type stubTwoFactor struct {
	method string
	code   string
	sent   int
}

func (s *stubTwoFactor) ActiveMethod(ctx context.Context, userID int64) (string, error) {
	return s.method, nil
}

func (s *stubTwoFactor) VerifyLogin(ctx context.Context, userID int64, method, code string) error {
	if code != s.code {
		return shared.ErrInvalidCode
	}
	return nil
}

func (s *stubTwoFactor) SendEmailCode(ctx context.Context, userID int64, email string) error {
	s.sent++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(t *testing.T, repo Repository, tf TwoFactorPort) (*Handler, *shared.SessionManager) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	sessions := shared.NewSessionManager(client, "test_session", "secret", time.Hour, false)
	csrf := shared.NewCSRFManager("csrfsecret")
	logger := testLogger()
	return NewHandler(logger, NewService(repo, nil), sessions, csrf, tf), sessions
}

// commitWriter mirrors the production middleware: the session commits before
// the first byte of the response, so cookies land in the written headers.
type commitWriter struct {
	http.ResponseWriter
	t         *testing.T
	sessions  *shared.SessionManager
	sess      *shared.Session
	ctx       context.Context
	req       *http.Request
	committed bool
}

func (w *commitWriter) WriteHeader(statusCode int) {
	if !w.committed {
		w.committed = true
		require.NoError(w.t, w.sessions.Commit(w.ctx, w.ResponseWriter, w.req, w.sess))
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *commitWriter) Write(data []byte) (int, error) {
	if !w.committed {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(data)
}

func doJSON(t *testing.T, handler http.HandlerFunc, sessions *shared.SessionManager, sess *shared.Session, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx := shared.ContextWithSession(req.Context(), sess)
	req = req.WithContext(ctx)
	res := httptest.NewRecorder()
	wrapped := &commitWriter{ResponseWriter: res, t: t, sessions: sessions, sess: sess, ctx: ctx, req: req}
	handler(wrapped, req)
	if !wrapped.committed {
		require.NoError(t, sessions.Commit(ctx, res, req, sess))
	}
	return res
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func loadSession(t *testing.T, sessions *shared.SessionManager) *shared.Session {
	t.Helper()
	sess, err := sessions.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	return sess
}

func TestLoginSuccessBindsRoleCapabilities(t *testing.T) {
	repo := &stubRepo{user: &User{
		ID: 7, Name: "Demo User", Email: "demo@wheels.local",
		PasswordHash: hashFor(t, "correct-horse"), Role: rbac.RoleManager, IsActive: true,
	}}
	handler, sessions := newTestHandler(t, repo, nil)
	sess := loadSession(t, sessions)

	res := doJSON(t, handler.handleLogin, sessions, sess, http.MethodPost, "/api/auth/login",
		`{"email":"demo@wheels.local","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, res.Code)

	var payload sessionResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	require.Equal(t, "manager", payload.User.Role)
	require.Contains(t, payload.Capabilities, rbac.CapInventoryEdit)
	require.NotEmpty(t, payload.CSRFToken)
	require.Equal(t, "7", sess.User())
	require.Len(t, repo.sessions, 1)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := &stubRepo{user: &User{
		ID: 7, Email: "demo@wheels.local",
		PasswordHash: hashFor(t, "correct-horse"), Role: rbac.RoleUser, IsActive: true,
	}}
	handler, sessions := newTestHandler(t, repo, nil)
	sess := loadSession(t, sessions)

	res := doJSON(t, handler.handleLogin, sessions, sess, http.MethodPost, "/api/auth/login",
		`{"email":"demo@wheels.local","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, res.Code)
	require.Empty(t, sess.User())
}

func TestLoginInactiveAccountRejected(t *testing.T) {
	repo := &stubRepo{user: &User{
		ID: 7, Email: "demo@wheels.local",
		PasswordHash: hashFor(t, "correct-horse"), Role: rbac.RoleUser, IsActive: false,
	}}
	handler, sessions := newTestHandler(t, repo, nil)
	sess := loadSession(t, sessions)

	res := doJSON(t, handler.handleLogin, sessions, sess, http.MethodPost, "/api/auth/login",
		`{"email":"demo@wheels.local","password":"correct-horse"}`)
	require.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestLoginWithTwoFactorChallengeThenVerify(t *testing.T) {
	repo := &stubRepo{user: &User{
		ID: 7, Name: "Demo User", Email: "demo@wheels.local",
		PasswordHash: hashFor(t, "correct-horse"), Role: rbac.RoleAdmin, IsActive: true,
	}}
	tf := &stubTwoFactor{method: "totp", code: "123456"}
	handler, sessions := newTestHandler(t, repo, tf)
	sess := loadSession(t, sessions)

	res := doJSON(t, handler.handleLogin, sessions, sess, http.MethodPost, "/api/auth/login",
		`{"email":"demo@wheels.local","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, res.Code)

	var challenge challengeResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &challenge))
	require.True(t, challenge.TwoFactorRequired)
	require.Equal(t, "totp", challenge.Method)
	require.Empty(t, sess.User(), "identity must not bind before verification")

	res = doJSON(t, handler.handleVerify, sessions, sess, http.MethodPost, "/api/auth/verify",
		`{"code":"000000"}`)
	require.Equal(t, http.StatusUnauthorized, res.Code)

	res = doJSON(t, handler.handleVerify, sessions, sess, http.MethodPost, "/api/auth/verify",
		`{"code":"123456"}`)
	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, "7", sess.User())
	require.Empty(t, sess.Get(pendingUserKey))
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	handler, sessions := newTestHandler(t, &stubRepo{}, nil)
	sess := loadSession(t, sessions)

	res := doJSON(t, handler.handleSignup, sessions, sess, http.MethodPost, "/api/auth/signup",
		`{"name":"New Hire","email":"new@wheels.local","password":"longenough","role":"superuser"}`)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestSignupCreatesAccountAndSignsIn(t *testing.T) {
	repo := &stubRepo{}
	handler, sessions := newTestHandler(t, repo, nil)
	sess := loadSession(t, sessions)

	res := doJSON(t, handler.handleSignup, sessions, sess, http.MethodPost, "/api/auth/signup",
		`{"name":"New Hire","email":"new@wheels.local","password":"longenough","role":"user"}`)
	require.Equal(t, http.StatusCreated, res.Code)
	require.Equal(t, "42", sess.User())
	require.Equal(t, "user", sess.Role())
}

func TestLogoutDestroysSession(t *testing.T) {
	repo := &stubRepo{user: &User{
		ID: 7, Email: "demo@wheels.local",
		PasswordHash: hashFor(t, "correct-horse"), Role: rbac.RoleUser, IsActive: true,
	}}
	handler, sessions := newTestHandler(t, repo, nil)
	sess := loadSession(t, sessions)

	res := doJSON(t, handler.handleLogin, sessions, sess, http.MethodPost, "/api/auth/login",
		`{"email":"demo@wheels.local","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, res.Code)

	res = doJSON(t, handler.handleLogout, sessions, sess, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, res.Code)

	cookies := res.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, -1, cookies[0].MaxAge)
}
