package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	sessionRepo "github.com/dipeshpuri/CleanrCrew-Patched/internal/infra/storage/session"
	userRepo "github.com/dipeshpuri/CleanrCrew-Patched/internal/infra/storage/user"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/auth/models"
)

type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return userRepo.ErrDuplicateEmail
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *domain.Session) error {
	r.sessions[session.Token] = session
	return nil
}

func (r *fakeSessionRepo) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, token string) error {
	if _, ok := r.sessions[token]; !ok {
		return sessionRepo.ErrSessionNotFound
	}
	delete(r.sessions, token)
	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func registerReq() *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName: "Alex",
		LastName:  "Carter",
		Email:     "alex@example.com",
		Phone:     "4165550199",
		Password:  "correct-horse",
	}
}

func newTestService() (*Service, *fakeUserRepo, *fakeSessionRepo, *fakeClock) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	clock := &fakeClock{now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)}
	svc := NewService(users, sessions, nopLogger{})
	svc.timeProvider = clock
	return svc, users, sessions, clock
}

func TestRegister_OpensSession(t *testing.T) {
	svc, users, _, _ := newTestService()

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "alex@example.com", resp.User.Email)

	// Пароль хранится только как bcrypt-хеш
	stored := users.byEmail["alex@example.com"]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)

	user, err := svc.CurrentUser(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := registerReq()
	req.Email = "not-an-email"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = registerReq()
	req.Password = "short"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alex@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alex@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser_ExpiredSession(t *testing.T) {
	svc, _, _, clock := newTestService()

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	clock.now = clock.now.Add(sessionTTL + time.Hour)

	_, err = svc.CurrentUser(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	_, err = svc.CurrentUser(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Повторный выход не считается ошибкой
	assert.NoError(t, svc.Logout(context.Background(), resp.Token))
}
