package auth_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
	auth "app/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// モック
// =====================

type StaffRepoMock struct{ mock.Mock }

func (m *StaffRepoMock) FindByUsername(ctx context.Context, username string) (model.Staff, error) {
	args := m.Called(ctx, username)
	s, _ := args.Get(0).(model.Staff)
	return s, args.Error(1)
}

func (m *StaffRepoMock) Create(ctx context.Context, staff model.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

var _ repository.StaffRepository = (*StaffRepoMock)(nil)

type SessionRepoMock struct{ mock.Mock }

func (m *SessionRepoMock) Create(ctx context.Context, session model.StaffSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionRepoMock) FindByID(ctx context.Context, id string) (model.StaffSession, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.StaffSession)
	return s, args.Error(1)
}

func (m *SessionRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repository.SessionRepository = (*SessionRepoMock)(nil)

// =====================
// スタブ部品
// =====================

type stubIssuer struct{}

func (s *stubIssuer) Issue(username string, role model.Role, sessionID string, now time.Time, expiresAt time.Time) (string, error) {
	return "token-" + sessionID, nil
}

type stubIDGen struct{ id string }

func (g *stubIDGen) NewID() string { return g.id }

type stubClock struct{ t time.Time }

func (c *stubClock) Now() time.Time { return c.t }

var loginNow = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func newLoginUsecase(staff *StaffRepoMock, sessions *SessionRepoMock) *auth.LoginUsecase {
	return auth.NewLoginUsecase(
		staff,
		sessions,
		auth.NewBcryptPasswordVerifier(),
		&stubIssuer{},
		&stubIDGen{id: "sess-1"},
		&stubClock{t: loginNow},
		6*time.Hour,
	)
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := auth.NewBcryptPasswordHasher(4).Hash(plain)
	assert.NoError(t, err)
	return hash
}

// =====================
// Tests
// =====================

func TestLoginSuccess(t *testing.T) {
	staffRepo := new(StaffRepoMock)
	sessions := new(SessionRepoMock)
	uc := newLoginUsecase(staffRepo, sessions)

	staffRepo.On("FindByUsername", mock.Anything, "kitchen").Return(model.Staff{
		Username:     "kitchen",
		PasswordHash: hashPassword(t, "kitchen123"),
		Role:         model.RoleKitchen,
	}, nil)

	sessions.On("Create", mock.Anything, mock.MatchedBy(func(s model.StaffSession) bool {
		return s.ID == "sess-1" &&
			s.Username == "kitchen" &&
			s.Role == model.RoleKitchen &&
			s.ExpiresAt.Equal(loginNow.Add(6*time.Hour))
	})).Return(nil)

	out, side, err := uc.Execute(context.Background(), auth.LoginInput{
		Username: "kitchen",
		Password: "kitchen123",
	})
	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, model.RoleKitchen, out.Role)
	assert.Equal(t, "token-sess-1", side.SessionToken)
	assert.Equal(t, loginNow.Add(6*time.Hour), side.ExpiresAt)

	sessions.AssertExpectations(t)
}

// Test: パスワード違いは一般化した失敗（理由を明かさない）
func TestLoginWrongPassword(t *testing.T) {
	staffRepo := new(StaffRepoMock)
	sessions := new(SessionRepoMock)
	uc := newLoginUsecase(staffRepo, sessions)

	staffRepo.On("FindByUsername", mock.Anything, "kitchen").Return(model.Staff{
		Username:     "kitchen",
		PasswordHash: hashPassword(t, "kitchen123"),
		Role:         model.RoleKitchen,
	}, nil)

	_, _, err := uc.Execute(context.Background(), auth.LoginInput{
		Username: "kitchen",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginUnknownUser(t *testing.T) {
	staffRepo := new(StaffRepoMock)
	sessions := new(SessionRepoMock)
	uc := newLoginUsecase(staffRepo, sessions)

	staffRepo.On("FindByUsername", mock.Anything, "ghost").Return(model.Staff{}, repository.ErrNotFound)

	_, _, err := uc.Execute(context.Background(), auth.LoginInput{
		Username: "ghost",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// Test: logoutは行を消す。無ければ成功扱い。
func TestLogoutIdempotent(t *testing.T) {
	sessions := new(SessionRepoMock)
	uc := auth.NewLogoutUsecase(sessions)

	sessions.On("Delete", mock.Anything, "sess-1").Return(nil).Once()
	assert.NoError(t, uc.Execute(context.Background(), "sess-1"))

	sessions.On("Delete", mock.Anything, "sess-1").Return(repository.ErrNotFound).Once()
	assert.NoError(t, uc.Execute(context.Background(), "sess-1"))

	sessions.AssertExpectations(t)
}
