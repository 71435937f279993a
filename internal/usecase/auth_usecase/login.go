package auth

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Username string
	Password string
}

// handlerがJSONにして返す
type LoginOutput struct {
	Success bool       `json:"success"`
	Role    model.Role `json:"role"`
}

// handlerがCookieに詰めるために必要な値
type LoginSideEffect struct {
	SessionToken string
	ExpiresAt    time.Time
}

// ユーザー名またはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// 署名付きセッショントークンを発行する約束
type SessionTokenIssuer interface {
	Issue(username string, role model.Role, sessionID string, now time.Time, expiresAt time.Time) (string, error)
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

type LoginUsecase struct {
	staffRepo repository.StaffRepository
	sessions  repository.SessionRepository
	verifier  PasswordVerifier
	issuer    SessionTokenIssuer
	idGen     IDGenerator
	clock     Clock
	ttl       time.Duration
}

// DI
func NewLoginUsecase(
	staffRepo repository.StaffRepository,
	sessions repository.SessionRepository,
	verifier PasswordVerifier,
	issuer SessionTokenIssuer,
	idGen IDGenerator,
	clock Clock,
	ttl time.Duration,
) *LoginUsecase {
	return &LoginUsecase{
		staffRepo: staffRepo,
		sessions:  sessions,
		verifier:  verifier,
		issuer:    issuer,
		idGen:     idGen,
		clock:     clock,
		ttl:       ttl,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, LoginSideEffect, error) {
	var out LoginOutput
	var side LoginSideEffect

	//usernameでスタッフ取得
	staff, err := u.staffRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			//ユーザー不明もパスワード違いも同じ失敗にする
			return out, side, ErrInvalidCredentials
		}
		return out, side, err
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, staff.PasswordHash); !ok {
		return out, side, ErrInvalidCredentials
	}

	//サーバー側セッション作成（logoutで行を消せば即失効）
	now := u.clock.Now()
	sessionID := u.idGen.NewID()
	expiresAt := now.Add(u.ttl)

	if err := u.sessions.Create(ctx, model.StaffSession{
		ID:        sessionID,
		Username:  staff.Username,
		Role:      staff.Role,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}); err != nil {
		return out, side, err
	}

	//Cookie用トークン発行
	token, err := u.issuer.Issue(staff.Username, staff.Role, sessionID, now, expiresAt)
	if err != nil {
		return out, side, err
	}

	out.Success = true
	out.Role = staff.Role
	side.SessionToken = token
	side.ExpiresAt = expiresAt
	return out, side, nil
}
