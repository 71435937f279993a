package auth

import (
	"context"
	"errors"

	"app/internal/repository"
)

type LogoutUsecase struct {
	sessions repository.SessionRepository
}

func NewLogoutUsecase(sessions repository.SessionRepository) *LogoutUsecase {
	return &LogoutUsecase{sessions: sessions}
}

// Executeはセッション行を消す。既に無ければ成功扱い（冪等）。
func (u *LogoutUsecase) Execute(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	err := u.sessions.Delete(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
