package repository

import (
	"context"

	"app/internal/domain/model"
)

type StaffRepository interface {
	FindByUsername(ctx context.Context, username string) (model.Staff, error)
	Create(ctx context.Context, staff model.Staff) error
}

type SessionRepository interface {
	Create(ctx context.Context, session model.StaffSession) error
	FindByID(ctx context.Context, id string) (model.StaffSession, error)
	Delete(ctx context.Context, id string) error
}
