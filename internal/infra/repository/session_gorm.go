package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SessionGormRepository struct {
	db *gorm.DB
}

func NewSessionGormRepository(db *gorm.DB) *SessionGormRepository {
	return &SessionGormRepository{db: db}
}

func (r *SessionGormRepository) Create(ctx context.Context, session model.StaffSession) error {
	return r.db.WithContext(ctx).Create(&session).Error
}

func (r *SessionGormRepository) FindByID(ctx context.Context, id string) (model.StaffSession, error) {
	var s model.StaffSession
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StaffSession{}, repo.ErrNotFound
	}
	if err != nil {
		return model.StaffSession{}, err
	}
	return s, nil
}

func (r *SessionGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StaffSession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
