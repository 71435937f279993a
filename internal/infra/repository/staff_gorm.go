package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type StaffGormRepository struct {
	db *gorm.DB
}

func NewStaffGormRepository(db *gorm.DB) *StaffGormRepository {
	return &StaffGormRepository{db: db}
}

func (r *StaffGormRepository) FindByUsername(ctx context.Context, username string) (model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Staff{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Staff{}, err
	}
	return s, nil
}

func (r *StaffGormRepository) Create(ctx context.Context, staff model.Staff) error {
	return r.db.WithContext(ctx).Create(&staff).Error
}
