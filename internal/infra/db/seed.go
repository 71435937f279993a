package db

import (
	"context"
	"errors"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

type passwordHasher interface {
	Hash(plain string) (string, error)
}

// SeedStaffは初期スタッフ（admin/kitchen）を用意する。
// 既にいれば何もしない。パスワードは平文では保存しない。
func SeedStaff(ctx context.Context, staffRepo repo.StaffRepository, hasher passwordHasher, cfg config.Config) error {
	seeds := []struct {
		username string
		password string
		role     model.Role
	}{
		{"admin", cfg.AdminPassword, model.RoleAdmin},
		{"kitchen", cfg.KitchenPassword, model.RoleKitchen},
	}

	for _, s := range seeds {
		_, err := staffRepo.FindByUsername(ctx, s.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		hash, err := hasher.Hash(s.password)
		if err != nil {
			return err
		}
		if err := staffRepo.Create(ctx, model.Staff{
			Username:     s.username,
			PasswordHash: hash,
			Role:         s.role,
		}); err != nil {
			return err
		}
	}

	return nil
}
