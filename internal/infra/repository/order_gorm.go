package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, error) {
	q := r.db.WithContext(ctx)

	//status 絞り込み
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var items []model.Order
	if err := q.Order("datetime desc").Find(&items).Error; err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

// UpdateStatusIfMutableは1文の条件付きUPDATE。
// キャンセル済み・終端ステータスの注文は0行更新になりfalseを返す。
// cancelledフラグはstatusと連動させる（Cancelledのときだけtrue）。
func (r *OrderGormRepository) UpdateStatusIfMutable(ctx context.Context, orderID int64, status model.OrderStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND cancelled = ? AND status NOT IN ?",
			orderID, false,
			[]model.OrderStatus{model.OrderStatusCompleted, model.OrderStatusCancelled}).
		Updates(map[string]interface{}{
			"status":    status,
			"cancelled": status == model.OrderStatusCancelled,
		})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CancelWithinWindowは顧客キャンセル。checkとsetを1文にまとめ、
// 同じ注文に同時に来ても勝つのは1リクエストだけ。
func (r *OrderGormRepository) CancelWithinWindow(ctx context.Context, orderID int64, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ? AND cancelled = ? AND can_modify_until >= ?",
			orderID, model.OrderStatusPending, false, now).
		Updates(map[string]interface{}{
			"status":    model.OrderStatusCancelled,
			"cancelled": true,
		})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *OrderGormRepository) SetComplaint(ctx context.Context, orderID int64, text string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("complaint", text)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *OrderGormRepository) SetReply(ctx context.Context, orderID int64, text string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("kitchen_reply", text)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
