package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type OrderListFilter struct {
	Status model.OrderStatus
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 新しい順
	List(ctx context.Context, f OrderListFilter) ([]model.Order, error)

	// 以下は条件付きUPDATE1文。ガード不成立はfalse（0行更新）で返す。
	// 同じ注文への同時実行でも勝者は高々1つ。
	UpdateStatusIfMutable(ctx context.Context, orderID int64, status model.OrderStatus) (bool, error)
	CancelWithinWindow(ctx context.Context, orderID int64, now time.Time) (bool, error)

	// 上書き（追記ではない）。該当行がなければfalse。
	SetComplaint(ctx context.Context, orderID int64, text string) (bool, error)
	SetReply(ctx context.Context, orderID int64, text string) (bool, error)
}
