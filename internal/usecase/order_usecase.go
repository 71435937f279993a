package usecase

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

type OrderUsecase struct {
	orders repo.OrderRepository
	clock  Clock
	window time.Duration // 注文後にキャンセルできる時間
	log    *zap.Logger
}

func NewOrderUsecase(orders repo.OrderRepository, clock Clock, window time.Duration, log *zap.Logger) *OrderUsecase {
	return &OrderUsecase{orders: orders, clock: clock, window: window, log: log}
}

type PlaceOrderInput struct {
	TableNo int
	Name    string
	Phone   string
	Items   []model.OrderLine
	Total   int64
	Payment string
}

type PlaceOrderOutput struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"orderId"`
}

// ガード付きの条件更新の結果。不成立はエラーではなくfalse。
type MutationResult struct {
	Success bool `json:"success"`
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	var out PlaceOrderOutput

	if strings.TrimSpace(in.Name) == "" {
		return out, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	//電話番号はちょうど10桁
	if !phonePattern.MatchString(in.Phone) {
		return out, NewHTTPError(http.StatusBadRequest, "phone must be 10 digits")
	}
	if len(in.Items) == 0 {
		return out, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}
	for _, l := range in.Items {
		if strings.TrimSpace(l.Name) == "" || l.Price <= 0 || l.Quantity < 1 {
			return out, NewHTTPError(http.StatusBadRequest, "invalid items")
		}
	}
	payment, ok := model.ParsePaymentMethod(in.Payment)
	if !ok {
		return out, NewHTTPError(http.StatusBadRequest, "invalid payment")
	}
	//合計は明細から導出した値と一致すること
	if in.Total != model.LinesTotal(in.Items) {
		return out, NewHTTPError(http.StatusBadRequest, "total mismatch")
	}

	now := u.clock.Now()
	order := model.Order{
		TableNo:        in.TableNo,
		CustomerName:   strings.TrimSpace(in.Name),
		CustomerPhone:  in.Phone,
		Items:          in.Items,
		Total:          in.Total,
		Payment:        payment,
		Status:         model.OrderStatusPending,
		Time:           now.Format("15:04:05"),
		Date:           now.Format("2006-01-02"),
		Datetime:       now,
		CanModifyUntil: now.Add(u.window),
		Cancelled:      false,
	}

	id, err := u.orders.Create(ctx, order)
	if err != nil {
		//作成はリトライしない（二重INSERTの方が怖い）
		u.log.Error("create order failed", zap.Error(err))
		return out, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out.Success = true
	out.OrderID = id
	return out, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Error("find order failed", zap.Int64("order_id", orderID), zap.Error(err))
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

// 厨房ビュー用。新しい順。
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.List(ctx, repo.OrderListFilter{})
	if err != nil {
		u.log.Error("list orders failed", zap.Error(err))
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// 管理レポート用。status指定は任意。
func (u *OrderUsecase) AdminReport(ctx context.Context, statusFilter string) ([]model.Order, error) {
	f := repo.OrderListFilter{}
	if statusFilter != "" {
		st, ok := model.ParseOrderStatus(statusFilter)
		if !ok {
			return []model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		f.Status = st
	}

	orders, err := u.orders.List(ctx, f)
	if err != nil {
		u.log.Error("admin report failed", zap.Error(err))
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// UpdateStatusは厨房側のステータス遷移。
// キャンセル済み・終端の注文はガードで弾かれ success:false になる。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (MutationResult, error) {
	if orderID <= 0 {
		return MutationResult{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	st, ok := model.ParseOrderStatus(status)
	if !ok {
		return MutationResult{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return MutationResult{}, err
	}
	//終端・キャンセル済みはここで弾ける。最終判定は条件付きUPDATE側。
	if !o.CanTransition(st) {
		return MutationResult{Success: false}, nil
	}

	updated, err := u.orders.UpdateStatusIfMutable(ctx, orderID, st)
	if err != nil {
		u.log.Error("update status failed", zap.Int64("order_id", orderID), zap.Error(err))
		return MutationResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return MutationResult{Success: updated}, nil
}

// Cancelは顧客キャンセル。Pendingかつ締切内のときだけ成立する。
func (u *OrderUsecase) Cancel(ctx context.Context, orderID int64) (MutationResult, error) {
	if orderID <= 0 {
		return MutationResult{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return MutationResult{}, err
	}
	now := u.clock.Now()
	//締切超過・Pending以外はここで弾ける。同時実行の決着は条件付きUPDATE側。
	if !o.CanCustomerCancel(now) {
		return MutationResult{Success: false}, nil
	}

	cancelled, err := u.orders.CancelWithinWindow(ctx, orderID, now)
	if err != nil {
		u.log.Error("cancel order failed", zap.Int64("order_id", orderID), zap.Error(err))
		return MutationResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return MutationResult{Success: cancelled}, nil
}

// AttachComplaintは苦情の添付。どのステータスでも可で、ステータスは変えない。
func (u *OrderUsecase) AttachComplaint(ctx context.Context, orderID int64, text string) (MutationResult, error) {
	return u.attachText(ctx, orderID, text, u.orders.SetComplaint)
}

func (u *OrderUsecase) AttachReply(ctx context.Context, orderID int64, text string) (MutationResult, error) {
	return u.attachText(ctx, orderID, text, u.orders.SetReply)
}

func (u *OrderUsecase) attachText(
	ctx context.Context,
	orderID int64,
	text string,
	set func(ctx context.Context, orderID int64, text string) (bool, error),
) (MutationResult, error) {
	if orderID <= 0 {
		return MutationResult{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return MutationResult{}, NewHTTPError(http.StatusBadRequest, "text is required")
	}

	updated, err := set(ctx, orderID, trimmed)
	if err != nil {
		u.log.Error("attach text failed", zap.Int64("order_id", orderID), zap.Error(err))
		return MutationResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !updated {
		return MutationResult{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return MutationResult{Success: true}, nil
}
