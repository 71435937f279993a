package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// 文字列からステータスへ（不明な値は false）
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

// 終端ステータス（ここからは遷移できない）
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentUPI  PaymentMethod = "UPI"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentUPI:
		return PaymentMethod(s), true
	default:
		return "", false
	}
}

// OrderLineは注文時点のスナップショット。
// カタログの価格変更が過去の注文に影響しないよう、参照ではなく値で持つ。
type OrderLine struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"qty"`
}

type Order struct {
	ID             int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	TableNo        int           `gorm:"column:table_no;not null" json:"table_no"`
	CustomerName   string        `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone  string        `gorm:"type:varchar(10);not null" json:"customer_phone"`
	Items          []OrderLine   `gorm:"type:text;serializer:json" json:"items"`
	Total          int64         `gorm:"not null" json:"total"`
	Payment        PaymentMethod `gorm:"type:varchar(20);not null" json:"payment"`
	Status         OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Time           string        `gorm:"type:varchar(20)" json:"time"`
	Date           string        `gorm:"type:varchar(20)" json:"date"`
	Datetime       time.Time     `gorm:"column:datetime;not null;index" json:"datetime"`
	CanModifyUntil time.Time     `gorm:"not null" json:"can_modify_until"`
	Complaint      string        `gorm:"type:text" json:"complaint"`
	KitchenReply   string        `gorm:"type:text" json:"kitchen_reply"`
	Cancelled      bool          `gorm:"not null;default:false" json:"cancelled"`
}

// LinesTotal は明細から合計を導出する（保存済みtotalの検証にも使う）
func LinesTotal(lines []OrderLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Price * l.Quantity
	}
	return total
}

// CanCustomerCancel は顧客キャンセルのガード。
// Pendingかつ未キャンセルで、締切を過ぎていないこと。
func (o Order) CanCustomerCancel(now time.Time) bool {
	if o.Status != OrderStatusPending || o.Cancelled {
		return false
	}
	return !now.After(o.CanModifyUntil)
}

// CanTransition は厨房側の遷移ガード。
// 終端（Completed/Cancelled）からは出られない。キャンセル済みも変更不可。
func (o Order) CanTransition(to OrderStatus) bool {
	if o.Cancelled || o.Status.IsTerminal() {
		return false
	}
	return o.Status != to
}
