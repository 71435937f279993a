package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLinesTotal(t *testing.T) {
	lines := []OrderLine{
		{Name: "Tea", Price: 15, Quantity: 2},
		{Name: "Samosa", Price: 20, Quantity: 1},
	}
	assert.Equal(t, int64(50), LinesTotal(lines))
	assert.Equal(t, int64(0), LinesTotal(nil))
}

func TestCanCustomerCancel(t *testing.T) {
	deadline := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	o := Order{Status: OrderStatusPending, CanModifyUntil: deadline}

	//締切ちょうどはまだ許可
	assert.True(t, o.CanCustomerCancel(deadline))
	assert.True(t, o.CanCustomerCancel(deadline.Add(-time.Minute)))
	assert.False(t, o.CanCustomerCancel(deadline.Add(time.Second)))

	o.Status = OrderStatusPreparing
	assert.False(t, o.CanCustomerCancel(deadline.Add(-time.Minute)))

	o.Status = OrderStatusPending
	o.Cancelled = true
	assert.False(t, o.CanCustomerCancel(deadline.Add(-time.Minute)))
}

func TestCanTransitionTerminalStates(t *testing.T) {
	o := Order{Status: OrderStatusCompleted}
	assert.False(t, o.CanTransition(OrderStatusPreparing))

	o = Order{Status: OrderStatusCancelled, Cancelled: true}
	assert.False(t, o.CanTransition(OrderStatusPreparing))

	o = Order{Status: OrderStatusPending}
	assert.True(t, o.CanTransition(OrderStatusPreparing))
	assert.True(t, o.CanTransition(OrderStatusCancelled))
}

func TestParseOrderStatus(t *testing.T) {
	st, ok := ParseOrderStatus("Preparing")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusPreparing, st)

	_, ok = ParseOrderStatus("Shipped")
	assert.False(t, ok)

	//大文字小文字は区別する
	_, ok = ParseOrderStatus("pending")
	assert.False(t, ok)
}
