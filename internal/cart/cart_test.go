package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test: 追加2→削除3で行ごと消える（負の数量は残らない）
func TestAddOrRemoveNeverGoesNegative(t *testing.T) {
	c := New()

	ok := c.AddOrRemove("Tea", 2)
	assert.True(t, ok)
	assert.Contains(t, c, "Tea")
	assert.Equal(t, int64(2), c["Tea"].Quantity)

	ok = c.AddOrRemove("Tea", -3)
	assert.True(t, ok)
	assert.NotContains(t, c, "Tea")
	assert.Equal(t, int64(0), c.Total())
}

func TestAddOrRemoveUnknownItem(t *testing.T) {
	c := New()

	ok := c.AddOrRemove("No Such Dish", 1)
	assert.False(t, ok)
	assert.Empty(t, c)
}

// Test: 合計は常に明細から導出される
func TestTotalDerivedFromLines(t *testing.T) {
	c := New()
	c.AddOrRemove("Tea", 2)     // 15 x 2
	c.AddOrRemove("Samosa", 1)  // 20 x 1
	c.AddOrRemove("Samosa", 2)  // 20 x 3

	assert.Equal(t, int64(15*2+20*3), c.Total())

	c.AddOrRemove("Samosa", -1)
	assert.Equal(t, int64(15*2+20*2), c.Total())
}

func TestRemoveToExactZeroDeletesLine(t *testing.T) {
	c := New()
	c.AddOrRemove("Coffee", 1)
	c.AddOrRemove("Coffee", -1)

	assert.NotContains(t, c, "Coffee")
}

// Test: 送信用明細は品名順でスナップショットを持つ
func TestLinesSnapshot(t *testing.T) {
	c := New()
	c.AddOrRemove("Tea", 2)
	c.AddOrRemove("Samosa", 1)

	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "Samosa", lines[0].Name)
	assert.Equal(t, int64(20), lines[0].Price)
	assert.Equal(t, int64(1), lines[0].Quantity)
	assert.Equal(t, "Tea", lines[1].Name)
	assert.Equal(t, int64(15), lines[1].Price)
	assert.Equal(t, int64(2), lines[1].Quantity)
}
