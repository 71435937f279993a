package cart

import (
	"sort"

	"app/internal/domain/model"
	"app/internal/menu"
)

// Lineはカート内の1品目。商品はスナップショットで持つ。
type Line struct {
	Item     menu.Item `json:"item"`
	Quantity int64     `json:"qty"`
}

// Cartは品名→明細のマップ。1クライアントセッションが専有する。
type Cart map[string]*Line

func New() Cart {
	return make(Cart)
}

// AddOrRemoveは符号付きdeltaを適用する。
// 未登録の品は数量0で作ってから適用し、数量が0以下になったら行ごと消す
// （負の数量は残さない）。カタログにない品名は何もしないでfalseを返す。
func (c Cart) AddOrRemove(name string, delta int64) bool {
	line, ok := c[name]
	if !ok {
		item, found := menu.Find(name)
		if !found {
			return false
		}
		line = &Line{Item: item, Quantity: 0}
		c[name] = line
	}

	line.Quantity += delta
	if line.Quantity <= 0 {
		delete(c, name)
	}
	return true
}

// Totalは常に明細から再計算する（別持ちにしてズレない）
func (c Cart) Total() int64 {
	var total int64
	for _, l := range c {
		total += l.Item.Price * l.Quantity
	}
	return total
}

// Linesは注文送信用の明細を品名順で返す
func (c Cart) Lines() []model.OrderLine {
	out := make([]model.OrderLine, 0, len(c))
	for _, l := range c {
		out = append(out, model.OrderLine{
			Name:     l.Item.Name,
			Price:    l.Item.Price,
			Quantity: l.Quantity,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
