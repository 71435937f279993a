package menu

import "strings"

// TagFilterは有効にしたタグ絞り込み。複数有効ならすべて満たすこと。
type TagFilter struct {
	Veg     bool
	Spicy   bool
	Popular bool
}

func (f TagFilter) Active() bool {
	return f.Veg || f.Spicy || f.Popular
}

// Filterは表示対象の部分集合を返す純関数。
// カテゴリ完全一致 → 名前の部分一致（大文字小文字無視）→ 有効タグ全一致、の順。
// 空の結果も正常（エラーではない）。
func Filter(items []Item, category Category, tags TagFilter, search string) []Item {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if category != "" && category != CategoryAll && it.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		if tags.Active() && !matchTags(it.Tags, tags) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchTags(t Tags, f TagFilter) bool {
	if f.Veg && !t.Veg {
		return false
	}
	if f.Spicy && !t.Spicy {
		return false
	}
	if f.Popular && !t.Popular {
		return false
	}
	return true
}
