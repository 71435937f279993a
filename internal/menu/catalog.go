package menu

type Category string

const (
	CategoryAll    Category = "all"
	CategoryNonVeg Category = "nonveg"
	CategoryVeg    Category = "veg"
	CategorySnacks Category = "snacks"
	CategoryDrinks Category = "drinks"
)

type Tags struct {
	Veg     bool `json:"veg"`
	Spicy   bool `json:"spicy"`
	Popular bool `json:"popular"`
}

// Itemはデプロイ時に決まる固定データ。実行時に変更しない。
type Item struct {
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Category Category `json:"category"`
	Tags     Tags     `json:"tags"`
	Image    string   `json:"img"`
}

var catalog = []Item{
	{Name: "Telangana Chicken Fry", Price: 150, Category: CategoryNonVeg, Tags: Tags{Spicy: true, Popular: true}, Image: "chicken_fry.jpg"},
	{Name: "Boti Fry", Price: 180, Category: CategoryNonVeg, Tags: Tags{Spicy: true}, Image: "boti_fry.jpg"},
	{Name: "Chicken Curry", Price: 160, Category: CategoryNonVeg, Tags: Tags{Spicy: true}, Image: "chicken_curry.jpg"},
	{Name: "Dum Biriyani", Price: 200, Category: CategoryNonVeg, Tags: Tags{Popular: true}, Image: "dum_biriyani.jpg"},
	{Name: "Fry Piece Biriyani", Price: 220, Category: CategoryNonVeg, Tags: Tags{Spicy: true, Popular: true}, Image: "fry_piece_biriyani.jpg"},
	{Name: "Mutton Biriyani", Price: 260, Category: CategoryNonVeg, Tags: Tags{Popular: true}, Image: "mutton_biriyani.jpg"},

	{Name: "Paneer Curry", Price: 140, Category: CategoryVeg, Tags: Tags{Veg: true, Popular: true}, Image: "paneer.jpg"},
	{Name: "Dal Rice", Price: 120, Category: CategoryVeg, Tags: Tags{Veg: true}, Image: "dal_rice.jpg"},
	{Name: "Veg Curry", Price: 130, Category: CategoryVeg, Tags: Tags{Veg: true, Spicy: true}, Image: "veg_curry.jpg"},

	{Name: "Samosa", Price: 20, Category: CategorySnacks, Tags: Tags{Veg: true, Spicy: true, Popular: true}, Image: "samosa.jpg"},
	{Name: "Veg Puff", Price: 25, Category: CategorySnacks, Tags: Tags{Veg: true}, Image: "veg_puff.jpg"},
	{Name: "Chicken Puff", Price: 30, Category: CategorySnacks, Image: "chicken_puff.jpg"},

	{Name: "Tea", Price: 15, Category: CategoryDrinks, Tags: Tags{Veg: true, Popular: true}, Image: "tea.jpg"},
	{Name: "Coffee", Price: 25, Category: CategoryDrinks, Tags: Tags{Veg: true}, Image: "coffee.jpg"},
	{Name: "Cool Drink", Price: 25, Category: CategoryDrinks, Tags: Tags{Veg: true}, Image: "cooldrink.jpg"},
}

// Catalogはカタログのコピーを返す（呼び出し側が並べ替えても元は不変）
func Catalog() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}

func Find(name string) (Item, bool) {
	for _, it := range catalog {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}
