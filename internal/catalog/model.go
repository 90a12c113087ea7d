package catalog

// MenuItem is a single dish on the menu. Catalog data is read-only
// reference data; nothing in the ordering flow ever mutates it.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	SpiceLevel  int     `json:"spice_level"`
	Vegetarian  bool    `json:"vegetarian"`
	Vegan       bool    `json:"vegan"`
	GlutenFree  bool    `json:"gluten_free"`
	Popular     bool    `json:"popular"`
}

// DietaryTags maps the item's dietary flags to display tags.
func (m MenuItem) DietaryTags() []string {
	tags := []string{}
	if m.Vegetarian {
		tags = append(tags, "vegetarian")
	}
	if m.Vegan {
		tags = append(tags, "vegan")
	}
	if m.GlutenFree {
		tags = append(tags, "gluten-free")
	}
	return tags
}

type MenuCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DeliveryArea maps a 4-digit postcode to its delivery fee and
// estimated delivery time.
type DeliveryArea struct {
	Suburb        string  `json:"suburb"`
	Postcode      string  `json:"postcode"`
	DeliveryFee   float64 `json:"delivery_fee"`
	EstimatedTime string  `json:"estimated_time"`
}
