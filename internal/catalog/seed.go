package catalog

// Seed data for the restaurant's menu and delivery areas. This is the
// same catalog the website renders; the Postgres schema is seeded from
// these values on first start.

func SeedCategories() []MenuCategory {
	return []MenuCategory{
		{ID: "appetizers", Name: "Appetizers", Icon: "🥟"},
		{ID: "mains", Name: "Main Courses", Icon: "🍛"},
		{ID: "breads", Name: "Breads & Rice", Icon: "🍞"},
		{ID: "desserts", Name: "Desserts", Icon: "🍮"},
		{ID: "beverages", Name: "Beverages", Icon: "🥤"},
	}
}

func SeedMenuItems() []MenuItem {
	return []MenuItem{
		{
			ID: 1, Name: "Samosas (2 pieces)", Description: "Crispy pastry filled with spiced potatoes and peas",
			Price: 8.90, Category: "appetizers", SpiceLevel: 2, Vegetarian: true, Vegan: true, Popular: true,
		},
		{
			ID: 2, Name: "Chicken Tikka", Description: "Tender chicken pieces marinated in yogurt and spices",
			Price: 14.90, Category: "appetizers", SpiceLevel: 3, GlutenFree: true, Popular: true,
		},
		{
			ID: 3, Name: "Onion Bhaji", Description: "Crispy onion fritters with chickpea flour and spices",
			Price: 9.90, Category: "appetizers", SpiceLevel: 2, Vegetarian: true, Vegan: true, GlutenFree: true,
		},
		{
			ID: 4, Name: "Butter Chicken", Description: "Tender chicken in rich, creamy tomato-based sauce",
			Price: 24.90, Category: "mains", SpiceLevel: 2, GlutenFree: true, Popular: true,
		},
		{
			ID: 5, Name: "Lamb Biryani", Description: "Fragrant basmati rice layered with tender lamb",
			Price: 28.90, Category: "mains", SpiceLevel: 3, GlutenFree: true, Popular: true,
		},
		{
			ID: 6, Name: "Palak Paneer", Description: "Fresh cottage cheese in creamy spinach curry",
			Price: 22.90, Category: "mains", SpiceLevel: 2, Vegetarian: true, GlutenFree: true, Popular: true,
		},
		{
			ID: 7, Name: "Dal Makhani", Description: "Slow-cooked black lentils in rich, creamy sauce",
			Price: 19.90, Category: "mains", SpiceLevel: 1, Vegetarian: true, GlutenFree: true,
		},
		{
			ID: 8, Name: "Garlic Naan", Description: "Soft leavened bread topped with fresh garlic",
			Price: 5.90, Category: "breads", SpiceLevel: 1, Vegetarian: true, Popular: true,
		},
		{
			ID: 9, Name: "Basmati Rice", Description: "Fragrant long-grain rice, perfectly steamed",
			Price: 4.90, Category: "breads", Vegetarian: true, Vegan: true, GlutenFree: true,
		},
		{
			ID: 10, Name: "Gulab Jamun (2 pieces)", Description: "Soft milk dumplings in rose-flavored syrup",
			Price: 7.90, Category: "desserts", Vegetarian: true, Popular: true,
		},
		{
			ID: 11, Name: "Kulfi", Description: "Traditional Indian ice cream with cardamom",
			Price: 8.90, Category: "desserts", Vegetarian: true, GlutenFree: true, Popular: true,
		},
		{
			ID: 12, Name: "Mango Lassi", Description: "Creamy yogurt drink blended with fresh mango",
			Price: 5.90, Category: "beverages", Vegetarian: true, GlutenFree: true, Popular: true,
		},
		{
			ID: 13, Name: "Masala Chai", Description: "Traditional spiced tea with cardamom and ginger",
			Price: 4.50, Category: "beverages", SpiceLevel: 1, Vegetarian: true, GlutenFree: true, Popular: true,
		},
	}
}

func SeedDeliveryAreas() []DeliveryArea {
	return []DeliveryArea{
		{Suburb: "Melbourne CBD", Postcode: "3000", DeliveryFee: 5.00, EstimatedTime: "30-45 mins"},
		{Suburb: "South Yarra", Postcode: "3141", DeliveryFee: 6.50, EstimatedTime: "35-50 mins"},
		{Suburb: "Richmond", Postcode: "3121", DeliveryFee: 7.00, EstimatedTime: "40-55 mins"},
		{Suburb: "Carlton", Postcode: "3053", DeliveryFee: 6.00, EstimatedTime: "35-50 mins"},
		{Suburb: "Fitzroy", Postcode: "3065", DeliveryFee: 7.50, EstimatedTime: "40-55 mins"},
		{Suburb: "St Kilda", Postcode: "3182", DeliveryFee: 8.00, EstimatedTime: "45-60 mins"},
	}
}
