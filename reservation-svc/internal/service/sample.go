package service

import (
	"log"
	"time"

	"foodiefind/reservation-svc/internal/domain"
)

// SampleRestaurants is the catalog used when nothing has been persisted yet.
func SampleRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID: 1, Name: "Bella Italia", Cuisine: "Italian", Rating: 4.5,
			Image:    "https://images.unsplash.com/photo-1544025162-d76694265947?w=400",
			Location: "Downtown", PriceRange: "$$",
			Description: "Authentic Italian cuisine with fresh ingredients",
			Menu: []domain.MenuItem{
				{ID: 1, Name: "Margherita Pizza", Price: 18, Category: "Pizza", Likes: 45, Description: "Classic tomato and mozzarella"},
				{ID: 2, Name: "Pasta Carbonara", Price: 22, Category: "Pasta", Likes: 38, Description: "Creamy bacon pasta"},
				{ID: 3, Name: "Tiramisu", Price: 12, Category: "Dessert", Likes: 29, Description: "Traditional Italian dessert"},
			},
		},
		{
			ID: 2, Name: "Dragon Palace", Cuisine: "Chinese", Rating: 4.2,
			Image:    "https://images.unsplash.com/photo-1559925393-8be0ec4767c8?w=400",
			Location: "Chinatown", PriceRange: "$",
			Description: "Traditional Chinese dishes with authentic flavors",
			Menu: []domain.MenuItem{
				{ID: 4, Name: "Sweet and Sour Pork", Price: 16, Category: "Main", Likes: 52, Description: "Tender pork in sweet sauce"},
				{ID: 5, Name: "Fried Rice", Price: 14, Category: "Rice", Likes: 41, Description: "Wok-fried with vegetables"},
				{ID: 6, Name: "Spring Rolls", Price: 8, Category: "Appetizer", Likes: 33, Description: "Crispy vegetable rolls"},
			},
		},
		{
			ID: 3, Name: "Sakura Sushi", Cuisine: "Japanese", Rating: 4.8,
			Image:    "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400",
			Location: "Business District", PriceRange: "$$$",
			Description: "Fresh sushi and sashimi made by master chefs",
			Menu: []domain.MenuItem{
				{ID: 7, Name: "Salmon Sashimi", Price: 24, Category: "Sashimi", Likes: 67, Description: "Fresh Norwegian salmon"},
				{ID: 8, Name: "California Roll", Price: 18, Category: "Sushi", Likes: 44, Description: "Crab and avocado roll"},
				{ID: 9, Name: "Miso Soup", Price: 6, Category: "Soup", Likes: 28, Description: "Traditional soybean soup"},
			},
		},
		{
			ID: 4, Name: "Le Petit Bistro", Cuisine: "French", Rating: 4.6,
			Image:    "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=400",
			Location: "French Quarter", PriceRange: "$$$",
			Description: "Elegant French cuisine in a cozy atmosphere",
			Menu: []domain.MenuItem{
				{ID: 10, Name: "Coq au Vin", Price: 28, Category: "Main", Likes: 56, Description: "Chicken braised in red wine"},
				{ID: 11, Name: "French Onion Soup", Price: 12, Category: "Soup", Likes: 42, Description: "Classic soup with gruyere cheese"},
				{ID: 12, Name: "Crème Brûlée", Price: 14, Category: "Dessert", Likes: 48, Description: "Vanilla custard with caramelized sugar"},
				{ID: 13, Name: "Escargot", Price: 16, Category: "Appetizer", Likes: 31, Description: "Snails in garlic butter"},
			},
		},
		{
			ID: 5, Name: "Spice Garden", Cuisine: "Indian", Rating: 4.3,
			Image:    "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=400",
			Location: "Little India", PriceRange: "$$",
			Description: "Aromatic Indian spices and traditional recipes",
			Menu: []domain.MenuItem{
				{ID: 14, Name: "Butter Chicken", Price: 19, Category: "Main", Likes: 73, Description: "Creamy tomato curry with chicken"},
				{ID: 15, Name: "Biryani", Price: 17, Category: "Rice", Likes: 58, Description: "Fragrant basmati rice with spices"},
				{ID: 16, Name: "Samosa", Price: 8, Category: "Appetizer", Likes: 41, Description: "Crispy pastry with spiced filling"},
				{ID: 17, Name: "Naan Bread", Price: 5, Category: "Bread", Likes: 35, Description: "Fresh baked Indian flatbread"},
			},
		},
		{
			ID: 6, Name: "El Mariachi", Cuisine: "Mexican", Rating: 4.4,
			Image:    "https://images.unsplash.com/photo-1551024709-8f23befc6f87?w=400",
			Location: "Mission District", PriceRange: "$$",
			Description: "Vibrant Mexican flavors and festive atmosphere",
			Menu: []domain.MenuItem{
				{ID: 18, Name: "Beef Tacos", Price: 15, Category: "Main", Likes: 62, Description: "Seasoned beef with fresh toppings"},
				{ID: 19, Name: "Guacamole", Price: 9, Category: "Appetizer", Likes: 55, Description: "Fresh avocado dip with chips"},
				{ID: 20, Name: "Quesadilla", Price: 13, Category: "Main", Likes: 47, Description: "Cheese-filled tortilla with chicken"},
				{ID: 21, Name: "Churros", Price: 8, Category: "Dessert", Likes: 39, Description: "Fried dough with cinnamon sugar"},
			},
		},
		{
			ID: 7, Name: "Ocean's Bounty", Cuisine: "Seafood", Rating: 4.7,
			Image:    "https://images.unsplash.com/photo-1544025162-d76694265947?w=400",
			Location: "Harbor District", PriceRange: "$$$",
			Description: "Fresh seafood caught daily from local waters",
			Menu: []domain.MenuItem{
				{ID: 22, Name: "Grilled Salmon", Price: 26, Category: "Main", Likes: 71, Description: "Atlantic salmon with herbs"},
				{ID: 23, Name: "Lobster Bisque", Price: 18, Category: "Soup", Likes: 49, Description: "Rich and creamy lobster soup"},
				{ID: 24, Name: "Fish & Chips", Price: 22, Category: "Main", Likes: 53, Description: "Beer-battered cod with fries"},
				{ID: 25, Name: "Shrimp Cocktail", Price: 16, Category: "Appetizer", Likes: 36, Description: "Chilled prawns with cocktail sauce"},
			},
		},
		{
			ID: 8, Name: "Burger Haven", Cuisine: "American", Rating: 4.1,
			Image:    "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400",
			Location: "City Center", PriceRange: "$",
			Description: "Juicy burgers and classic American comfort food",
			Menu: []domain.MenuItem{
				{ID: 26, Name: "Classic Cheeseburger", Price: 14, Category: "Burger", Likes: 68, Description: "Beef patty with cheese and fixings"},
				{ID: 27, Name: "BBQ Bacon Burger", Price: 16, Category: "Burger", Likes: 54, Description: "Smoky BBQ sauce with crispy bacon"},
				{ID: 28, Name: "Sweet Potato Fries", Price: 7, Category: "Side", Likes: 42, Description: "Crispy seasoned sweet potato fries"},
				{ID: 29, Name: "Milkshake", Price: 6, Category: "Beverage", Likes: 38, Description: "Thick vanilla milkshake"},
			},
		},
		{
			ID: 9, Name: "Green Earth Café", Cuisine: "Vegetarian", Rating: 4.5,
			Image:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400",
			Location: "University District", PriceRange: "$$",
			Description: "Plant-based cuisine with organic ingredients",
			Menu: []domain.MenuItem{
				{ID: 30, Name: "Quinoa Buddha Bowl", Price: 16, Category: "Main", Likes: 59, Description: "Quinoa with roasted vegetables"},
				{ID: 31, Name: "Avocado Toast", Price: 12, Category: "Breakfast", Likes: 45, Description: "Smashed avocado on sourdough"},
				{ID: 32, Name: "Green Smoothie", Price: 8, Category: "Beverage", Likes: 34, Description: "Spinach, mango, and banana blend"},
				{ID: 33, Name: "Vegan Chocolate Cake", Price: 10, Category: "Dessert", Likes: 41, Description: "Rich chocolate cake, dairy-free"},
			},
		},
		{
			ID: 10, Name: "Seoul Kitchen", Cuisine: "Korean", Rating: 4.6,
			Image:    "https://images.unsplash.com/photo-1498654896293-37aacf113fd9?w=400",
			Location: "Koreatown", PriceRange: "$$",
			Description: "Authentic Korean BBQ and traditional dishes",
			Menu: []domain.MenuItem{
				{ID: 34, Name: "Korean BBQ", Price: 24, Category: "Main", Likes: 76, Description: "Grilled marinated beef"},
				{ID: 35, Name: "Kimchi", Price: 6, Category: "Side", Likes: 43, Description: "Fermented spicy cabbage"},
				{ID: 36, Name: "Bibimbap", Price: 18, Category: "Main", Likes: 61, Description: "Mixed rice bowl with vegetables"},
				{ID: 37, Name: "Korean Fried Chicken", Price: 20, Category: "Main", Likes: 57, Description: "Crispy chicken with Korean glaze"},
			},
		},
	}
}

type sampleAccount struct {
	user     domain.User
	password string
}

var sampleAccounts = []sampleAccount{
	{domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin, Email: "admin@foodiefind.com"}, "admin123"},
	{domain.User{ID: 2, Username: "owner1", Role: domain.RoleOwner, Email: "owner@bella.com", RestaurantID: 1}, "pass123"},
	{domain.User{ID: 3, Username: "john", Role: domain.RoleCustomer, Email: "john@email.com"}, "pass123"},
}

// SampleUsers returns the demo accounts with freshly hashed passwords.
func SampleUsers() []domain.User {
	users := make([]domain.User, 0, len(sampleAccounts))
	for _, a := range sampleAccounts {
		u := a.user
		hash, err := HashPassword(a.password)
		if err != nil {
			log.Printf("Warning: failed to hash password for sample user %s: %v", u.Username, err)
			continue
		}
		u.PasswordHash = hash
		users = append(users, u)
	}
	return users
}

func SampleBookings(now time.Time) []domain.Booking {
	return []domain.Booking{
		{
			ID:              1,
			UserID:          3,
			RestaurantID:    1,
			Date:            "2024-01-15",
			Time:            "19:00",
			Guests:          4,
			Name:            "John Doe",
			Phone:           "(555) 999-8888",
			Email:           "john@email.com",
			SpecialRequests: "Window table preferred",
			Status:          domain.StatusConfirmed,
			CreatedAt:       now.UTC(),
		},
	}
}
