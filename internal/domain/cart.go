package domain

// CartItem is a menu item placed in a user's cart. Email is the owning
// identity; cart reads are restricted to that identity.
type CartItem struct {
	ID         string  `json:"_id"`
	Email      string  `json:"email"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}
