package dto

// NewMenuItemRequest is the payload for catalog item creation.
type NewMenuItemRequest struct {
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// NewCartItemRequest is the payload for cart item creation.
type NewCartItemRequest struct {
	Email      string  `json:"email"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

// PaymentIntentRequest carries the decimal price to charge.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse returns the provider's client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
