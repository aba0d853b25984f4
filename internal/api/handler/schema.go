package handler

import "github.com/storefront/storefront-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
}

// --- Products ---

type productRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Image       string  `json:"image"       validate:"omitempty,url"`
}

type productListResponse struct {
	Items []domain.Product `json:"items"`
	Total int              `json:"total"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// --- Cart ---

type addCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
}

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

type checkoutResponse struct {
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}
