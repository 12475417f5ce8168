package models

// The API wraps every payload in a named field: list endpoints return a
// named array ({"categories": [...]}), mutating endpoints return the
// affected entity ({"category": {...}}).

type ProductsResponse struct {
	Products []Product `json:"products"`
}

type ProductResponse struct {
	Product Product `json:"product"`
}

type PriceRangeResponse struct {
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type CategoryResponse struct {
	Category Category `json:"category"`
}

type TagsResponse struct {
	Tags []Tag `json:"tags"`
}

type TagResponse struct {
	Tag Tag `json:"tag"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

type OrderResponse struct {
	Order Order `json:"order"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type UserResponse struct {
	User User `json:"user"`
}

// LoginResponse is returned by POST /user/adminLogin.
type LoginResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}
