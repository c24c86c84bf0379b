package api

// User mirrors the backend profile serializer.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Product is a marketplace catalog entry. Image carries the backend's emoji
// placeholder when no real image is configured.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Seller      string  `json:"seller"`
	Location    string  `json:"location"`
}

type CartItem struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	TotalCost   float64 `json:"total_cost"`
}

type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalCost  float64    `json:"total_cost"`
}

type OrderItem struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	TotalCost   float64 `json:"total_cost"`
}

type Order struct {
	ID          int64       `json:"id"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}
