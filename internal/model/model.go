package model

// Field widths shared by the generator and the exporters. String fields are
// fixed width: truncated then right-padded to exactly this many characters.
const (
	UsernameWidth = 16
	EmailWidth    = 32
	CityWidth     = 16
	TitleWidth    = 32
	CategoryWidth = 16
	BrandWidth    = 16
)

type User struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	City     string `json:"city"`
}

type Product struct {
	ProductID int    `json:"product_id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Price     int    `json:"price"`
	Stock     int    `json:"stock"`
	Brand     string `json:"brand"`
}

type Order struct {
	OrderID       int `json:"order_id"`
	UserID        int `json:"user_id"`
	Total         int `json:"total"`
	TotalQuantity int `json:"total_quantity"`
	Discount      int `json:"discount"`
}

type OrderItem struct {
	ItemID    int `json:"item_id"`
	OrderID   int `json:"order_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
	Price     int `json:"price"`
	Total     int `json:"total"`
}

// Dataset holds one complete generation run. Collections are append-only
// during generation and never mutated afterwards.
type Dataset struct {
	Users      []User      `json:"users"`
	Products   []Product   `json:"products"`
	Orders     []Order     `json:"orders"`
	OrderItems []OrderItem `json:"order_items"`
}

// Table is a serialization view of one collection: a file basename, a header
// row, and one string row per record in generation order.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}
