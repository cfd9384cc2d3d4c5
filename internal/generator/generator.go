package generator

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/shopgen/internal/faker"
	"github.com/Lumos-Labs-HQ/shopgen/internal/model"
)

// Categories and brands the product generator draws from.
var (
	Categories = []string{"electronics", "clothing", "food", "books", "toys", "sports", "home"}
	Brands     = []string{"TechCorp", "StyleBrand", "HomeGoods", "SportsPro", "BookWorld"}
)

// Order ids start above the user/product id ranges so the collections are
// easy to tell apart in the output.
const firstOrderID = 1000

type Counts struct {
	Users    int
	Products int
	Orders   int
}

// Validate rejects count combinations that cannot produce a consistent
// dataset. Orders need at least one user and one product to reference.
func (c Counts) Validate() error {
	if c.Users < 0 || c.Products < 0 || c.Orders < 0 {
		return fmt.Errorf("counts must be non-negative, got users=%d products=%d orders=%d",
			c.Users, c.Products, c.Orders)
	}
	if c.Orders > 0 && c.Users == 0 {
		return fmt.Errorf("cannot generate %d orders without any users", c.Orders)
	}
	if c.Orders > 0 && c.Products == 0 {
		return fmt.Errorf("cannot generate %d orders without any products", c.Orders)
	}
	return nil
}

type Generator struct {
	fake *faker.DataGenerator
}

func New() *Generator {
	return &Generator{fake: faker.New()}
}

// Generate builds the four collections in memory. Foreign keys are valid by
// construction: orders sample users already generated, items sample products
// already generated.
func (g *Generator) Generate(counts Counts) (*model.Dataset, error) {
	if err := counts.Validate(); err != nil {
		return nil, err
	}

	ds := &model.Dataset{
		Users:    make([]model.User, 0, counts.Users),
		Products: make([]model.Product, 0, counts.Products),
		Orders:   make([]model.Order, 0, counts.Orders),
	}

	for i := 1; i <= counts.Users; i++ {
		ds.Users = append(ds.Users, model.User{
			UserID:   i,
			Username: g.fake.Username(),
			Email:    g.fake.Email(),
			Age:      g.fake.IntRange(18, 80),
			City:     g.fake.City(),
		})
	}

	for i := 1; i <= counts.Products; i++ {
		ds.Products = append(ds.Products, model.Product{
			ProductID: i,
			Title:     g.fake.ProductTitle(),
			Category:  g.fake.Pick(Categories, model.CategoryWidth),
			Price:     g.fake.IntRange(5, 500),
			Stock:     g.fake.IntRange(0, 200),
			Brand:     g.fake.Pick(Brands, model.BrandWidth),
		})
	}

	itemID := 1
	for n := 0; n < counts.Orders; n++ {
		orderID := firstOrderID + n
		numItems := g.fake.IntRange(1, 5)

		orderTotal := 0
		orderQuantity := 0
		for j := 0; j < numItems; j++ {
			product := ds.Products[g.fake.IntRange(0, counts.Products-1)]
			quantity := g.fake.IntRange(1, 5)
			itemTotal := product.Price * quantity

			ds.OrderItems = append(ds.OrderItems, model.OrderItem{
				ItemID:    itemID,
				OrderID:   orderID,
				ProductID: product.ProductID,
				Quantity:  quantity,
				Price:     product.Price,
				Total:     itemTotal,
			})

			orderTotal += itemTotal
			orderQuantity += quantity
			itemID++
		}

		ds.Orders = append(ds.Orders, model.Order{
			OrderID:       orderID,
			UserID:        g.fake.IntRange(1, counts.Users),
			Total:         orderTotal,
			TotalQuantity: orderQuantity,
			Discount:      int(float64(orderTotal) * g.fake.Fraction(0.2)),
		})
	}

	return ds, nil
}
