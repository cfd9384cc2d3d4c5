package model

import "strconv"

// Tables returns the four collections as serialization views, in the order
// they are written out: parents before children.
func (d *Dataset) Tables() []Table {
	users := Table{
		Name:   "users",
		Header: []string{"user_id", "username", "email", "age", "city"},
	}
	for _, u := range d.Users {
		users.Rows = append(users.Rows, []string{
			strconv.Itoa(u.UserID), u.Username, u.Email, strconv.Itoa(u.Age), u.City,
		})
	}

	products := Table{
		Name:   "products",
		Header: []string{"product_id", "title", "category", "price", "stock", "brand"},
	}
	for _, p := range d.Products {
		products.Rows = append(products.Rows, []string{
			strconv.Itoa(p.ProductID), p.Title, p.Category,
			strconv.Itoa(p.Price), strconv.Itoa(p.Stock), p.Brand,
		})
	}

	orders := Table{
		Name:   "orders",
		Header: []string{"order_id", "user_id", "total", "total_quantity", "discount"},
	}
	for _, o := range d.Orders {
		orders.Rows = append(orders.Rows, []string{
			strconv.Itoa(o.OrderID), strconv.Itoa(o.UserID), strconv.Itoa(o.Total),
			strconv.Itoa(o.TotalQuantity), strconv.Itoa(o.Discount),
		})
	}

	items := Table{
		Name:   "order_items",
		Header: []string{"item_id", "order_id", "product_id", "quantity", "price", "total"},
	}
	for _, it := range d.OrderItems {
		items.Rows = append(items.Rows, []string{
			strconv.Itoa(it.ItemID), strconv.Itoa(it.OrderID), strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity), strconv.Itoa(it.Price), strconv.Itoa(it.Total),
		})
	}

	return []Table{users, products, orders, items}
}
