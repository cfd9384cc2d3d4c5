package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Lumos-Labs-HQ/shopgen/internal/model"
)

// Column types per table. Everything except the fixed-width string fields is
// an integer in the schema.
var sqliteSchemas = map[string][]string{
	"users":       {"user_id INTEGER PRIMARY KEY", "username TEXT", "email TEXT", "age INTEGER", "city TEXT"},
	"products":    {"product_id INTEGER PRIMARY KEY", "title TEXT", "category TEXT", "price INTEGER", "stock INTEGER", "brand TEXT"},
	"orders":      {"order_id INTEGER PRIMARY KEY", "user_id INTEGER REFERENCES users(user_id)", "total INTEGER", "total_quantity INTEGER", "discount INTEGER"},
	"order_items": {"item_id INTEGER PRIMARY KEY", "order_id INTEGER REFERENCES orders(order_id)", "product_id INTEGER REFERENCES products(product_id)", "quantity INTEGER", "price INTEGER", "total INTEGER"},
}

// WriteSQLite writes the dataset into a fresh shopgen.db SQLite file, one
// table per collection with real foreign key columns.
func WriteSQLite(ds *model.Dataset, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, "shopgen.db")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove existing %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQLite database: %w", err)
	}
	defer db.Close()

	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	for _, table := range ds.Tables() {
		createSQL := fmt.Sprintf("CREATE TABLE %s (%s)",
			table.Name, strings.Join(sqliteSchemas[table.Name], ", "))
		if _, err := db.Exec(createSQL); err != nil {
			return nil, fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}

		for _, row := range table.Rows {
			values := make([]interface{}, len(row))
			for i, v := range row {
				values[i] = v
			}
			query, args, err := qb.Insert(table.Name).
				Columns(table.Header...).
				Values(values...).
				ToSql()
			if err != nil {
				return nil, fmt.Errorf("failed to build insert for %s: %w", table.Name, err)
			}
			if _, err := db.Exec(query, args...); err != nil {
				return nil, fmt.Errorf("failed to insert row into %s: %w", table.Name, err)
			}
		}
	}

	return []string{path}, nil
}
