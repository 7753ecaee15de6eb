package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

type ListOpts struct {
	Source string // filter by originating site, empty means all
	Sort   string // first_seen | price | title
	Limit  int
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS properties (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  price REAL,
  address TEXT NOT NULL DEFAULT '',
  property_type TEXT NOT NULL DEFAULT 'house',
  bedrooms INTEGER,
  bathrooms INTEGER,
  area_sqft REAL,
  description TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL DEFAULT '',
  source TEXT NOT NULL DEFAULT '',
  listed_date TEXT,
  location TEXT NOT NULL DEFAULT '',
  postcode TEXT,
  has_garden INTEGER,
  has_balcony INTEGER,
  image_url TEXT,
  first_seen TEXT NOT NULL
);
`); err != nil {
		return err
	}

	// canonicalized listing URL is the dedupe key
	if _, err := tx.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_properties_url
ON properties(url)
WHERE url != '';
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_properties_source
ON properties(source);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// InsertPropertyIfNew inserts unless a record with the same canonical URL
// already exists. Reports whether a row was actually added.
func InsertPropertyIfNew(db *sql.DB, p domain.Property) (added bool, err error) {
	_, err = db.Exec(`
INSERT OR IGNORE INTO properties
  (title, price, address, property_type, bedrooms, bathrooms, area_sqft,
   description, url, source, listed_date, location, postcode,
   has_garden, has_balcony, image_url, first_seen)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		p.Title, nullFloat(p.Price), p.Address, p.Category,
		nullInt(p.Bedrooms), nullInt(p.Bathrooms), nullFloat(p.Area),
		p.Description, p.URL, p.Source, nullStr(p.ListedDate), p.Location,
		nullStr(p.Postcode), nullBool(p.HasGarden), nullBool(p.HasBalcony),
		nullStr(p.ImageURL), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert property: %w", err)
	}

	// INSERT OR IGNORE does not report rows affected reliably; changes() does.
	var changes int
	if e := db.QueryRow(`SELECT changes();`).Scan(&changes); e == nil {
		return changes > 0, nil
	}
	return true, nil
}

func ListProperties(ctx context.Context, db *sql.DB, opts ListOpts) ([]domain.Property, error) {
	// whitelist sort columns (prevents SQL injection)
	sortCol := map[string]string{
		"first_seen": "first_seen DESC",
		"price":      "price ASC",
		"title":      "title ASC",
	}[opts.Sort]
	if sortCol == "" {
		sortCol = "first_seen DESC"
	}

	where := ""
	var args []any
	if opts.Source != "" {
		where = "WHERE source = ?"
		args = append(args, opts.Source)
	}

	limit := ""
	if opts.Limit > 0 {
		limit = fmt.Sprintf("LIMIT %d", opts.Limit)
	}

	query := fmt.Sprintf(`
SELECT title, price, address, property_type, bedrooms, bathrooms, area_sqft,
       description, url, source, listed_date, location, postcode,
       has_garden, has_balcony, image_url
FROM properties
%s
ORDER BY %s
%s;`, where, sortCol, limit)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		var p domain.Property
		var price, area sql.NullFloat64
		var beds, baths sql.NullInt64
		var listed, post, image sql.NullString
		var garden, balcony sql.NullBool
		if err := rows.Scan(
			&p.Title, &price, &p.Address, &p.Category, &beds, &baths, &area,
			&p.Description, &p.URL, &p.Source, &listed, &p.Location, &post,
			&garden, &balcony, &image,
		); err != nil {
			return nil, err
		}
		p.Price = floatPtr(price)
		p.Area = floatPtr(area)
		p.Bedrooms = intPtr(beds)
		p.Bathrooms = intPtr(baths)
		p.ListedDate = strPtr(listed)
		p.Postcode = strPtr(post)
		p.HasGarden = boolPtr(garden)
		p.HasBalcony = boolPtr(balcony)
		p.ImageURL = strPtr(image)
		out = append(out, p)
	}
	return out, rows.Err()
}

func CountProperties(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties;`).Scan(&n)
	return n, err
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullStr(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullBool(v *bool) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func boolPtr(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}
