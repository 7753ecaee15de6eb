package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

// WriteJSON writes records as a pretty-printed JSON array.
func WriteJSON(w io.Writer, ps []domain.Property) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if ps == nil {
		ps = []domain.Property{}
	}
	return enc.Encode(ps)
}

var csvHeader = []string{
	"title", "price", "address", "property_type", "bedrooms", "bathrooms",
	"area_sqft", "description", "url", "source", "listed_date", "location",
	"postcode", "has_garden", "has_balcony", "image_url", "match_score",
}

// WriteCSV writes records as CSV with a fixed header row. Unknown optional
// fields become empty cells.
func WriteCSV(w io.Writer, ps []domain.Property) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range ps {
		row := []string{
			p.Title,
			csvFloat(p.Price),
			p.Address,
			p.Category,
			csvInt(p.Bedrooms),
			csvInt(p.Bathrooms),
			csvFloat(p.Area),
			p.Description,
			p.URL,
			p.Source,
			csvStr(p.ListedDate),
			p.Location,
			csvStr(p.Postcode),
			csvBool(p.HasGarden),
			csvBool(p.HasBalcony),
			csvStr(p.ImageURL),
			csvFloat(p.MatchScore),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportDir writes properties.json and properties.csv under dir.
func ExportDir(dir string, ps []domain.Property) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := exportFile(filepath.Join(dir, "properties.json"), ps, WriteJSON); err != nil {
		return err
	}
	return exportFile(filepath.Join(dir, "properties.csv"), ps, WriteCSV)
}

func exportFile(path string, ps []domain.Property, write func(io.Writer, []domain.Property) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := write(f, ps); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}

func csvFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func csvInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func csvStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func csvBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
