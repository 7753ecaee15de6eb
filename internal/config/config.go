package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

type Config struct {
	App struct {
		Port      int    `yaml:"port" json:"port"`
		DataDir   string `yaml:"data_dir" json:"data_dir"`
		OutputDir string `yaml:"output_dir" json:"output_dir"`
	} `yaml:"app" json:"app"`

	Trawl struct {
		Locations       []string `yaml:"locations" json:"locations"`
		PropertyTypes   []string `yaml:"property_types" json:"property_types"`
		Sites           []string `yaml:"sites" json:"sites"` // empty means every registered site
		MaxListings     int      `yaml:"max_listings" json:"max_listings"`
		IntervalSeconds int      `yaml:"interval_seconds" json:"interval_seconds"`
		HostRPS         float64  `yaml:"host_rps" json:"host_rps"`
		HostBurst       int      `yaml:"host_burst" json:"host_burst"`
	} `yaml:"trawl" json:"trawl"`

	// Search is the default query applied after every trawl; the HTTP API
	// can override it per request.
	Search domain.Query `yaml:"search" json:"search"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
