package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedupes the list fields and checks the
// config for nonsense, returning a normalized copy plus the findings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Trawl.Locations = trimList(out.Trawl.Locations)
	out.Trawl.PropertyTypes = trimList(out.Trawl.PropertyTypes)
	out.Trawl.Sites = trimList(out.Trawl.Sites)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if len(out.Trawl.Locations) == 0 {
		res.addErr("trawl.locations must name at least one location")
	}
	if out.Trawl.IntervalSeconds < 0 {
		res.addErr("trawl.interval_seconds must be >= 0 (0 disables background trawls)")
	} else if out.Trawl.IntervalSeconds > 0 && out.Trawl.IntervalSeconds < 60 {
		res.addWarn("trawl.interval_seconds is very low (%d) and may get the trawler blocked.", out.Trawl.IntervalSeconds)
	}
	if out.Trawl.HostRPS < 0 {
		res.addErr("trawl.host_rps must be >= 0")
	} else if out.Trawl.HostRPS > 2 {
		res.addWarn("trawl.host_rps %.1f is aggressive for public listing sites.", out.Trawl.HostRPS)
	}
	if out.Trawl.MaxListings < 0 {
		res.addErr("trawl.max_listings must be >= 0")
	}

	for _, pt := range out.Trawl.PropertyTypes {
		if lt := strings.ToLower(pt); lt != "house" && lt != "flat" {
			res.addWarn("trawl.property_types entry %q is neither house nor flat", pt)
		}
	}

	if err := out.Search.Validate(); err != nil {
		res.addErr("search: %v", err)
	}

	return out, res
}
