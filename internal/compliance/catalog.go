// Package compliance cross-references generated security requirements with
// controls from built-in and user-uploaded standards.
package compliance

import (
	"embed"
	"fmt"
	"log"
	"strings"

	"gopkg.in/yaml.v3"
)

// Control is a single entry in a standard's catalog.
type Control struct {
	ID          string `yaml:"id" json:"control_id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category,omitempty"`
}

// catalogFile is the on-disk shape of a built-in standard.
type catalogFile struct {
	Standard    string    `yaml:"standard"`
	Description string    `yaml:"description"`
	Controls    []Control `yaml:"controls"`
}

//go:embed data/*.yaml
var catalogFS embed.FS

// catalogs is loaded once at process start and never mutated.
var catalogs = loadCatalogs()

func loadCatalogs() map[string][]Control {
	out := make(map[string][]Control)
	entries, err := catalogFS.ReadDir("data")
	if err != nil {
		log.Printf("compliance: no embedded catalogs: %v", err)
		return out
	}
	for _, entry := range entries {
		data, err := catalogFS.ReadFile("data/" + entry.Name())
		if err != nil {
			log.Printf("compliance: read %s: %v", entry.Name(), err)
			continue
		}
		var cf catalogFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			log.Printf("compliance: parse %s: %v", entry.Name(), err)
			continue
		}
		out[cf.Standard] = cf.Controls
	}
	return out
}

// LoadStandard returns the control catalog for a built-in standard, or an
// empty list for an unknown name. It never fails; the mapper degrades to
// synthetic mappings when the catalog is empty.
func LoadStandard(name string) []Control {
	return catalogs[name]
}

// CustomStandard is a caller-supplied set of controls with the same shape as
// a built-in catalog.
type CustomStandard struct {
	Name     string    `json:"name"`
	Controls []Control `json:"controls"`
}

// DisplayName returns the standard name used in mappings, defaulting to
// "Custom" for unnamed uploads.
func (cs CustomStandard) DisplayName() string {
	if strings.TrimSpace(cs.Name) == "" {
		return "Custom"
	}
	return cs.Name
}

// syntheticTitle labels a mapping generated from a prefix with no catalog
// entry behind it.
func syntheticTitle(standard, prefix string) string {
	return fmt.Sprintf("%s control %s", standard, prefix)
}
