// Package standards parses uploaded custom security standards into the
// control shape the compliance mapper consumes. JSON, CSV and YAML are
// supported; every parser normalizes loose field names and fills defaults.
package standards

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"securereq/internal/compliance"
)

// rawControl accepts the field spellings seen in real uploads.
type rawControl struct {
	ControlID   string `json:"control_id" yaml:"control_id"`
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

func (r rawControl) normalize() compliance.Control {
	id := r.ControlID
	if id == "" {
		id = r.ID
	}
	if id == "" {
		id = "N/A"
	}
	title := r.Title
	if title == "" {
		title = r.Name
	}
	category := r.Category
	if category == "" {
		category = "General"
	}
	return compliance.Control{
		ID:          id,
		Title:       title,
		Description: r.Description,
		Category:    category,
	}
}

// ParseFile dispatches on the upload's file extension.
func ParseFile(content []byte, filename string) ([]compliance.Control, error) {
	ext := ""
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = strings.ToLower(filename[i+1:])
	}
	switch ext {
	case "json":
		return ParseJSON(content)
	case "csv":
		return ParseCSV(content)
	case "yaml", "yml":
		return ParseYAML(content)
	default:
		return nil, fmt.Errorf("unsupported file type: %s (use JSON, CSV, or YAML)", ext)
	}
}

// ParseJSON accepts either a bare array of controls or an object with a
// "controls" key.
func ParseJSON(content []byte) ([]compliance.Control, error) {
	var list []rawControl
	if err := json.Unmarshal(content, &list); err == nil {
		return normalizeAll(list), nil
	}

	var wrapped struct {
		Controls []rawControl `json:"controls"`
	}
	if err := json.Unmarshal(content, &wrapped); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if wrapped.Controls == nil {
		return nil, fmt.Errorf("JSON must be an array of controls or an object with a 'controls' key")
	}
	return normalizeAll(wrapped.Controls), nil
}

// ParseCSV expects a header row; column names are matched case-insensitively.
func ParseCSV(content []byte) ([]compliance.Control, error) {
	text := strings.TrimPrefix(string(content), "\uFEFF")
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV needs a header row and at least one control")
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	field := func(row []string, names ...string) string {
		for _, n := range names {
			if i, ok := header[n]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	controls := make([]compliance.Control, 0, len(records)-1)
	for _, row := range records[1:] {
		raw := rawControl{
			ControlID:   field(row, "control_id", "control id", "id"),
			Title:       field(row, "title", "name"),
			Description: field(row, "description"),
			Category:    field(row, "category"),
		}
		controls = append(controls, raw.normalize())
	}
	return controls, nil
}

// ParseYAML accepts the same two shapes as ParseJSON.
func ParseYAML(content []byte) ([]compliance.Control, error) {
	var list []rawControl
	if err := yaml.Unmarshal(content, &list); err == nil && list != nil {
		return normalizeAll(list), nil
	}

	var wrapped struct {
		Controls []rawControl `yaml:"controls"`
	}
	if err := yaml.Unmarshal(content, &wrapped); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if wrapped.Controls == nil {
		return nil, fmt.Errorf("YAML must be a list of controls or a mapping with a 'controls' key")
	}
	return normalizeAll(wrapped.Controls), nil
}

func normalizeAll(raw []rawControl) []compliance.Control {
	controls := make([]compliance.Control, 0, len(raw))
	for _, r := range raw {
		controls = append(controls, r.normalize())
	}
	return controls
}
