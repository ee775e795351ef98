package inventory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/StinkyLord/pcb-part-matcher/internal/model"
)

// LoadYAML reads a YAML catalog: a top-level sequence of mappings, or a
// mapping with an "items" sequence. Keys follow the same aliases as CSV
// headers.
func LoadYAML(path string) ([]model.InventoryItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening inventory: %w", err)
	}

	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		var doc struct {
			Items []map[string]any `yaml:"items"`
		}
		if err2 := yaml.Unmarshal(data, &doc); err2 != nil {
			return nil, fmt.Errorf("parsing inventory %s: %w", path, err)
		}
		raw = doc.Items
	}

	var items []model.InventoryItem
	for _, entry := range raw {
		item := model.InventoryItem{Priority: model.DefaultPriority}
		for key, value := range entry {
			setField(&item, normalizeColumn(key), key, scalarString(value))
		}
		if item.IPN != "" || item.Value != "" {
			items = append(items, item)
		}
	}
	return items, nil
}

// scalarString renders a YAML scalar the way it was written; nested
// structures are not part of the catalog schema and collapse to empty.
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int, int64, uint64, float64, bool:
		return fmt.Sprintf("%v", t)
	default:
		return ""
	}
}
