package inventory

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/StinkyLord/pcb-part-matcher/internal/model"
)

// LoadJSON reads a JSON catalog. The document is either a bare array of
// items or an object with an "items" array; item keys are matched the same
// way CSV headers are.
func LoadJSON(path string) ([]model.InventoryItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening inventory: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("inventory %s: invalid JSON", path)
	}
	doc := gjson.ParseBytes(data)
	list := doc
	if !doc.IsArray() {
		list = doc.Get("items")
		if !list.IsArray() {
			return nil, fmt.Errorf("inventory %s: expected an array or an object with an items array", path)
		}
	}

	var items []model.InventoryItem
	list.ForEach(func(_, entry gjson.Result) bool {
		item := model.InventoryItem{Priority: model.DefaultPriority}
		entry.ForEach(func(key, value gjson.Result) bool {
			setField(&item, normalizeColumn(key.String()), key.String(), value.String())
			return true
		})
		if item.IPN != "" || item.Value != "" {
			items = append(items, item)
		}
		return true
	})
	return items, nil
}
