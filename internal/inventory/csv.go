package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/StinkyLord/pcb-part-matcher/internal/model"
)

// LoadCSV reads a header-driven CSV catalog. Header names are matched
// case-insensitively against the dedicated columns; anything else becomes an
// open attribute keyed by the literal header text.
func LoadCSV(path string) ([]model.InventoryItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening inventory: %w", err)
	}
	defer f.Close()
	return readCSV(f)
}

func readCSV(r io.Reader) ([]model.InventoryItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading inventory header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = normalizeColumn(h)
	}

	var items []model.InventoryItem
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading inventory line %d: %w", line, err)
		}
		item := model.InventoryItem{Priority: model.DefaultPriority}
		for i, cell := range record {
			if i >= len(columns) {
				break
			}
			setField(&item, columns[i], strings.TrimSpace(header[i]), strings.TrimSpace(cell))
		}
		if item.IPN == "" && item.Value == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
