package fantrax

import (
	"fmt"
	"slices"

	"github.com/omarshaarawi/fantrax/internal/models"
)

// Fantrax tables are positional: header cell i names row cell i. Every
// caller goes through these helpers so a shift in the upstream column layout
// surfaces as a MalformedPayloadError instead of an index panic.

func headerNames(entity string, header *models.Header) ([]string, error) {
	if header == nil {
		return nil, malformed(entity, "header", header, nil)
	}
	names := make([]string, len(header.Cells))
	for i, cell := range header.Cells {
		if cell.Name == nil {
			return nil, malformed(entity, fmt.Sprintf("header.cells[%d].name", i), cell, nil)
		}
		names[i] = *cell.Name
	}
	return names, nil
}

// zipCells pairs names with cells up to the shorter of the two. A cell with
// no content is listed in fields but left out of data.
func zipCells(names []string, cells []models.Cell, fields []string, data map[string]string) []string {
	n := min(len(names), len(cells))
	for i := 0; i < n; i++ {
		if !slices.Contains(fields, names[i]) {
			fields = append(fields, names[i])
		}
		if cells[i].Content.Valid {
			data[names[i]] = cells[i].Content.Value
		} else {
			delete(data, names[i])
		}
	}
	return fields
}

func cellAt(entity string, cells []models.Cell, i int) (models.Cell, error) {
	if i < 0 || i >= len(cells) {
		return models.Cell{}, malformed(entity, fmt.Sprintf("cells[%d]", i), cells,
			fmt.Errorf("row has %d cells", len(cells)))
	}
	return cells[i], nil
}
