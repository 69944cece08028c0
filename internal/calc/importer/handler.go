package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	calc "Ferrum/internal/calc"
	"Ferrum/internal/calc/batch"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

// Sheet handles an xlsx upload of plate rows and returns the batch result.
// Expected columns: sheet_type, length_m, width_m, thickness_mm, density.
// The header row is skipped; rows that do not parse are dropped.
func (h *Handler) Sheet(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var items []calc.Input
	for i := 1; i < len(rows); i++ {
		input, err := parseSheetRow(rows[i])
		if err != nil {
			continue
		}
		items = append(items, input)
	}
	if len(items) == 0 {
		http.Error(w, "No parsable rows", http.StatusBadRequest)
		return
	}

	res, err := batch.Calculate(batch.Request{Items: items})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func parseSheetRow(row []string) (calc.Input, error) {
	if len(row) < 4 {
		return calc.Input{}, fmt.Errorf("bad row")
	}
	length, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return calc.Input{}, err
	}
	width, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return calc.Input{}, err
	}
	thickness, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return calc.Input{}, err
	}
	density := 0.0
	if len(row) > 4 && row[4] != "" {
		density, _ = strconv.ParseFloat(row[4], 64)
	}
	return calc.Input{
		Kind:      calc.Sheet,
		SheetType: calc.SheetType(row[0]),
		Dims: calc.Dims{
			calc.DimLength:    length,
			calc.DimWidth:     width,
			calc.DimThickness: thickness,
		},
		Density: density,
	}, nil
}
