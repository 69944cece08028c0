package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	calc "Ferrum/internal/calc"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Title   string     `json:"title"`
	Author  string     `json:"author"`
	Product string     `json:"product"`
	Calc    calc.Input `json:"calc"`
	Quote   calc.Quote `json:"quote"`
}

type Handler struct{}

// Generate renders a PDF audit sheet for one calculation: the dimensions as
// entered, the formula actually applied, the weight and the optional price.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Weight Calculation"
	}

	res := calc.CalculateWeight(input.Calc)
	if res == nil {
		http.Error(w, "Invalid dimensions", http.StatusBadRequest)
		return
	}
	price := calc.ConvertToPrice(res.WeightKg, input.Quote)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Product: %s", input.Product))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Shape: %s", input.Calc.Kind))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if input.Calc.SheetType != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Sheet type: %s", input.Calc.SheetType))
		pdf.Ln(6)
	}
	for _, key := range sortedKeys(input.Calc.Dims) {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %g", key, input.Calc.Dims[key]))
		pdf.Ln(6)
	}
	if input.Calc.Density > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("density: %g", input.Calc.Density))
		pdf.Ln(6)
	}
	if input.Calc.Quantity > 1 {
		pdf.Cell(0, 6, fmt.Sprintf("quantity: %d", input.Calc.Quantity))
		pdf.Ln(6)
	}
	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Formula: %s", res.Formula))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Weight: %.2f kg", res.WeightKg))
	if price != nil {
		pdf.Ln(8)
		vat := "excl. VAT"
		if input.Quote.IncludeVAT {
			vat = "incl. VAT"
		}
		pdf.Cell(0, 8, fmt.Sprintf("Total: %d (%s)", price.Total, vat))
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"calculation.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func sortedKeys(d calc.Dims) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
