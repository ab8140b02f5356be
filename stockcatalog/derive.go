package stockcatalog

import "strconv"

// Manually maintained SKU variants.  These codes are sold in configurations
// the vendor site does not list directly, so their quantities are computed
// from the base code after every run.
const (
	gel5LCode  = "ACGEL5L"
	gel250Code = "ACGEL250"
)

// DeriveManualSKUs appends the manual SKU variants to the table and returns
// the result.  Existing rows are never removed or changed.  A trigger code
// whose quantity does not parse as an integer (e.g. "Unknown") is skipped
// without comment.  Note that the derivation is not idempotent: running it
// again on its own output appends the derived rows a second time.
func DeriveManualSKUs(table StockTable) StockTable {
	out := make(StockTable, len(table), len(table)+4)
	copy(out, table)

	if row, found := table.FirstByCode(gel5LCode); found {
		if qty, err := strconv.Atoi(row.QTY); err == nil {
			out = append(out, StockRow{Code: gel5LCode + "+", QTY: strconv.Itoa(qty)})
		}
	}

	if row, found := table.FirstByCode(gel250Code); found {
		if qty, err := strconv.Atoi(row.QTY); err == nil {
			// The 250ml unit ships in packs of 2, 4 and 12; integer division
			// legitimately yields 0 when the base quantity is small.
			out = append(out,
				StockRow{Code: gel250Code + "(2)", QTY: strconv.Itoa(qty / 2)},
				StockRow{Code: gel250Code + "(4)", QTY: strconv.Itoa(qty / 4)},
				StockRow{Code: gel250Code + "(12)", QTY: strconv.Itoa(qty / 12)},
			)
		}
	}

	return out
}
