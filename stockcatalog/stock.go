package stockcatalog

// StockRow holds one (code, quantity) pair extracted from a product listing.
// The quantity stays a string because the source attribute may be missing,
// in which case it carries the "Unknown" marker instead of a number.
type StockRow struct {
	Code string // Product/SKU identifier, first token of the code cell
	QTY  string // Maximum orderable quantity, or "Unknown"
}

// UnknownQTY is the marker stored when a quantity cannot be read from the page.
const UnknownQTY = "Unknown"

// StockTable is the ordered collection of rows for one run.  Insertion order
// is extraction order across all fetched pages; derived rows go at the end.
// Duplicate codes are allowed.
type StockTable []StockRow

// FirstByCode returns the first row whose code matches exactly.
func (table StockTable) FirstByCode(code string) (StockRow, bool) {
	for _, row := range table {
		if row.Code == code {
			return row, true
		}
	}
	return StockRow{}, false
}
