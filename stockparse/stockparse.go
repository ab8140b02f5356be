// Package stockparse extracts stock quantity rows from a product listing
// page.  The markup it understands is one specific storefront layout: a set
// of container blocks whose "column" children repeat in a fixed pattern of
// five cells per logical row.
package stockparse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/jmadden/stock_spider/stockcatalog"
)

// Layout names the class signatures and slot positions the extractor keys
// on.  They are positional assumptions tied to one page design, so they live
// here as data rather than inline literals.
type Layout struct {
	// ContainerClasses is the exact class-token set of a product listing
	// block.  Token order in the document does not matter.
	ContainerClasses []string
	// HeaderClasses marks the column-title sub-blocks which must be removed
	// before the column walk; they carry the generic column class too.
	HeaderClasses []string
	// ColumnClass is the generic marker of a data cell.
	ColumnClass string
	// GroupSize is the number of consecutive column cells per logical row.
	GroupSize int
	// CodeSlot and QTYSlot are offsets within a group.
	CodeSlot int
	QTYSlot  int
}

// DefaultLayout matches the product_form_list markup of the target site.
var DefaultLayout = Layout{
	ContainerClasses: []string{
		"product_form_list", "container", "is-justtify-space-between",
		"has-no-side-gutter", "content-for-list",
	},
	HeaderClasses: []string{"column", "header", "one-fifth", "medium-down--one-half"},
	ColumnClass:   "column",
	GroupSize:     5,
	CodeSlot:      0,
	QTYSlot:       3,
}

func classSelector(tag string, classes []string) string {
	return tag + "." + strings.Join(classes, ".")
}

// ParseStockRows walks the document for stock rows.  It never fails the run:
// a document goquery cannot parse yields no rows and a warning, and a group
// with an empty code cell is dropped.  Groups are formed strictly by
// position; a trailing group with fewer than GroupSize cells is not a row
// and yields nothing.
func ParseStockRows(html string, layout Layout) stockcatalog.StockTable {
	if layout.GroupSize <= 0 {
		log.Warn().Int("group_size", layout.GroupSize).Msg("invalid layout group size")
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Warn().Err(err).Msg("unparseable HTML document")
		return nil
	}

	var rows stockcatalog.StockTable
	doc.Find(classSelector("div", layout.ContainerClasses)).Each(func(_ int, container *goquery.Selection) {
		// Column-title blocks repeat the generic column class, so they have
		// to go before the positional walk or every group shifts.
		container.Find(classSelector("div", layout.HeaderClasses)).Remove()

		columns := container.Find(classSelector("div", []string{layout.ColumnClass}))
		for i := 0; i+layout.GroupSize <= columns.Length(); i += layout.GroupSize {
			row, ok := parseGroup(columns, i, layout)
			if !ok {
				log.Warn().Int("index", i).Msg("skipping malformed row group")
				continue
			}
			if row.Code == "" {
				continue
			}
			rows = append(rows, row)
		}
	})
	return rows
}

// parseGroup reads one logical row starting at base index i.  Slot offsets
// past the end of the column list are treated as absent, never as an error.
func parseGroup(columns *goquery.Selection, i int, layout Layout) (stockcatalog.StockRow, bool) {
	if layout.CodeSlot < 0 || layout.CodeSlot >= layout.GroupSize ||
		layout.QTYSlot < 0 || layout.QTYSlot >= layout.GroupSize {
		return stockcatalog.StockRow{}, false
	}

	code := ""
	if cell := columns.Eq(i + layout.CodeSlot); cell.Length() > 0 {
		// Only the first space-delimited token is the code; the rest of the
		// cell is descriptive text.
		fields := strings.Fields(strings.TrimSpace(cell.Text()))
		if len(fields) > 0 {
			code = fields[0]
		}
	}

	qty := stockcatalog.UnknownQTY
	if cell := columns.Eq(i + layout.QTYSlot); cell.Length() > 0 {
		if input := cell.Find("input"); input.Length() > 0 {
			qty = input.First().AttrOr("max", stockcatalog.UnknownQTY)
		}
	}

	return stockcatalog.StockRow{Code: code, QTY: qty}, true
}
