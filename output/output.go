// Package output writes the final stock table.  The two sink implementations
// mirror the two URL providers: a local tabular file and a Google Sheet.
package output

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/jmadden/stock_spider/sheetio"
	"github.com/jmadden/stock_spider/stockcatalog"
)

// Sink consumes the final stock table exactly once per run.  Write failures
// are fatal and propagate to the caller.
type Sink interface {
	Write(ctx context.Context, table stockcatalog.StockTable) error
}

// FileSink serializes the table as two columns, "Code" and "QTY", to a local
// file, overwriting whatever is there.  CSV is the default format; an .xlsx
// path goes through excelize with a bold header for parity with the sheet
// sink.
type FileSink struct {
	Path string
}

// Write implements Sink.
func (s FileSink) Write(ctx context.Context, table stockcatalog.StockTable) error {
	var err error
	if strings.EqualFold(filepath.Ext(s.Path), ".xlsx") {
		err = s.writeXLSX(table)
	} else {
		err = s.writeCSV(table)
	}
	if err != nil {
		return err
	}
	log.Info().Int("rows", len(table)).Str("path", s.Path).Msg("wrote output file")
	return nil
}

func (s FileSink) writeCSV(table stockcatalog.StockTable) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", s.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Code", "QTY"}); err != nil {
		return fmt.Errorf("unable to write header: %w", err)
	}
	for _, row := range table {
		if err := w.Write([]string{row.Code, row.QTY}); err != nil {
			return fmt.Errorf("unable to write row for %s: %w", row.Code, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("unable to flush %s: %w", s.Path, err)
	}
	return nil
}

func (s FileSink) writeXLSX(table stockcatalog.StockTable) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Code", "QTY"}); err != nil {
		return fmt.Errorf("unable to write header: %w", err)
	}
	for i, row := range table {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{row.Code, row.QTY}); err != nil {
			return fmt.Errorf("unable to write row for %s: %w", row.Code, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("unable to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", style); err != nil {
		return fmt.Errorf("unable to style header: %w", err)
	}

	if err := f.SaveAs(s.Path); err != nil {
		return fmt.Errorf("unable to save %s: %w", s.Path, err)
	}
	return nil
}

// SheetSink writes the table into columns B and C of the configured
// worksheet, clearing stale rows first and bolding the header.
type SheetSink struct {
	Client *sheetio.Client
}

// Write implements Sink.
func (s SheetSink) Write(ctx context.Context, table stockcatalog.StockTable) error {
	if err := s.Client.WriteStockTable(ctx, table); err != nil {
		return err
	}
	log.Info().Int("rows", len(table)).Msg("Google Sheet updated with manual SKUs")
	return nil
}
