// Package sheetio handles all Google Sheets traffic for the spider: reading
// the URL list out of column A and writing the stock table back to columns B
// and C of the same worksheet.
package sheetio

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jmadden/stock_spider/stockcatalog"
)

// Client wraps the Sheets service for one spreadsheet/worksheet pair.
type Client struct {
	srv           *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewClient authenticates with the service-account credential file and
// returns a client bound to the named worksheet.  Credential problems are
// fatal to the run and surface here.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID, worksheet string) (*Client, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}
	config, err := google.JWTConfigFromJSON(b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account file: %w", err)
	}
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return &Client{srv: srv, spreadsheetID: spreadsheetID, worksheet: worksheet}, nil
}

// ReadURLColumn returns the non-empty values of column A in row order.  A
// leading "url" header cell is dropped.
func (c *Client) ReadURLColumn(ctx context.Context) ([]string, error) {
	readRange := fmt.Sprintf("'%s'!A:A", c.worksheet)
	response, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %s of spreadsheet %s: %w", c.worksheet, c.spreadsheetID, err)
	}

	raw := make([]string, 0, len(response.Values))
	for _, row := range response.Values {
		value := ""
		if len(row) > 0 {
			value, _ = row[0].(string)
		}
		raw = append(raw, value)
	}
	return FilterURLColumn(raw), nil
}

// FilterURLColumn strips an optional leading "url" header (any casing) and
// all empty cells, preserving row order.
func FilterURLColumn(values []string) []string {
	if len(values) > 0 && strings.EqualFold(strings.TrimSpace(values[0]), "url") {
		values = values[1:]
	}
	urls := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			urls = append(urls, value)
		}
	}
	return urls
}

// WriteStockTable replaces the Code/QTY columns of the worksheet with the
// given table.  Columns B and C are cleared from row 2 down first, so stale
// rows beyond the new data never survive; row 1 is overwritten by the header
// write rather than cleared.  An empty table only clears.
func (c *Client) WriteStockTable(ctx context.Context, table stockcatalog.StockTable) error {
	clearRequest := &sheets.BatchClearValuesRequest{
		Ranges: []string{
			fmt.Sprintf("'%s'!B2:B", c.worksheet),
			fmt.Sprintf("'%s'!C2:C", c.worksheet),
		},
	}
	if _, err := c.srv.Spreadsheets.Values.BatchClear(c.spreadsheetID, clearRequest).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to clear columns B and C: %w", err)
	}

	if len(table) == 0 {
		return nil
	}

	codeColumn := [][]interface{}{{"Code"}}
	qtyColumn := [][]interface{}{{"QTY"}}
	for _, row := range table {
		codeColumn = append(codeColumn, []interface{}{row.Code})
		qtyColumn = append(qtyColumn, []interface{}{row.QTY})
	}

	if err := c.updateColumn(ctx, "B", codeColumn); err != nil {
		return err
	}
	if err := c.updateColumn(ctx, "C", qtyColumn); err != nil {
		return err
	}
	return c.boldHeader(ctx)
}

func (c *Client) updateColumn(ctx context.Context, column string, values [][]interface{}) error {
	writeRange := fmt.Sprintf("'%s'!%s1:%s%d", c.worksheet, column, column, len(values))
	valueRange := &sheets.ValueRange{Values: values}
	_, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("unable to update column %s: %w", column, err)
	}
	return nil
}

// boldHeader applies bold formatting to B1:C1.  The formatting API works on
// numeric sheet IDs, so the worksheet title has to be resolved first.
func (c *Client) boldHeader(ctx context.Context) error {
	spreadsheet, err := c.srv.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to look up spreadsheet metadata: %w", err)
	}
	sheetID := int64(-1)
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == c.worksheet {
			sheetID = sheet.Properties.SheetId
			break
		}
	}
	if sheetID < 0 {
		return fmt.Errorf("worksheet %q not found in spreadsheet %s", c.worksheet, c.spreadsheetID)
	}

	request := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    0,
					EndRowIndex:      1,
					StartColumnIndex: 1,
					EndColumnIndex:   3,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						TextFormat: &sheets.TextFormat{Bold: true},
					},
				},
				Fields: "userEnteredFormat.textFormat.bold",
			},
		}},
	}
	if _, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, request).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to bold header row: %w", err)
	}
	return nil
}
