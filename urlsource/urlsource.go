// Package urlsource supplies the list of target page URLs for a run.  Two
// interchangeable providers exist: a local tabular file and a Google Sheet
// worksheet; configuration decides which one is active.
package urlsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jmadden/stock_spider/sheetio"
)

// Source loads the URLs to fetch.  An empty result is not an error; the
// caller treats it as "nothing to do".
type Source interface {
	LoadURLs(ctx context.Context) ([]string, error)
}

// FileSource reads a local tabular file with a column named "url" (any
// casing, surrounding whitespace tolerated).  CSV is the default format; a
// path with an .xlsx extension is read through excelize instead.  A missing
// file or a missing url column yields an empty list, not an error.
type FileSource struct {
	Path string
}

// LoadURLs implements Source.
func (s FileSource) LoadURLs(ctx context.Context) ([]string, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return nil, nil
	}
	if strings.EqualFold(filepath.Ext(s.Path), ".xlsx") {
		return s.loadXLSX()
	}
	return s.loadCSV()
}

func (s FileSource) loadCSV() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", s.Path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", s.Path, err)
	}
	return urlsFromRows(records), nil
}

func (s FileSource) loadXLSX() ([]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", s.Path, err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheetNames[0])
	if err != nil {
		return nil, fmt.Errorf("unable to read rows from %s: %w", s.Path, err)
	}
	return urlsFromRows(rows), nil
}

// urlsFromRows locates the "url" column in the header row and returns its
// non-empty values in row order.  No matching column means no URLs.
func urlsFromRows(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	urlColumn := -1
	for i, name := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(name), "url") {
			urlColumn = i
			break
		}
	}
	if urlColumn < 0 {
		return nil
	}

	var urls []string
	for _, row := range rows[1:] {
		if urlColumn >= len(row) {
			continue
		}
		if value := strings.TrimSpace(row[urlColumn]); value != "" {
			urls = append(urls, value)
		}
	}
	return urls
}

// SheetSource reads column A of the configured worksheet.
type SheetSource struct {
	Client *sheetio.Client
}

// LoadURLs implements Source.
func (s SheetSource) LoadURLs(ctx context.Context) ([]string, error) {
	return s.Client.ReadURLColumn(ctx)
}
