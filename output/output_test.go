package output

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jmadden/stock_spider/stockcatalog"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestFileSinkCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	table := stockcatalog.StockTable{
		{Code: "ACGEL5L", QTY: "12"},
		{Code: "ACGEL250", QTY: "Unknown"},
	}

	require.NoError(t, FileSink{Path: path}.Write(context.Background(), table))

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Code", "QTY"}, records[0])
	assert.Equal(t, []string{"ACGEL5L", "12"}, records[1])
	assert.Equal(t, []string{"ACGEL250", "Unknown"}, records[2])
}

func TestFileSinkCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale,content\nrow,1\nrow,2\n"), 0o644))

	require.NoError(t, FileSink{Path: path}.Write(context.Background(), stockcatalog.StockTable{
		{Code: "ONLY1", QTY: "5"},
	}))

	records := readCSV(t, path)
	require.Len(t, records, 2, "old rows must not survive the rewrite")
	assert.Equal(t, []string{"ONLY1", "5"}, records[1])
}

func TestFileSinkCSVEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")

	require.NoError(t, FileSink{Path: path}.Write(context.Background(), nil))

	records := readCSV(t, path)
	require.Len(t, records, 1, "header only")
	assert.Equal(t, []string{"Code", "QTY"}, records[0])
}

func TestFileSinkXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.xlsx")
	table := stockcatalog.StockTable{
		{Code: "ABC123", QTY: "15"},
	}

	require.NoError(t, FileSink{Path: path}.Write(context.Background(), table))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Code", "QTY"}, rows[0])
	assert.Equal(t, []string{"ABC123", "15"}, rows[1])
}

func TestFileSinkUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "output.csv")

	err := FileSink{Path: path}.Write(context.Background(), stockcatalog.StockTable{
		{Code: "A", QTY: "1"},
	})

	require.Error(t, err, "output I/O failures are fatal, not swallowed")
}
