package main

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmadden/stock_spider/config"
)

const listingPage = `<html><body>
<div class="product_form_list container is-justtify-space-between has-no-side-gutter content-for-list">
  <div class="column header one-fifth medium-down--one-half">Code</div>
  <div class="column">ACGEL250 250ml gel</div>
  <div class="column">price</div>
  <div class="column">pack</div>
  <div class="column"><input type="number" max="100"></div>
  <div class="column">cart</div>
  <div class="column">OTHER1 widget</div>
  <div class="column">price</div>
  <div class="column">pack</div>
  <div class="column"><input type="number" max="4"></div>
  <div class="column">cart</div>
</div>
</body></html>`

func TestRunFileMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	dir := t.TempDir()
	urlsPath := filepath.Join(dir, "urls.csv")
	outPath := filepath.Join(dir, "output.csv")
	// The dead URL in the middle must be logged and skipped, not abort the run.
	require.NoError(t, os.WriteFile(urlsPath,
		[]byte("url\n"+srv.URL+"\nhttp://127.0.0.1:1/unreachable\n"), 0o644))

	cfg := &config.Config{
		RequestTimeout: 2 * time.Second,
		RequestDelay:   time.Millisecond,
		URLsFile:       urlsPath,
		OutputFile:     outPath,
	}
	require.NoError(t, run(context.Background(), cfg))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 6)
	assert.Equal(t, []string{"Code", "QTY"}, records[0])
	assert.Equal(t, []string{"ACGEL250", "100"}, records[1])
	assert.Equal(t, []string{"OTHER1", "4"}, records[2])
	assert.Equal(t, []string{"ACGEL250(2)", "50"}, records[3])
	assert.Equal(t, []string{"ACGEL250(4)", "25"}, records[4])
	assert.Equal(t, []string{"ACGEL250(12)", "8"}, records[5])
}

func TestRunNoURLsIsClean(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "output.csv")
	cfg := &config.Config{
		RequestTimeout: time.Second,
		URLsFile:       filepath.Join(dir, "absent.csv"),
		OutputFile:     outPath,
	}

	require.NoError(t, run(context.Background(), cfg))

	_, err := os.Stat(outPath)
	assert.True(t, os.IsNotExist(err), "no output is written when there is nothing to do")
}
