// stock_spider fetches product listing pages, extracts the stock quantity
// rows, appends the manually derived SKU variants, and writes the result to a
// local file or a Google Sheet.  It is a one-shot batch job: no state
// survives a run.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmadden/stock_spider/config"
	"github.com/jmadden/stock_spider/output"
	"github.com/jmadden/stock_spider/pagefetch"
	"github.com/jmadden/stock_spider/sheetio"
	"github.com/jmadden/stock_spider/stockcatalog"
	"github.com/jmadden/stock_spider/stockparse"
	"github.com/jmadden/stock_spider/urlsource"
)

var (
	urlsFile = flag.String("urls", "", "URL list file, overrides URLS_FILE")
	outFile  = flag.String("out", "", "output file, overrides OUTPUT_FILE")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	if *urlsFile != "" {
		cfg.URLsFile = *urlsFile
	}
	if *outFile != "" {
		cfg.OutputFile = *outFile
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

// run executes the whole pipeline once: load URLs, fetch and parse each page
// in order, derive the manual SKUs, write the table.  Per-URL failures are
// contained here; source, credential and sink failures come back as errors.
func run(ctx context.Context, cfg *config.Config) error {
	var source urlsource.Source
	var sink output.Sink
	if cfg.UseSheets {
		client, err := sheetio.NewClient(ctx, cfg.CredentialsFile, cfg.SpreadsheetID, cfg.WorksheetName)
		if err != nil {
			return err
		}
		source = urlsource.SheetSource{Client: client}
		sink = output.SheetSink{Client: client}
	} else {
		source = urlsource.FileSource{Path: cfg.URLsFile}
		sink = output.FileSink{Path: cfg.OutputFile}
	}

	urls, err := source.LoadURLs(ctx)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		log.Info().Msg("no URLs found; provide urls.csv or enable USE_SHEETS")
		return nil
	}
	log.Info().Int("urls", len(urls)).Msg("starting run")

	fetcher := pagefetch.New(cfg.RequestTimeout, cfg.RequestDelay)

	var table stockcatalog.StockTable
	for _, url := range urls {
		html, err := fetcher.Fetch(ctx, url)
		if err != nil {
			log.Warn().Str("url", url).Err(err).Msg("failed to GET")
		} else {
			rows := stockparse.ParseStockRows(html, stockparse.DefaultLayout)
			log.Info().Str("url", url).Int("rows", len(rows)).Msg("parsed page")
			table = append(table, rows...)
		}
		fetcher.Pause()
	}

	table = stockcatalog.DeriveManualSKUs(table)

	return sink.Write(ctx, table)
}
