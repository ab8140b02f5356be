// Package pagefetch retrieves listing pages one at a time.
package pagefetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies the job to the target site.
const userAgent = "Mozilla/5.0 (+info@example.com)"

// Fetcher issues plain GET requests with a fixed timeout and identifying
// header.  It is strictly sequential; politeness is a fixed delay after every
// attempt, which the caller applies via Pause.
type Fetcher struct {
	client *resty.Client
	delay  time.Duration
}

// New builds a Fetcher with the given per-request timeout and inter-request
// delay.
func New(timeout, delay time.Duration) *Fetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
	return &Fetcher{client: client, delay: delay}
}

// Fetch gets one page and returns its body.  Transport failures and non-2xx
// statuses come back as errors; the caller logs them and moves on to the
// next URL, so nothing here is fatal to a run.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	res, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("GET %s: unexpected status %s", url, res.Status())
	}
	return string(res.Body()), nil
}

// Pause blocks for the fixed inter-request delay.  It runs after every fetch
// attempt regardless of outcome to bound the request rate.
func (f *Fetcher) Pause() {
	time.Sleep(f.delay)
}
