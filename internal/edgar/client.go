package edgar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spacos/spac-os-api/pkg/config"
)

// Client fetches filing metadata from the SEC EDGAR company browse pages.
// EDGAR is treated as an opaque external source: the client only pulls the
// filing index, never documents.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	parser     *Parser
}

// NewClient creates a new EDGAR client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.EDGARBaseURL,
		userAgent:  cfg.EDGARUserAgent,
		parser:     NewParser(),
	}
}

// FetchFilings retrieves the most recent filings listed for a CIK
func (c *Client) FetchFilings(ctx context.Context, cik string) ([]FilingRecord, error) {
	if cik == "" {
		return nil, fmt.Errorf("cik is required")
	}

	endpoint := fmt.Sprintf("%s/cgi-bin/browse-edgar?%s", c.baseURL, url.Values{
		"action": {"getcompany"},
		"CIK":    {cik},
		"owner":  {"include"},
		"count":  {"40"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build EDGAR request: %w", err)
	}
	// The SEC rejects requests without an identifying User-Agent
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch EDGAR filings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("EDGAR returned status %d for CIK %s", resp.StatusCode, cik)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse EDGAR response: %w", err)
	}

	return c.parser.ParseFilingIndex(doc), nil
}
