package audienceview

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"marquee/internal/config"
)

// Client fetches one day of listings per request, authenticating with browser
// cookies. It is the only component that talks to the network.
type Client struct {
	http     *resty.Client
	baseURL  string
	searchID string
	host     string
}

// NewClient builds a Client from site configuration and a cookie jar keyed by
// cookie name.
func NewClient(cfg *config.Config, jar map[string]string) *Client {
	httpClient := resty.New().
		SetTimeout(time.Duration(cfg.Site.RequestTimeout) * time.Second).
		SetHeaders(map[string]string{
			"User-Agent":                cfg.Site.UserAgent,
			"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language":           "en-GB,en;q=0.5",
			"Connection":                "keep-alive",
			"Upgrade-Insecure-Requests": "1",
			"Sec-Fetch-Dest":            "document",
			"Sec-Fetch-Mode":            "navigate",
			"Sec-Fetch-Site":            "same-origin",
			"Sec-Fetch-User":            "?1",
		})
	for name, value := range jar {
		httpClient.SetCookie(&http.Cookie{Name: name, Value: value})
	}

	return &Client{
		http:     httpClient,
		baseURL:  cfg.Site.BaseURL,
		searchID: cfg.Site.SearchID,
		host:     cfg.Site.Host,
	}
}

// FetchDay retrieves the raw search page for one date. A 403 means the CDN
// rejected the cookies, which is fatal for the whole run.
func (c *Client) FetchDay(ctx context.Context, date time.Time) (string, error) {
	day := date.Format("2006-01-02")

	query := url.Values{}
	query.Set("BOset::WScontent::SearchCriteria::venue_filter", "")
	query.Set("BOset::WScontent::SearchCriteria::city_filter", "")
	query.Set("BOset::WScontent::SearchCriteria::month_filter", "")
	query.Set("BOset::WScontent::SearchCriteria::object_type_filter", "")
	query.Set("BOset::WScontent::SearchCriteria::category_filter", "")
	query.Set("BOset::WScontent::SearchCriteria::search_criteria", "")
	query.Set("doWork::WScontent::search", "1")
	query.Set("BOparam::WScontent::search::article_search_id", c.searchID)
	query.Set("BOset::WScontent::SearchCriteria::search_from", day)
	query.Set("BOset::WScontent::SearchCriteria::search_to", day)

	referer := url.Values{}
	referer.Set("BOset::WScontent::SearchCriteria::search_from", day)
	referer.Set("BOset::WScontent::SearchCriteria::search_to", day)
	referer.Set("doWork::WScontent::search", "1")
	referer.Set("BOparam::WScontent::search::article_search_id", c.searchID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetHeader("Referer", c.baseURL+"?"+referer.Encode()).
		Get(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", day, err)
	}

	if resp.StatusCode() == http.StatusForbidden {
		return "", fmt.Errorf("%w: site returned 403 for %s; visit https://%s in Firefox and retry", ErrChallenged, day, c.host)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch %s: status %d", day, resp.StatusCode())
	}

	return resp.String(), nil
}
