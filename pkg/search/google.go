package search

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/go-resty/resty/v2"
)

const (
	// medicalQuerySuffix narrows web results to medical literature.
	medicalQuerySuffix = " medical research"
	maxResults         = 10
)

// Result is a single web search hit.
// swagger:model
type Result struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	Snippet      string `json:"snippet"`
	FormattedURL string `json:"formattedUrl"`
}

// GoogleClient queries the Google Custom Search JSON API.
type GoogleClient struct {
	client   *resty.Client
	apiKey   string
	engineID string
}

func NewGoogleClient(baseURL, apiKey, engineID string) *GoogleClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	return &GoogleClient{client: c, apiKey: apiKey, engineID: engineID}
}

type googleResponse struct {
	Items []Result `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search returns up to ten results for query. No results is not an error.
func (g *GoogleClient) Search(ctx context.Context, query string) ([]Result, error) {
	if g.apiKey == "" || g.engineID == "" {
		return nil, errdef.NewUnavailable("Google Search API key or engine id not configured")
	}

	var body googleResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": g.apiKey,
			"cx":  g.engineID,
			"q":   query + medicalQuerySuffix,
			"num": fmt.Sprint(maxResults),
		}).
		SetResult(&body).
		SetError(&body).
		Get("/customsearch/v1")
	if err != nil {
		return nil, errdef.NewBadGateway("google search request failed: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		message := resp.Status()
		if body.Error != nil {
			message = body.Error.Message
		}
		return nil, errdef.NewBadGateway("google search status %d: %s", resp.StatusCode(), message)
	}

	if body.Items == nil {
		return []Result{}, nil
	}
	return body.Items, nil
}
