package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/domain/entity"

	qs "github.com/google/go-querystring/query"
)

const advocatesPath = "/api/advocates"

// Transport carries a query to the directory and brings the page back.
// Implementations must return promptly with ctx.Err() once ctx is cancelled.
type Transport interface {
	FetchAdvocates(ctx context.Context, params entity.AdvocateQuery) (*dto.AdvocatePageResponse, error)
}

// StatusError reports a non-2xx response from the directory endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %d", e.StatusCode)
}

// HTTPTransport queries the directory endpoint over HTTP.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

func NewHTTPTransport(baseURL string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient replaces the underlying client, mainly for tests.
func (t *HTTPTransport) WithHTTPClient(client *http.Client) *HTTPTransport {
	t.client = client
	return t
}

func (t *HTTPTransport) FetchAdvocates(ctx context.Context, params entity.AdvocateQuery) (*dto.AdvocatePageResponse, error) {
	values, err := qs.Values(toListRequest(params))
	if err != nil {
		return nil, fmt.Errorf("encode advocate query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+advocatesPath+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build advocate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("fetch advocates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var page dto.AdvocatePageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("decode advocate page: %w", err)
	}

	return &page, nil
}

func toListRequest(params entity.AdvocateQuery) dto.AdvocateListRequest {
	params = params.Normalize()
	req := dto.AdvocateListRequest{
		Page:     strconv.Itoa(params.Page),
		PageSize: strconv.Itoa(params.PageSize),
		Search:   params.SearchTerm,
	}
	if params.Sorted() {
		req.SortBy = string(params.SortField)
		req.SortOrder = string(params.SortOrder)
	}
	return req
}
