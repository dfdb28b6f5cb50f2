package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mitrasafety/storefront/internal/catalog"
	"mitrasafety/storefront/internal/config"
	"mitrasafety/storefront/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("storefront api: not found")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("storefront api: HTTP %d", e.Status)
	}
	return fmt.Sprintf("storefront api: HTTP %d: %s", e.Status, e.Message)
}

// SearchParams narrows GET /api/products on the server side. Zero values are
// omitted from the query string.
type SearchParams struct {
	Query       string
	Categories  []string
	MinPrice    *int64
	MaxPrice    *int64
	InStockOnly bool
}

// SearchParamsFromFilters maps the filters the server understands. Tag
// dimensions have no server-side equivalent and are applied locally.
func SearchParamsFromFilters(filters domain.FilterState) SearchParams {
	minPrice := filters.PriceRange.Min
	maxPrice := filters.PriceRange.Max
	return SearchParams{
		Query:       filters.SearchQuery,
		Categories:  append([]string(nil), filters.SelectedCategories...),
		MinPrice:    &minPrice,
		MaxPrice:    &maxPrice,
		InStockOnly: filters.InStockOnly,
	}
}

func (p SearchParams) values() url.Values {
	q := url.Values{}
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	if len(p.Categories) > 0 {
		q.Set("categories", strings.Join(p.Categories, ","))
	}
	if p.MinPrice != nil {
		q.Set("minPrice", strconv.FormatInt(*p.MinPrice, 10))
	}
	if p.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatInt(*p.MaxPrice, 10))
	}
	if p.InStockOnly {
		q.Set("inStockOnly", "true")
	}
	return q
}

type StorefrontClient interface {
	ListProducts(ctx context.Context, params SearchParams) ([]catalog.RawProduct, error)
	GetProduct(ctx context.Context, id string) (*catalog.RawProduct, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateOrder(ctx context.Context, order domain.OrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
}

type storefrontClient struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client
}

func NewStorefrontClient(cfg config.APIConfig) StorefrontClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &storefrontClient{
		rl:         rl,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: client,
	}
}

func (c *storefrontClient) ListProducts(ctx context.Context, params SearchParams) ([]catalog.RawProduct, error) {
	endpoint := c.baseURL + "/api/products"
	if q := params.values(); len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var products []catalog.RawProduct
	if err := c.getJSON(ctx, endpoint, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	log.Debugf("Fetched %d products", len(products))
	return products, nil
}

func (c *storefrontClient) GetProduct(ctx context.Context, id string) (*catalog.RawProduct, error) {
	endpoint := fmt.Sprintf("%s/api/products/%s", c.baseURL, url.PathEscape(id))

	var product catalog.RawProduct
	if err := c.getJSON(ctx, endpoint, &product); err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return &product, nil
}

func (c *storefrontClient) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.getJSON(ctx, c.baseURL+"/api/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (c *storefrontClient) CreateOrder(ctx context.Context, order domain.OrderRequest) (*domain.Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}

	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.baseURL + "/api/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	raw := resp.String()
	if resp.IsError() {
		return nil, fmt.Errorf("failed to create order: %w", apiError(resp.StatusCode(), raw))
	}

	var created domain.Order
	if err := json.Unmarshal([]byte(raw), &created); err != nil {
		return nil, fmt.Errorf("failed to decode created order: %w", err)
	}

	log.Infof("🧾 Order %s created (total %d)", created.ID, created.Total)
	return &created, nil
}

func (c *storefrontClient) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	endpoint := fmt.Sprintf("%s/api/orders/%s", c.baseURL, url.PathEscape(id))

	var order domain.Order
	if err := c.getJSON(ctx, endpoint, &order); err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", id, err)
	}
	return &order, nil
}

func (c *storefrontClient) getJSON(ctx context.Context, endpoint string, out any) error {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("failed to fetch URL: %w", err)
	}

	raw := resp.String()
	if resp.IsError() {
		return apiError(resp.StatusCode(), raw)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func apiError(status int, body string) error {
	if status == http.StatusNotFound {
		return ErrNotFound
	}

	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal([]byte(body), &payload)

	return &APIError{Status: status, Message: payload.Message}
}
