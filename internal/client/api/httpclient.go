package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmikhr/stylecart/internal/client/models"
	"github.com/google/uuid"
)

// HTTPClient talks JSON over HTTP to the store API. It holds no session
// state: tokens are passed per call.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for baseURL. The caller is expected to have
// normalized baseURL already (no trailing slash). A zero timeout means the
// transport default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SetBaseURL switches the client to a different endpoint. The caller is
// expected to pass an already-normalized URL.
func (c *HTTPClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// request performs one HTTP exchange. A bearer Authorization header is
// attached iff token is non-empty. Non-2xx responses become *HTTPError with
// the raw body; transport failures wrap ErrUnavailable. On success the raw
// body and Content-Type are returned for the typed wrappers to decode.
func (c *HTTPClient) request(ctx context.Context, method, path string, body any, token string) ([]byte, string, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &HTTPError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, resp.Header.Get("Content-Type"), nil
}

// requestJSON performs an exchange and decodes a JSON body into out when the
// response declares a JSON content type. A non-JSON success body is ignored
// when out is nil and rejected otherwise.
func (c *HTTPClient) requestJSON(ctx context.Context, method, path string, body any, token string, out any) error {
	respBody, contentType, err := c.request(ctx, method, path, body, token)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if !strings.Contains(contentType, "application/json") {
		return fmt.Errorf("unexpected content type %q for %s %s", contentType, method, path)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response for %s %s: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) Healthz(ctx context.Context) error {
	_, _, err := c.request(ctx, http.MethodGet, "/healthz", nil, "")
	return err
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	return c.requestJSON(ctx, http.MethodPost, "/auth/register", credentials{Email: email, Password: password}, "", nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := c.requestJSON(ctx, http.MethodPost, "/auth/login", credentials{Email: email, Password: password}, "", &out)
	if err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access_token")
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*models.Identity, error) {
	var out models.Identity
	if err := c.requestJSON(ctx, http.MethodGet, "/me", nil, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.requestJSON(ctx, http.MethodGet, "/categories", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, token string, req CreateCategoryRequest) (*models.Category, error) {
	var out models.Category
	if err := c.requestJSON(ctx, http.MethodPost, "/categories", req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.requestJSON(ctx, http.MethodGet, "/products", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, token string, req CreateProductRequest) (*models.Product, error) {
	var out models.Product
	if err := c.requestJSON(ctx, http.MethodPost, "/products", req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	if err := c.requestJSON(ctx, http.MethodGet, "/orders", nil, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, token string, items []OrderItemRequest) (*models.Order, error) {
	body := struct {
		Items []OrderItemRequest `json:"items"`
	}{Items: items}

	var out models.Order
	if err := c.requestJSON(ctx, http.MethodPost, "/orders", body, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
