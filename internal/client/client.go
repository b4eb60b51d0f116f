package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rl1809/food-order/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Message)
}

type PlaceOrderResult struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API served under apiURL + "/api".
// A nil httpClient gets a default with a 10s timeout.
func New(apiURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: apiURL + "/api", httpClient: httpClient}
}

func (c *Client) ListFood(ctx context.Context) ([]domain.FoodItem, error) {
	var items []domain.FoodItem
	if err := c.do(ctx, http.MethodGet, "/food", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Seed(ctx context.Context) (string, error) {
	var body bytes.Buffer
	if err := c.do(ctx, http.MethodGet, "/seed", nil, &body); err != nil {
		return "", err
	}
	return body.String(), nil
}

func (c *Client) PlaceOrder(ctx context.Context, items []domain.OrderItem) (*PlaceOrderResult, error) {
	payload := struct {
		Items []domain.OrderItem `json:"items"`
	}{Items: items}

	var result PlaceOrderResult
	if err := c.do(ctx, http.MethodPost, "/order", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.PopulatedOrder, error) {
	var orders []domain.PopulatedOrder
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// do sends the request and decodes the response into out. A *bytes.Buffer
// out receives the raw body.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &apiErr) != nil || apiErr.Error == "" {
			apiErr.Error = string(raw)
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if buf, ok := out.(*bytes.Buffer); ok {
		_, err := buf.ReadFrom(resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
