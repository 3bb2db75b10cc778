// Package orderapi talks to the Strapi-style content backend that records
// orders and sends confirmation emails.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"brewshop/internal/domain"
	"go.uber.org/zap"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New builds a client. The default http.Client has no overall timeout: an
// order request is not abandoned while the backend may still be creating it.
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger.Named("orderapi"),
	}
}

// orderPayload sends the amount as a JSON number, which is what the backend
// schema declares.
type orderPayload struct {
	Amount   json.Number        `json:"amount"`
	Products []domain.CartEntry `json:"products"`
	Address  string             `json:"address"`
	Zip      string             `json:"zip"`
	City     string             `json:"city"`
	Token    string             `json:"token"`
}

func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) error {
	return c.post(ctx, "/orders", orderPayload{
		Amount:   json.Number(req.Amount.String()),
		Products: req.Products,
		Address:  req.Address,
		Zip:      req.Zip,
		City:     req.City,
		Token:    req.Token,
	})
}

func (c *Client) SendOrderEmail(ctx context.Context, email domain.OrderEmail) error {
	return c.post(ctx, "/email", email)
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug("order api call", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	c.logger.Warn("order api call failed", zap.String("path", path), zap.Int("status", resp.StatusCode))
	return errors.New(errorMessage(resp.StatusCode, raw))
}

// errorMessage picks the backend's own message when it sent one. Strapi
// replies with either {"message": ...} or {"error": ...}, and error may be a
// string or an object with its own message.
func errorMessage(status int, raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		for _, field := range []json.RawMessage{body.Message, body.Error} {
			if msg := textOf(field); msg != "" {
				return msg
			}
		}
	}
	return http.StatusText(status)
}

func textOf(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var nested struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &nested) == nil {
		return nested.Message
	}
	return ""
}
