// Package paypal talks to the PayPal REST v1 payments API.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

// tokenSkew renews the OAuth token slightly before PayPal expires it.
const tokenSkew = 30 * time.Second

// Client creates and executes PayPal payments.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	log          *slog.Logger
	now          func() time.Time

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewClient creates a PayPal client against the given API base URL.
func NewClient(baseURL, clientID, clientSecret string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: timeout},
		log:          logger.With("adapter", "paypal"),
		now:          time.Now,
	}
}

// APIError is a non-2xx response from PayPal.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("paypal: status %d", e.StatusCode)
	}
	return fmt.Sprintf("paypal: status %d: %s: %s", e.StatusCode, e.Name, e.Message)
}

// Unwrap lets callers treat every provider rejection as a gateway failure.
func (e *APIError) Unwrap() error { return domain.ErrGatewayUnavailable }

// PaymentRequest describes a payment the donor is about to approve.
type PaymentRequest struct {
	Amount      domain.Money
	Currency    string
	Description string
	// Custom is echoed back by PayPal on execute; it carries the cause id.
	Custom      string
	ReturnURL   string
	CancelURL   string
}

// Payment is a created, not yet approved payment.
type Payment struct {
	ID          string
	ApprovalURL string
}

// CreatePayment registers a sale and returns the URL the donor must visit to approve it.
func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (*Payment, error) {
	body := createPaymentBody{
		Intent: "sale",
		Payer:  payer{PaymentMethod: "paypal"},
		RedirectURLs: redirectURLs{
			ReturnURL: req.ReturnURL,
			CancelURL: req.CancelURL,
		},
		Transactions: []transaction{{
			Amount:      amount{Total: req.Amount.String(), Currency: req.Currency},
			Description: req.Description,
			Custom:      req.Custom,
		}},
	}

	var resp paymentResponse
	if err := c.call(ctx, http.MethodPost, "/v1/payments/payment", body, &resp); err != nil {
		return nil, fmt.Errorf("paypal.CreatePayment: %w", err)
	}

	for _, link := range resp.Links {
		if link.Rel == "approval_url" {
			c.log.InfoContext(ctx, "paypal payment created", slog.String("payment_id", resp.ID))
			return &Payment{ID: resp.ID, ApprovalURL: link.Href}, nil
		}
	}
	return nil, fmt.Errorf("paypal.CreatePayment: no approval_url in response: %w", domain.ErrGatewayUnavailable)
}

// ExecutePayment captures an approved payment and returns the capture confirmation.
// It is never retried: a second execute of the same payment is rejected by PayPal.
func (c *Client) ExecutePayment(ctx context.Context, paymentID, payerID string) (*domain.CaptureConfirmation, error) {
	path := "/v1/payments/payment/" + url.PathEscape(paymentID) + "/execute"

	var resp paymentResponse
	if err := c.call(ctx, http.MethodPost, path, executeBody{PayerID: payerID}, &resp); err != nil {
		return nil, fmt.Errorf("paypal.ExecutePayment: %w", err)
	}

	conf, err := mapCapture(resp)
	if err != nil {
		return nil, fmt.Errorf("paypal.ExecutePayment: %w", err)
	}

	c.log.InfoContext(ctx, "paypal payment executed",
		slog.String("payment_id", conf.PaymentID),
		slog.String("capture_id", conf.CaptureID),
		slog.String("amount", conf.Amount.String()))

	return conf, nil
}

// mapCapture converts an executed payment into a capture confirmation.
// The capture id is the sale id, falling back to the payment id.
func mapCapture(resp paymentResponse) (*domain.CaptureConfirmation, error) {
	if len(resp.Transactions) == 0 {
		return nil, fmt.Errorf("no transactions in payment %s: %w", resp.ID, domain.ErrMalformedCorrelation)
	}
	tx := resp.Transactions[0]

	total, err := decimal.NewFromString(tx.Amount.Total)
	if err != nil {
		return nil, fmt.Errorf("amount %q: %w", tx.Amount.Total, domain.ErrMalformedCorrelation)
	}
	money, err := domain.MoneyFromDecimal(total)
	if err != nil {
		return nil, fmt.Errorf("amount %q: %w", tx.Amount.Total, domain.ErrMalformedCorrelation)
	}

	captureID := resp.ID
	for _, rr := range tx.RelatedResources {
		if rr.Sale != nil && rr.Sale.ID != "" {
			captureID = rr.Sale.ID
			break
		}
	}

	conf := &domain.CaptureConfirmation{
		CaptureID:   captureID,
		PaymentID:   resp.ID,
		Amount:      money,
		Currency:    tx.Amount.Currency,
		Description: tx.Description,
	}
	if id, err := uuid.Parse(tx.Custom); err == nil {
		conf.CauseID = id
	}
	return conf, nil
}

// call performs an authenticated JSON request and decodes a 2xx response into out.
func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "paypal request failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("%s %s: %w: %v", method, path, domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateToken()
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp.StatusCode, body)
		c.log.ErrorContext(ctx, "paypal request rejected",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("name", apiErr.Name))
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w: %v", domain.ErrGatewayUnavailable, err)
	}
	return nil
}

// token returns a cached OAuth access token, fetching a new one when needed.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.now().Before(c.expiresAt) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "paypal token request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("token: %w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", decodeAPIError(resp.StatusCode, body)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil || tr.AccessToken == "" {
		return "", fmt.Errorf("token: invalid response: %w", domain.ErrGatewayUnavailable)
	}

	c.accessToken = tr.AccessToken
	c.expiresAt = c.now().Add(time.Duration(tr.ExpiresIn)*time.Second - tokenSkew)
	return c.accessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		apiErr.Name = er.Name
		apiErr.Message = er.Message
		if apiErr.Name == "" {
			apiErr.Name = er.Error
			apiErr.Message = er.ErrorDescription
		}
	}
	return apiErr
}
