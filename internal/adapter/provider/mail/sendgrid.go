// Package mail delivers transactional email through SendGrid dynamic templates.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Message is a single templated email.
type Message struct {
	To         string
	Subject    string
	TemplateID string
	Data       map[string]any
}

// SendGrid sends messages via the SendGrid v3 mail API.
type SendGrid struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewSendGrid creates a SendGrid sender.
func NewSendGrid(baseURL, apiKey, from string, timeout time.Duration, logger *slog.Logger) *SendGrid {
	return &SendGrid{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "sendgrid"),
	}
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject,omitempty"`
	TemplateID       string            `json:"template_id,omitempty"`
	Content          []content         `json:"content,omitempty"`
}

type personalization struct {
	To                  []address      `json:"to"`
	DynamicTemplateData map[string]any `json:"dynamic_template_data,omitempty"`
}

type address struct {
	Email string `json:"email"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send delivers msg. Without a template the data is rendered as a plain text body.
func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	body := sendRequest{
		Personalizations: []personalization{{
			To:                  []address{{Email: msg.To}},
			DynamicTemplateData: msg.Data,
		}},
		From:       address{Email: s.from},
		Subject:    msg.Subject,
		TemplateID: msg.TemplateID,
	}
	if msg.TemplateID == "" {
		body.Content = []content{{Type: "text/plain", Value: plainText(msg.Data)}}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("sendgrid: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v3/mail/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("sendgrid: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.log.ErrorContext(ctx, "sendgrid rejected message",
			slog.Int("status", resp.StatusCode),
			slog.String("subject", msg.Subject))
		return fmt.Errorf("sendgrid: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	s.log.DebugContext(ctx, "sendgrid message accepted", slog.String("subject", msg.Subject))
	return nil
}

func plainText(data map[string]any) string {
	var b strings.Builder
	for k, v := range data {
		fmt.Fprintf(&b, "%s: %v\n", k, v)
	}
	return b.String()
}
