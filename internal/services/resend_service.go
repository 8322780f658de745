package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/pkg/config"
	"github.com/pacman-cli/portfolio/pkg/logger"
)

// ResendService delivers contact notifications through the Resend HTTP API
type ResendService struct {
	cfg        config.ResendConfig
	httpClient *http.Client
}

func NewResendService(cfg config.ResendConfig, timeout time.Duration) *ResendService {
	return &ResendService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendContactNotification emails the site owner a copy of the message
func (s *ResendService) SendContactNotification(ctx context.Context, message *models.ContactMessage) error {
	email := resendEmail{
		From:    s.cfg.From,
		To:      []string{s.cfg.Recipient},
		Subject: "Portfolio Contact: " + html.EscapeString(message.Name),
		HTML:    BuildContactEmailHTML(message),
	}

	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	logger.WithField("recipient", s.cfg.Recipient).Info("Contact notification sent")
	return nil
}

// BuildContactEmailHTML renders the notification body with every field escaped
func BuildContactEmailHTML(message *models.ContactMessage) string {
	return fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong><br/>%s</p>",
		html.EscapeString(message.Name),
		html.EscapeString(message.Email),
		strings.ReplaceAll(html.EscapeString(message.Message), "\n", "<br/>"),
	)
}
