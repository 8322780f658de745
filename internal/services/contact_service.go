package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/pkg/config"
	"github.com/pacman-cli/portfolio/pkg/logger"
)

// ErrEmailNotConfigured is returned when any EmailJS credential is missing
var ErrEmailNotConfigured = errors.New("email service is not configured")

// ContactService relays website contact form submissions to EmailJS
type ContactService struct {
	cfg        config.EmailJSConfig
	resetAfter time.Duration
	httpClient *http.Client
}

func NewContactService(cfg config.EmailJSConfig, resetAfter time.Duration, timeout time.Duration) *ContactService {
	return &ContactService{
		cfg:        cfg,
		resetAfter: resetAfter,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Configured reports whether all three EmailJS credentials are set
func (s *ContactService) Configured() bool {
	return s.cfg.ServiceID != "" && s.cfg.TemplateID != "" && s.cfg.PublicKey != ""
}

// Send forwards the form verbatim in a single request
func (s *ContactService) Send(ctx context.Context, form models.ContactForm) error {
	if !s.Configured() {
		return ErrEmailNotConfigured
	}

	payload := emailJSRequest{
		ServiceID:  s.cfg.ServiceID,
		TemplateID: s.cfg.TemplateID,
		UserID:     s.cfg.PublicKey,
		TemplateParams: map[string]string{
			"from_name":  form.Name,
			"from_email": form.Email,
			"message":    form.Message,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL+"/api/v1.0/email/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email service returned status: %d", resp.StatusCode)
	}
	return nil
}

// Submit sends the form and maps the outcome to the UI state shown next
func (s *ContactService) Submit(ctx context.Context, form models.ContactForm) models.ContactResult {
	if err := s.Send(ctx, form); err != nil {
		if errors.Is(err, ErrEmailNotConfigured) {
			logger.Warnf("Contact form submitted but EmailJS credentials are missing")
		} else {
			logger.WithError(err).Error("Failed to send contact form")
		}
		return models.ContactResult{Status: models.ContactStatusError, ResetAfter: s.resetAfter}
	}

	logger.WithField("from", form.Email).Info("Contact form sent")
	return models.ContactResult{Status: models.ContactStatusSuccess, ResetAfter: s.resetAfter}
}
