package services

import (
	"context"
	"fmt"
	"io"

	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/internal/repositories"
	"github.com/xuri/excelize/v2"
)

// ContactNotifier delivers a copy of a received message
type ContactNotifier interface {
	SendContactNotification(ctx context.Context, message *models.ContactMessage) error
}

// ContactMessageService handles messages received by the companion API
type ContactMessageService struct {
	contactMessageRepo *repositories.ContactMessageRepository
	notifier           ContactNotifier
}

func NewContactMessageService(contactMessageRepo *repositories.ContactMessageRepository, notifier ContactNotifier) *ContactMessageService {
	return &ContactMessageService{
		contactMessageRepo: contactMessageRepo,
		notifier:           notifier,
	}
}

// SaveMessage notifies the owner first and stores the message only when that succeeds
func (s *ContactMessageService) SaveMessage(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error) {
	if err := s.notifier.SendContactNotification(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send contact notification: %w", err)
	}

	if err := s.contactMessageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return message, nil
}

func (s *ContactMessageService) GetAll() ([]*models.ContactMessage, error) {
	messages, err := s.contactMessageRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}
	return messages, nil
}

const exportSheet = "Messages"

// ExportMessages writes every stored message to w as an xlsx workbook
func (s *ContactMessageService) ExportMessages(w io.Writer) error {
	messages, err := s.GetAll()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"ID", "Name", "Email", "Message", "Received At"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, message := range messages {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			message.ID,
			message.Name,
			message.Email,
			message.Message,
			message.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "D", "D", 60); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
