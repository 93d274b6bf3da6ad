package services

import (
	"fmt"
	"log/slog"

	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService is the append-only event sink. Emission is best-effort:
// a lost notification is acceptable, a lost status transition is not, so
// writes here never fail the operation that triggered them and callers emit
// only after their own transaction has committed.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// EmitBroadcast appends a notification visible to all staff.
func (s *NotificationService) EmitBroadcast(message string) {
	s.emit(message, nil)
}

// EmitTo appends a notification visible only to the given student.
func (s *NotificationService) EmitTo(recipientID uuid.UUID, message string) {
	s.emit(message, &recipientID)
}

func (s *NotificationService) emit(message string, recipientID *uuid.UUID) {
	n := models.Notification{
		ID:          uuid.New(),
		Message:     message,
		RecipientID: recipientID,
		Status:      models.NotificationUnread,
	}
	if err := s.db.Create(&n).Error; err != nil {
		slog.Error("notification emit failed", "action", "notify", "error", err.Error())
	}
}

// ListForStudent returns the newest notifications directed at the student
// plus broadcasts, newest first.
func (s *NotificationService) ListForStudent(userID uuid.UUID, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.
		Where("recipient_id = ? OR recipient_id IS NULL", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// ListBroadcast returns the newest broadcast notifications, the staff view.
func (s *NotificationService) ListBroadcast(limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.
		Where("recipient_id IS NULL").
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips a notification to Read. The read flag is the only mutable
// field on the sink.
func (s *NotificationService) MarkRead(id uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("status", models.NotificationRead)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
