package service

import (
	"time"

	"github.com/devsync-community/devsync-backend/internal/community/domain"
	"github.com/devsync-community/devsync-backend/internal/community/repository"
	"github.com/devsync-community/devsync-backend/internal/logger"
	"github.com/devsync-community/devsync-backend/internal/metrics"
	"github.com/google/uuid"
)

// NotificationService owns the process-wide notification list.
type NotificationService struct {
	store *repository.Store
	log   *logger.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(store *repository.Store, log *logger.Logger) *NotificationService {
	return &NotificationService{store: store, log: log}
}

// Emit appends a new unread notification referencing the given project.
func (s *NotificationService) Emit(message, projectID string) domain.Notification {
	n := domain.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		ProjectID: projectID,
		Timestamp: time.Now(),
		IsRead:    false,
	}
	s.store.InsertNotification(n)
	metrics.NotificationsEmitted.Inc()
	s.log.WithOperation("emit_notification").WithField("project_id", projectID).Debug(message)
	return n
}

// List returns the notification list, newest-first.
func (s *NotificationService) List() []domain.Notification {
	return s.store.Notifications()
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount() int {
	return s.store.UnreadCount()
}

// MarkRead flags a single notification as read.
func (s *NotificationService) MarkRead(id string) error {
	return s.store.MarkNotificationRead(id)
}

// MarkAllRead flags every notification as read.
func (s *NotificationService) MarkAllRead() {
	s.store.MarkAllNotificationsRead()
}

// Clear empties the notification list unconditionally.
func (s *NotificationService) Clear() {
	s.store.ClearNotifications()
}
