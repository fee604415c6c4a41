package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuslib/backend/internal/models"
)

const maxNotifications = 200

// NotificationService keeps an in-memory feed of notices for the front end.
// The sweep worker records overdue alerts here; handlers read them out.
type NotificationService struct {
	mu      sync.Mutex
	notices []models.Notification
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// Record appends a notice, trimming the feed to its bounded size.
func (s *NotificationService) Record(level, message string) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notice := models.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	s.notices = append(s.notices, notice)
	if len(s.notices) > maxNotifications {
		s.notices = s.notices[len(s.notices)-maxNotifications:]
	}
	return notice
}

// RecordOverdueLoans records one warning per newly-overdue loan plus a
// summary notice, matching what the dashboard surfaces after a sweep.
func (s *NotificationService) RecordOverdueLoans(loans []models.Loan) {
	for _, loan := range loans {
		s.Record("warning", fmt.Sprintf("%q borrowed by %s is now overdue", loan.BookTitle, loan.BorrowerName))
	}
	if len(loans) > 0 {
		s.Record("warning", fmt.Sprintf("%d books are now overdue", len(loans)))
	}
}

// Recent returns up to limit notices, newest first.
func (s *NotificationService) Recent(limit int) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.notices) {
		limit = len(s.notices)
	}

	result := make([]models.Notification, 0, limit)
	for i := len(s.notices) - 1; i >= len(s.notices)-limit; i-- {
		result = append(result, s.notices[i])
	}
	return result
}
