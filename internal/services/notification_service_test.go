package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuslib/backend/internal/models"
)

func TestNotificationService_Record(t *testing.T) {
	t.Run("records a notice", func(t *testing.T) {
		service := NewNotificationService()

		notice := service.Record("info", "catalog import finished")
		assert.NotEmpty(t, notice.ID)
		assert.Equal(t, "info", notice.Level)
		assert.False(t, notice.CreatedAt.IsZero())
	})

	t.Run("feed is bounded", func(t *testing.T) {
		service := NewNotificationService()

		for i := 0; i < maxNotifications+25; i++ {
			service.Record("info", fmt.Sprintf("notice %d", i))
		}

		recent := service.Recent(0)
		assert.Len(t, recent, maxNotifications)
		// The oldest entries were trimmed.
		assert.Equal(t, fmt.Sprintf("notice %d", maxNotifications+24), recent[0].Message)
	})
}

func TestNotificationService_RecordOverdueLoans(t *testing.T) {
	t.Run("one warning per loan plus a summary", func(t *testing.T) {
		service := NewNotificationService()

		service.RecordOverdueLoans([]models.Loan{
			{BookTitle: "Kintu", BorrowerName: "John Doe"},
			{BookTitle: "Abyssinian Chronicles", BorrowerName: "Jane Smith"},
		})

		recent := service.Recent(0)
		assert.Len(t, recent, 3)
		assert.Equal(t, "2 books are now overdue", recent[0].Message)
		assert.Contains(t, recent[1].Message, "Abyssinian Chronicles")
		assert.Contains(t, recent[2].Message, "Kintu")
	})

	t.Run("no notices when nothing is overdue", func(t *testing.T) {
		service := NewNotificationService()

		service.RecordOverdueLoans(nil)
		assert.Empty(t, service.Recent(0))
	})
}

func TestNotificationService_Recent(t *testing.T) {
	service := NewNotificationService()
	service.Record("info", "first")
	service.Record("info", "second")
	service.Record("warning", "third")

	t.Run("newest first", func(t *testing.T) {
		recent := service.Recent(0)
		assert.Len(t, recent, 3)
		assert.Equal(t, "third", recent[0].Message)
		assert.Equal(t, "first", recent[2].Message)
	})

	t.Run("honors the limit", func(t *testing.T) {
		recent := service.Recent(2)
		assert.Len(t, recent, 2)
		assert.Equal(t, "third", recent[0].Message)
		assert.Equal(t, "second", recent[1].Message)
	})
}
