package workers

import (
	"log"
	"time"

	"github.com/campuslib/backend/internal/services"
)

// Sweeper periodically runs the overdue recomputation and records
// notifications for loans that newly became overdue. The sweep itself is
// idempotent, so the interval is a freshness knob, not a correctness one.
type Sweeper struct {
	circulation   *services.CirculationService
	notifications *services.NotificationService
	interval      time.Duration
	stop          chan struct{}
}

func NewSweeper(circulation *services.CirculationService, notifications *services.NotificationService, interval time.Duration) *Sweeper {
	return &Sweeper{
		circulation:   circulation,
		notifications: notifications,
		interval:      interval,
		stop:          make(chan struct{}),
	}
}

// Start runs an immediate sweep and then one per interval until Stop.
func (s *Sweeper) Start() {
	go func() {
		s.RunOnce(time.Now())

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.RunOnce(time.Now())
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the background loop.
func (s *Sweeper) Stop() {
	close(s.stop)
}

// RunOnce executes a single sweep pass.
func (s *Sweeper) RunOnce(now time.Time) {
	log.Println("[SWEEPER] Checking for overdue loans...")
	newlyOverdue := s.circulation.RecomputeOverdue(now)
	s.notifications.RecordOverdueLoans(newlyOverdue)
}
