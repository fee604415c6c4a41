package services

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuslib/backend/internal/config"
	"github.com/campuslib/backend/internal/models"
	"github.com/campuslib/backend/internal/registry"
)

// CirculationService owns the loan ledger. It is the only writer of loan
// records and of book circulation status; the book and borrower registries are
// referenced, not owned. Every operation takes the single service mutex, so
// issue observes availability and commits the Borrowed transition atomically.
type CirculationService struct {
	mu        sync.Mutex
	books     *registry.BookRegistry
	borrowers *registry.BorrowerRegistry
	config    *config.CirculationConfig

	loans map[string]*models.Loan
	order []string
	// activeByBook maps a book id to its one active-or-overdue loan id,
	// keeping the "one live loan per book" invariant a lookup instead of a
	// scan.
	activeByBook map[string]string
}

func NewCirculationService(books *registry.BookRegistry, borrowers *registry.BorrowerRegistry, cfg *config.CirculationConfig) *CirculationService {
	if cfg == nil {
		cfg = config.LoadCirculationConfig()
	}
	return &CirculationService{
		books:        books,
		borrowers:    borrowers,
		config:       cfg,
		loans:        make(map[string]*models.Loan),
		activeByBook: make(map[string]string),
	}
}

// Issue creates a loan for the given book and borrower. The book must be
// Available; it becomes Borrowed as the single side effect beyond the new
// loan record.
func (s *CirculationService) Issue(bookID, borrowerID, notes string, now time.Time) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books.Get(bookID)
	if !ok {
		return nil, ErrBookNotFound
	}
	borrower, ok := s.borrowers.Get(borrowerID)
	if !ok {
		return nil, ErrBorrowerNotFound
	}
	if book.Status != models.BookAvailable {
		return nil, ErrBookUnavailable
	}

	periodDays := s.config.LoanPeriodDays(string(borrower.Category))
	loan := &models.Loan{
		ID:               uuid.NewString(),
		BookID:           book.ID,
		BookTitle:        book.Title,
		BorrowerID:       borrower.ID,
		BorrowerName:     borrower.Name,
		BorrowerCategory: borrower.Category,
		BorrowDate:       now,
		DueDate:          now.AddDate(0, 0, periodDays),
		Status:           models.LoanActive,
		RenewalCount:     0,
		Notes:            notes,
	}

	s.loans[loan.ID] = loan
	s.order = append(s.order, loan.ID)
	s.activeByBook[book.ID] = loan.ID
	s.books.SetStatus(book.ID, models.BookBorrowed)

	log.Printf("[CIRCULATION] Issued %q to %s (%s), due %s", loan.BookTitle, loan.BorrowerName, loan.BorrowerCategory, loan.DueDate.Format("2006-01-02"))

	copied := *loan
	return &copied, nil
}

// Return closes a loan and makes the book available again. Returning a loan
// twice is an explicit rejection, not a no-op. The fine recorded at the moment
// of return is frozen.
func (s *CirculationService) Return(loanID string, now time.Time) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return nil, ErrLoanNotFound
	}
	if loan.Status == models.LoanReturned {
		return nil, ErrAlreadyReturned
	}

	returnedAt := now
	loan.Status = models.LoanReturned
	loan.ReturnDate = &returnedAt
	delete(s.activeByBook, loan.BookID)
	s.books.SetStatus(loan.BookID, models.BookAvailable)

	log.Printf("[CIRCULATION] Returned %q from %s, fine %.2f", loan.BookTitle, loan.BorrowerName, loan.Fine)

	copied := *loan
	return &copied, nil
}

// Renew extends the current due date by the category's renewal period and
// increments the renewal counter, capped at MaxRenewals. Renewing does not
// change the loan status; the next sweep reclassifies an overdue loan whose
// extended due date is back in the future.
func (s *CirculationService) Renew(loanID string, now time.Time) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return nil, ErrLoanNotFound
	}
	if loan.RenewalCount >= s.config.MaxRenewals {
		return nil, ErrRenewalLimitReached
	}
	if loan.Status == models.LoanReturned {
		return nil, ErrLoanNotActive
	}

	extensionDays := s.config.RenewalPeriodDays(string(loan.BorrowerCategory))
	loan.DueDate = loan.DueDate.AddDate(0, 0, extensionDays)
	loan.RenewalCount++

	log.Printf("[CIRCULATION] Renewed %q for %s, new due date %s (renewal %d)", loan.BookTitle, loan.BorrowerName, loan.DueDate.Format("2006-01-02"), loan.RenewalCount)

	copied := *loan
	return &copied, nil
}

// RecomputeOverdue is the periodic sweep. Active loans past their due date
// become overdue; fines are recomputed from the original due date on every
// pass, so they grow with elapsed time until return. Overdue loans whose due
// date moved back into the future (via renewal) revert to active. Returns the
// loans that newly became overdue in this call. Calling the sweep twice with
// the same now yields the same state.
func (s *CirculationService) RecomputeOverdue(now time.Time) []models.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	var newlyOverdue []models.Loan
	for _, id := range s.order {
		loan := s.loans[id]
		if loan.Status == models.LoanReturned {
			continue
		}

		if loan.DueDate.Before(now) {
			fine := float64(daysOverdue(loan.DueDate, now)) * s.config.DailyFineRate
			if loan.Status == models.LoanActive {
				loan.Status = models.LoanOverdue
				loan.Fine = fine
				newlyOverdue = append(newlyOverdue, *loan)
			} else {
				loan.Fine = fine
			}
		} else if loan.Status == models.LoanOverdue {
			loan.Status = models.LoanActive
			loan.Fine = 0
		}
	}

	if len(newlyOverdue) > 0 {
		log.Printf("[CIRCULATION] Sweep: %d loans newly overdue", len(newlyOverdue))
	}
	return newlyOverdue
}

// Statistics derives the dashboard counters from the loan collection.
// TotalFines sums only loans not yet returned; returned fines are history.
func (s *CirculationService) Statistics() models.CirculationStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats models.CirculationStats
	for _, loan := range s.loans {
		switch loan.Status {
		case models.LoanActive:
			stats.Active++
		case models.LoanOverdue:
			stats.Overdue++
		}
		if loan.Status != models.LoanReturned {
			stats.TotalFines += loan.Fine
		}
	}
	return stats
}

// GetLoan returns a copy of a single loan.
func (s *CirculationService) GetLoan(loanID string) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return nil, ErrLoanNotFound
	}
	copied := *loan
	return &copied, nil
}

// LoanListOptions narrows and orders the loan listing. Zero values mean "no
// filter", issue order, first page of 10.
type LoanListOptions struct {
	Status  string
	Search  string
	SortBy  string
	Order   string
	Page    int
	PerPage int
}

// ListLoans returns one page of matching loans plus the total match count.
// Search covers the denormalized title and borrower-name snapshots.
func (s *CirculationService) ListLoans(opts LoanListOptions) ([]models.Loan, int) {
	s.mu.Lock()
	result := make([]models.Loan, 0, len(s.order))
	for _, id := range s.order {
		loan := s.loans[id]
		if opts.Status != "" && string(loan.Status) != opts.Status {
			continue
		}
		if opts.Search != "" && !loanMatches(loan, opts.Search) {
			continue
		}
		result = append(result, *loan)
	}
	s.mu.Unlock()

	sortLoans(result, opts.SortBy, opts.Order)
	total := len(result)
	return paginateLoans(result, opts.Page, opts.PerPage), total
}

func loanMatches(loan *models.Loan, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(loan.BookTitle), term) ||
		strings.Contains(strings.ToLower(loan.BorrowerName), term)
}

func sortLoans(loans []models.Loan, sortBy, order string) {
	if sortBy == "" {
		return
	}
	desc := order == "desc"
	sort.SliceStable(loans, func(i, j int) bool {
		if desc {
			i, j = j, i
		}
		switch sortBy {
		case "dueDate":
			return loans[i].DueDate.Before(loans[j].DueDate)
		case "borrowDate":
			return loans[i].BorrowDate.Before(loans[j].BorrowDate)
		case "borrowerName":
			return loans[i].BorrowerName < loans[j].BorrowerName
		case "status":
			return loans[i].Status < loans[j].Status
		default:
			return loans[i].BookTitle < loans[j].BookTitle
		}
	})
}

func paginateLoans(loans []models.Loan, page, perPage int) []models.Loan {
	if perPage <= 0 {
		perPage = 10
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(loans) {
		return []models.Loan{}
	}
	end := start + perPage
	if end > len(loans) {
		end = len(loans)
	}
	return loans[start:end]
}

// daysOverdue counts whole days elapsed since the due date.
func daysOverdue(dueDate, now time.Time) int {
	if !dueDate.Before(now) {
		return 0
	}
	return int(now.Sub(dueDate) / (24 * time.Hour))
}
