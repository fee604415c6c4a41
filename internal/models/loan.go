package models

import "time"

type LoanStatus string

const (
	LoanActive   LoanStatus = "active"
	LoanOverdue  LoanStatus = "overdue"
	LoanReturned LoanStatus = "returned"
)

// Loan is a single circulation transaction linking one book and one borrower.
// BookTitle, BorrowerName and BorrowerCategory are point-in-time snapshots
// taken at issue; they are audit data and are never re-joined against the
// registries.
type Loan struct {
	ID               string           `json:"id"`
	BookID           string           `json:"bookId"`
	BookTitle        string           `json:"bookTitle"`
	BorrowerID       string           `json:"borrowerId"`
	BorrowerName     string           `json:"borrowerName"`
	BorrowerCategory BorrowerCategory `json:"borrowerType"`
	BorrowDate       time.Time        `json:"borrowDate"`
	DueDate          time.Time        `json:"dueDate"`
	ReturnDate       *time.Time       `json:"returnDate,omitempty"`
	Status           LoanStatus       `json:"status"`
	Fine             float64          `json:"fine,omitempty"`
	RenewalCount     int              `json:"renewalCount"`
	Notes            string           `json:"notes,omitempty"`
}

// CirculationStats is the derived dashboard view over the loan collection.
// TotalFines sums only loans that have not been returned.
type CirculationStats struct {
	Active     int     `json:"active"`
	Overdue    int     `json:"overdue"`
	TotalFines float64 `json:"totalFines"`
}

// CatalogStats is the derived dashboard view over the book collection.
type CatalogStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Borrowed  int `json:"borrowed"`
	Reserved  int `json:"reserved"`
}
