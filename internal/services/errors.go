package services

import "errors"

// Sentinel errors returned by the circulation and catalog services. Handlers
// map these to HTTP statuses; no operation mutates state before failing.
var (
	ErrBookNotFound        = errors.New("book not found")
	ErrBorrowerNotFound    = errors.New("borrower not found")
	ErrLoanNotFound        = errors.New("loan not found")
	ErrBookUnavailable     = errors.New("book is not available for borrowing")
	ErrAlreadyReturned     = errors.New("loan has already been returned")
	ErrRenewalLimitReached = errors.New("maximum renewal limit reached")
	ErrLoanNotActive       = errors.New("loan is not active")
	ErrBookOnLoan          = errors.New("book has an active loan")
)
