package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campuslib/backend/internal/services"
)

type CirculationHandler struct {
	service       *services.CirculationService
	notifications *services.NotificationService
	validator     *services.ValidationHelper
}

func NewCirculationHandler(service *services.CirculationService, notifications *services.NotificationService) *CirculationHandler {
	return &CirculationHandler{
		service:       service,
		notifications: notifications,
		validator:     services.NewValidationHelper(),
	}
}

// IssueRequest represents a loan issue request
type IssueRequest struct {
	BookID     string `json:"bookId" validate:"required"`
	BorrowerID string `json:"borrowerId" validate:"required"`
	Notes      string `json:"notes,omitempty" validate:"max=500"`
}

// IssueLoan issues a book to a borrower
// @Summary Issue a book
// @Description Create a loan for an available book and an existing borrower
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IssueRequest true "Issue request"
// @Success 201 {object} models.Loan
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /loans [post]
func (h *CirculationHandler) IssueLoan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req IssueRequest
	if err := dec.Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	loan, err := h.service.Issue(req.BookID, req.BorrowerID, req.Notes, time.Now())
	if err != nil {
		services.SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"loan":    loan,
	})
}

// ReturnLoan closes a loan
// @Summary Return a book
// @Description Close a loan and make the book available again
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param loanId path string true "Loan ID"
// @Success 200 {object} models.Loan
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /loans/{loanId}/return [post]
func (h *CirculationHandler) ReturnLoan(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "loanId")

	loan, err := h.service.Return(loanID, time.Now())
	if err != nil {
		services.SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"loan":    loan,
	})
}

// RenewLoan extends a loan's due date
// @Summary Renew a loan
// @Description Extend the due date of a loan, up to the renewal limit
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param loanId path string true "Loan ID"
// @Success 200 {object} models.Loan
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /loans/{loanId}/renew [post]
func (h *CirculationHandler) RenewLoan(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "loanId")

	loan, err := h.service.Renew(loanID, time.Now())
	if err != nil {
		services.SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"loan":    loan,
	})
}

// GetLoan retrieves a single loan
// @Summary Get loan details
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param loanId path string true "Loan ID"
// @Success 200 {object} models.Loan
// @Failure 404 {object} services.ErrorResponse
// @Router /loans/{loanId} [get]
func (h *CirculationHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loan, err := h.service.GetLoan(chi.URLParam(r, "loanId"))
	if err != nil {
		services.SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loan)
}

// ListLoans lists loans with filtering, sorting and pagination
// @Summary List loans
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (active|overdue|returned)"
// @Param q query string false "Search in book title and borrower name"
// @Param sortBy query string false "Sort key (bookTitle|borrowerName|borrowDate|dueDate|status)"
// @Param order query string false "Sort order (asc|desc)"
// @Param page query int false "Page number"
// @Param perPage query int false "Page size"
// @Success 200 {object} object{loans=[]models.Loan,total=int}
// @Router /loans [get]
func (h *CirculationHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := services.LoanListOptions{
		Status:  q.Get("status"),
		Search:  q.Get("q"),
		SortBy:  q.Get("sortBy"),
		Order:   q.Get("order"),
		Page:    queryInt(q.Get("page"), 1),
		PerPage: queryInt(q.Get("perPage"), 10),
	}

	loans, total := h.service.ListLoans(opts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"loans":   loans,
		"total":   total,
		"page":    opts.Page,
		"perPage": opts.PerPage,
	})
}

// Statistics returns circulation dashboard counters
// @Summary Circulation statistics
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CirculationStats
// @Router /loans/statistics [get]
func (h *CirculationHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.service.Statistics())
}

// Sweep triggers an overdue recomputation on demand
// @Summary Run the overdue sweep
// @Description Reclassify active loans past their due date and refresh fines
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{newlyOverdue=[]models.Loan,count=int}
// @Router /loans/sweep [post]
func (h *CirculationHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	newlyOverdue := h.service.RecomputeOverdue(time.Now())
	h.notifications.RecordOverdueLoans(newlyOverdue)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"newlyOverdue": newlyOverdue,
		"count":        len(newlyOverdue),
	})
}

func queryInt(raw string, defaultVal int) int {
	if raw == "" {
		return defaultVal
	}
	if val, err := strconv.Atoi(raw); err == nil && val > 0 {
		return val
	}
	return defaultVal
}
