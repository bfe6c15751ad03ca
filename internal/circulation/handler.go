// internal/circulation/handler.go
package circulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"biblioteca/internal/catalog"
	"biblioteca/internal/membership"
)

// Handler exposes the loan ledger over HTTP. It performs the entity lookups
// the ledger itself does not do, then hands the references over.
type Handler struct {
	service    Service
	catalog    catalog.Service
	membership membership.Service
}

func NewHandler(service Service, cat catalog.Service, mem membership.Service) *Handler {
	return &Handler{service: service, catalog: cat, membership: mem}
}

func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MemberID   int    `json:"member_id"`
		ISBN       string `json:"isbn"`
		PeriodDays int    `json:"period_days"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.PeriodDays == 0 {
		req.PeriodDays = DefaultLoanPeriodDays
	}

	user, err := h.membership.FindByID(r.Context(), req.MemberID)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to get member: %v", err), statusFor(err))
		return
	}

	book, err := h.catalog.FindAvailable(r.Context(), req.ISBN)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to get book: %v", err), statusFor(err))
		return
	}

	loan, err := h.service.OpenLoan(r.Context(), user, book, req.PeriodDays)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(loan)
}

func (h *Handler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MemberID int    `json:"member_id"`
		ISBN     string `json:"isbn"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.membership.FindByID(r.Context(), req.MemberID)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to get member: %v", err), statusFor(err))
		return
	}

	// Get, not FindAvailable: a book out on loan is unavailable by definition.
	book, err := h.catalog.Get(r.Context(), req.ISBN)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to get book: %v", err), statusFor(err))
		return
	}

	fee, err := h.service.CloseLoan(r.Context(), user, book)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"fee": fmt.Sprintf("%.2f", fee)})
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	loans, err := h.service.ListLoans(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(loans)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, membership.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnavailable):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidPeriod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
