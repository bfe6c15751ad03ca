// internal/circulation/implementation.go
package circulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"biblioteca/internal/catalog"
	"biblioteca/internal/membership"
	"biblioteca/internal/notify"
)

var (
	ErrUnavailable   = errors.New("book is not available")
	ErrNotFound      = errors.New("no open loan found")
	ErrInvalidPeriod = errors.New("loan period must be positive")
)

// service implements the Service interface. The mutex serializes open/close
// so the availability check and the flip happen in one critical section.
type service struct {
	mu       sync.Mutex
	loans    []*Loan
	notifier notify.Notifier
	now      func() time.Time

	tracer      trace.Tracer
	loansOpened metric.Int64Counter
	loansClosed metric.Int64Counter
	feesCharged metric.Float64Counter
}

// NewService creates a new loan ledger instance.
func NewService(notifier notify.Notifier) Service {
	meter := otel.Meter("biblioteca/circulation")
	loansOpened, _ := meter.Int64Counter("loans.opened")
	loansClosed, _ := meter.Int64Counter("loans.closed")
	feesCharged, _ := meter.Float64Counter("loans.fees_charged")

	return &service{
		notifier:    notifier,
		now:         time.Now,
		tracer:      otel.Tracer("biblioteca/circulation"),
		loansOpened: loansOpened,
		loansClosed: loansClosed,
		feesCharged: feesCharged,
	}
}

// OpenLoan lends a book to a member for loanPeriodDays days. The ledger
// trusts that the caller looked the references up; it re-checks only what it
// can see on them (the availability flag and the period).
func (s *service) OpenLoan(ctx context.Context, user *membership.User, book *catalog.Book, loanPeriodDays int) (*Loan, error) {
	ctx, span := s.tracer.Start(ctx, "OpenLoan", trace.WithAttributes(
		attribute.Int("member.id", user.ID),
		attribute.String("book.isbn", book.ISBN),
	))
	defer span.End()

	if loanPeriodDays <= 0 {
		return nil, fmt.Errorf("loan period %d: %w", loanPeriodDays, ErrInvalidPeriod)
	}

	s.mu.Lock()
	if !book.Available {
		s.mu.Unlock()
		return nil, fmt.Errorf("book %q: %w", book.ISBN, ErrUnavailable)
	}

	now := s.now()
	loan := &Loan{
		ID:       uuid.New(),
		User:     user,
		Book:     book,
		LoanDate: now,
		DueDate:  now.AddDate(0, 0, loanPeriodDays),
	}
	book.Available = false
	s.loans = append(s.loans, loan)
	s.mu.Unlock()

	s.loansOpened.Add(ctx, 1)
	s.notifier.Notify(
		user.Name,
		"Loan opened",
		fmt.Sprintf("You borrowed '%s'. Return it by %s.", book.Title, loan.DueDate.Format("02/01/2006")),
	)

	return loan, nil
}

// CloseLoan returns a book and settles the late fee, if any. The loan is
// matched by (member id, isbn) so the caller may pass freshly looked-up
// references rather than the ones stored on the loan.
func (s *service) CloseLoan(ctx context.Context, user *membership.User, book *catalog.Book) (float64, error) {
	ctx, span := s.tracer.Start(ctx, "CloseLoan", trace.WithAttributes(
		attribute.Int("member.id", user.ID),
		attribute.String("book.isbn", book.ISBN),
	))
	defer span.End()

	s.mu.Lock()
	loan := s.findOpenLoan(user.ID, book.ISBN)
	if loan == nil {
		s.mu.Unlock()
		return 0, fmt.Errorf("member %d, book %q: %w", user.ID, book.ISBN, ErrNotFound)
	}

	loan.ReturnDate = s.now()
	loan.Book.Available = true
	book.Available = true
	fee := lateFee(loan.DueDate, loan.ReturnDate)
	s.mu.Unlock()

	s.loansClosed.Add(ctx, 1)
	s.feesCharged.Add(ctx, fee)

	if fee > 0 {
		s.notifier.Notify(
			user.Name,
			"Book returned",
			fmt.Sprintf("Thank you for returning '%s'. A late fee of %.2f applies.", loan.Book.Title, fee),
		)
	} else {
		s.notifier.Notify(
			user.Name,
			"Book returned",
			fmt.Sprintf("Thank you for returning '%s' on time!", loan.Book.Title),
		)
	}

	return fee, nil
}

// ListLoans returns the full loan history, open and closed, oldest first.
func (s *service) ListLoans(ctx context.Context) ([]*Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans := make([]*Loan, len(s.loans))
	copy(loans, s.loans)
	return loans, nil
}

// findOpenLoan must be called with the mutex held. At most one open loan can
// exist per (member, book) pair, so the first match is the only one.
func (s *service) findOpenLoan(userID int, isbn string) *Loan {
	for _, l := range s.loans {
		if l.User.ID == userID && l.Book.ISBN == isbn && l.Open() {
			return l
		}
	}
	return nil
}

// lateFee charges DailyFineRate per whole day past the due date. Returning
// on or before the due date is free.
func lateFee(due, returned time.Time) float64 {
	if !returned.After(due) {
		return 0
	}
	daysLate := int(returned.Sub(due) / (24 * time.Hour))
	return math.Round(float64(daysLate)*DailyFineRate*100) / 100
}
