// internal/circulation/service.go
package circulation

import (
	"context"

	"biblioteca/internal/catalog"
	"biblioteca/internal/membership"
)

// Service defines the interface for the loan ledger.
type Service interface {
	OpenLoan(ctx context.Context, user *membership.User, book *catalog.Book, loanPeriodDays int) (*Loan, error)
	CloseLoan(ctx context.Context, user *membership.User, book *catalog.Book) (float64, error)
	ListLoans(ctx context.Context) ([]*Loan, error)
}
