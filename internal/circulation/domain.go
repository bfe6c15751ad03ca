// internal/circulation/domain.go
package circulation

import (
	"time"

	"github.com/google/uuid"

	"biblioteca/internal/catalog"
	"biblioteca/internal/membership"
)

// DailyFineRate is the late fee charged per whole day past the due date.
const DailyFineRate = 1.0

// DefaultLoanPeriodDays is used when a driver does not supply a period.
const DefaultLoanPeriodDays = 14

// Loan links one member to one book for a bounded period. A loan is open
// while ReturnDate is zero; closed loans are kept as history.
type Loan struct {
	ID         uuid.UUID        `json:"id"`
	User       *membership.User `json:"user"`
	Book       *catalog.Book    `json:"book"`
	LoanDate   time.Time        `json:"loan_date"`
	DueDate    time.Time        `json:"due_date"`
	ReturnDate time.Time        `json:"return_date,omitempty"`
}

// Open reports whether the loan has not been returned yet.
func (l *Loan) Open() bool {
	return l.ReturnDate.IsZero()
}
