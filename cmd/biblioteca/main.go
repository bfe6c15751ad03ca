// cmd/biblioteca/main.go
//
// Console walkthrough of the loan lifecycle: seed a book and a member,
// borrow the book for a week, return it.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"biblioteca/internal/catalog"
	"biblioteca/internal/circulation"
	"biblioteca/internal/membership"
	"biblioteca/internal/notify"
)

func main() {
	ctx := context.Background()

	notifier := notify.Multi{
		notify.NewEmailNotifier(os.Stdout),
		notify.NewSMSNotifier(os.Stdout),
	}

	cat := catalog.NewService()
	mem := membership.NewService(notifier, []byte("demo-secret"))
	circ := circulation.NewService(notifier)

	book, err := cat.Register(ctx, "Clean Code", "Robert C. Martin", "978-0132350884")
	if err != nil {
		log.Fatalf("failed to register book: %v", err)
	}
	fmt.Printf("Book '%s' registered.\n", book.Title)

	user, err := mem.Register(ctx, membership.User{
		ID:      1,
		Name:    "João Silva",
		Kind:    membership.KindRegular,
		Address: "Rua das Flores 123",
	}, "")
	if err != nil {
		log.Fatalf("failed to register member: %v", err)
	}
	fmt.Printf("Member '%s' registered.\n", user.Name)

	user, err = mem.FindByID(ctx, 1)
	if err != nil {
		log.Fatalf("failed to find member: %v", err)
	}
	book, err = cat.FindAvailable(ctx, "978-0132350884")
	if err != nil {
		log.Fatalf("failed to find book: %v", err)
	}

	loan, err := circ.OpenLoan(ctx, user, book, 7)
	if err != nil {
		log.Fatalf("failed to open loan: %v", err)
	}
	fmt.Printf("Loan opened for '%s', book '%s', due %s.\n",
		user.Name, book.Title, loan.DueDate.Format("02/01/2006"))

	fee, err := circ.CloseLoan(ctx, user, book)
	if err != nil {
		log.Fatalf("failed to close loan: %v", err)
	}
	fmt.Printf("Loan closed for '%s', book '%s'. Fee: %.2f\n", user.Name, book.Title, fee)
}
