// internal/notify/notifier.go
package notify

import (
	"fmt"
	"io"
	"log"
	"sync"

	"golang.org/x/time/rate"
)

// Notifier delivers a message to a named recipient. Delivery is
// fire-and-forget: implementations must not fail the caller.
type Notifier interface {
	Notify(recipient, subject, body string)
}

// EmailNotifier writes email-style notifications to an output stream.
type EmailNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewEmailNotifier creates an email notifier writing to out.
func NewEmailNotifier(out io.Writer) *EmailNotifier {
	return &EmailNotifier{out: out}
}

func (n *EmailNotifier) Notify(recipient, subject, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "[EMAIL] To: %s\nSubject: %s\nMessage: %s\n", recipient, subject, body)
}

// SMSNotifier writes SMS-style notifications to an output stream. SMS has no
// subject line; the subject is folded into the message.
type SMSNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewSMSNotifier creates an SMS notifier writing to out.
func NewSMSNotifier(out io.Writer) *SMSNotifier {
	return &SMSNotifier{out: out}
}

func (n *SMSNotifier) Notify(recipient, subject, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "[SMS] To: %s\nMessage: %s\n", recipient, body)
}

// Multi fans a notification out to every child notifier, so the same event
// can go over email and SMS at once.
type Multi []Notifier

func (m Multi) Notify(recipient, subject, body string) {
	for _, n := range m {
		n.Notify(recipient, subject, body)
	}
}

// Throttled wraps a notifier with a rate limiter. Messages over the limit
// are dropped, not queued; the contract is fire-and-forget.
type Throttled struct {
	next    Notifier
	limiter *rate.Limiter
}

// NewThrottled wraps next, allowing at most limit notifications per second
// with the given burst.
func NewThrottled(next Notifier, limit rate.Limit, burst int) *Throttled {
	return &Throttled{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (t *Throttled) Notify(recipient, subject, body string) {
	if !t.limiter.Allow() {
		log.Printf("notification to %s dropped: rate limit exceeded", recipient)
		return
	}
	t.next.Notify(recipient, subject, body)
}
