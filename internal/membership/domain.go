// internal/membership/domain.go
package membership

// Kind discriminates the member variants.
type Kind string

const (
	KindRegular Kind = "regular"
	KindStaff   Kind = "staff"
)

// User represents a library member. The ID space is global across kinds.
// Address is set for regular members, Role for staff.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Kind    Kind   `json:"kind"`
	Address string `json:"address,omitempty"`
	Role    string `json:"role,omitempty"`
}

// Credential holds a member's login secret. Registration attaches one only
// when a password is supplied, which in practice means staff.
type Credential struct {
	UserID       int    `json:"user_id"`
	PasswordHash string `json:"-"`
	Salt         string `json:"-"`
}
