// internal/membership/implementation_test.go
package membership

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures notifications for assertions.
type recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *recorder) Notify(recipient, subject, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, recipient+"|"+subject+"|"+body)
}

var testSecret = []byte("test-secret")

func TestRegisterSendsWelcome(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	svc := NewService(rec, testSecret)

	user, err := svc.Register(ctx, User{ID: 1, Name: "João Silva", Kind: KindRegular, Address: "Rua das Flores 123"}, "")
	require.NoError(t, err)
	assert.Equal(t, KindRegular, user.Kind)

	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "João Silva|Welcome to the library")
}

func TestRegisterDuplicateIDAcrossKinds(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	svc := NewService(rec, testSecret)

	_, err := svc.Register(ctx, User{ID: 1, Name: "João Silva", Kind: KindRegular}, "")
	require.NoError(t, err)

	// The id space is global, so a staff member cannot reuse a regular id.
	_, err = svc.Register(ctx, User{ID: 1, Name: "Maria Souza", Kind: KindStaff, Role: "librarian"}, "secret")
	require.ErrorIs(t, err, ErrDuplicateID)

	// The failed call must not have stored anything or notified anyone.
	users, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Len(t, rec.messages, 1)
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&recorder{}, testSecret)

	_, err := svc.Register(ctx, User{ID: 7, Name: "Maria Souza", Kind: KindStaff, Role: "librarian"}, "")
	require.NoError(t, err)

	user, err := svc.FindByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", user.Name)
	assert.Equal(t, "librarian", user.Role)

	_, err = svc.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&recorder{}, testSecret)

	for i, name := range []string{"a", "b", "c"} {
		_, err := svc.Register(ctx, User{ID: i + 1, Name: name}, "")
		require.NoError(t, err)
	}

	users, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "a", users[0].Name)
	assert.Equal(t, "c", users[2].Name)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&recorder{}, testSecret)

	_, err := svc.Register(ctx, User{ID: 2, Name: "Maria Souza", Kind: KindStaff, Role: "librarian"}, "SecurePass123!")
	require.NoError(t, err)

	token, err := svc.Authenticate(ctx, 2, "SecurePass123!")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, 2, claims.UserID)
	assert.Equal(t, KindStaff, claims.Kind)
	assert.Equal(t, "Maria Souza", claims.Name)
}

func TestAuthenticateFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&recorder{}, testSecret)

	_, err := svc.Register(ctx, User{ID: 2, Name: "Maria Souza", Kind: KindStaff}, "SecurePass123!")
	require.NoError(t, err)
	_, err = svc.Register(ctx, User{ID: 3, Name: "João Silva", Kind: KindRegular}, "")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, 2, "wrong")
	assert.ErrorIs(t, err, ErrBadLogin)

	// No credential on file.
	_, err = svc.Authenticate(ctx, 3, "anything")
	assert.ErrorIs(t, err, ErrBadLogin)

	// Unknown member.
	_, err = svc.Authenticate(ctx, 99, "anything")
	assert.ErrorIs(t, err, ErrBadLogin)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := NewService(&recorder{}, testSecret)

	_, err := svc.VerifyToken("not-a-token")
	assert.Error(t, err)

	other := NewService(&recorder{}, []byte("other-secret"))
	_, err = other.Register(context.Background(), User{ID: 1, Name: "x", Kind: KindStaff}, "pw")
	require.NoError(t, err)
	token, err := other.Authenticate(context.Background(), 1, "pw")
	require.NoError(t, err)

	// Signed with a different secret.
	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}
