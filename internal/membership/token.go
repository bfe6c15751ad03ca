// internal/membership/token.go
package membership

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the validated content of a member token.
type Claims struct {
	UserID int
	Name   string
	Kind   Kind
}

func signToken(secret []byte, user *User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", user.ID),
		"name": user.Name,
		"kind": string(user.Kind),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(secret)
}

func parseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, _ := mapClaims["sub"].(string)
	var id int
	if _, err := fmt.Sscanf(sub, "%d", &id); err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}
	name, _ := mapClaims["name"].(string)
	kind, _ := mapClaims["kind"].(string)

	return &Claims{UserID: id, Name: name, Kind: Kind(kind)}, nil
}
