package auth

import (
	"strings"

	"restaurant-crm/internal/pkg/errs"
)

type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Credentials{}, errs.ErrCredentialsMissing
	}
	return Credentials{
		username: username,
		password: password,
	}, nil
}

func (c Credentials) Username() string {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}

// Subject is the identity embedded in an issued access token.
type Subject struct {
	Username     string
	RestaurantID int64
}
