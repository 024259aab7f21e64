package auth

import "github.com/heartmarshall/stride-backend/internal/domain"

// AuthResult is returned by SignUp and Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
