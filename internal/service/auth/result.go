package auth

import "github.com/promisinganuj/kids-vocabulary-app/internal/domain"

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT the stored hash
	User         domain.User
}
