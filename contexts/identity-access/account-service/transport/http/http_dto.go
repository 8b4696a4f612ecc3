// Package http defines the JSON wire shapes of the account API.
package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	AccountType string `json:"accountType"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Account   AccountResponse `json:"account"`
}

// AccountResponse never carries the credential hash.
type AccountResponse struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phoneNumber"`
	ProfileImage  string `json:"profileImage"`
	AccountType   string `json:"accountType"`
	ActiveAccount bool   `json:"activeAccount"`
}
