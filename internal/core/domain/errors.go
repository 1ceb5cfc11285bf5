package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAccountExists      = errors.New("user already exists")
	ErrAccountNotFound    = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrStorage            = errors.New("storage failure")
)
