package model

import "errors"

var (
	// Token related errors
	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")

	// User related errors
	ErrUserNotFound = errors.New("user not found")

	// Resource related errors
	ErrProductTypeNotFound = errors.New("product type not found")
	ErrProductNotFound     = errors.New("product not found")
)
