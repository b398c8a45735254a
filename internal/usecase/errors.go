package usecase

import "errors"

// Service errors, mapped to HTTP statuses by the handlers. Every one is
// terminal for the request.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCodeInvalid          = errors.New("invalid or expired verification code")
	ErrUserTypeMismatch     = errors.New("user type does not match the requesting app")
	ErrMustSignUpAsCustomer = errors.New("sign-up is only available to customers")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong      = errors.New("password must be at most 128 characters")
	ErrEmailInUse           = errors.New("email already in use")
)
