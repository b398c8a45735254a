package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"auth-platform/internal/dto/request"
	"auth-platform/internal/usecase"
	"auth-platform/pkg/utils"

	"go.uber.org/zap"
)

// appHeader carries the client-app identity, e.g. "customer-app - 2.4.1".
const appHeader = "App"

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// CheckEmail handles POST /api/check-email
func (h *AuthHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	var req request.CheckEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CheckEmail(r.Context(), req.Email, r.Header.Get(appHeader))
	if err != nil {
		h.handleServiceError(w, err, "check email")
		return
	}

	utils.ResponseSuccess(w, "Email checked", resp)
}

// SignUp handles POST /api/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	throttled, err := h.service.SignUp(r.Context(), &req, r.Header.Get(appHeader))
	if err != nil {
		h.handleServiceError(w, err, "sign up")
		return
	}

	if throttled != nil {
		utils.ResponseSuccess(w, "Verification code already sent", throttled)
		return
	}

	utils.ResponseCreated(w, "Verification code sent", nil)
}

// Verify handles POST /api/verify
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Verify(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify")
		return
	}

	utils.ResponseCreated(w, "Account verified", resp)
}

// SignIn handles POST /api/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.SignIn(r.Context(), &req, r.Header.Get(appHeader))
	if err != nil {
		h.handleServiceError(w, err, "sign in")
		return
	}

	utils.ResponseSuccess(w, "Signed in", resp)
}

// handleServiceError maps service errors to HTTP statuses
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrCodeInvalid),
		errors.Is(err, usecase.ErrUserTypeMismatch),
		errors.Is(err, usecase.ErrMustSignUpAsCustomer):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrPasswordTooShort),
		errors.Is(err, usecase.ErrPasswordTooLong):
		h.log.Warn(operation+" rejected - bad password", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrEmailInUse):
		h.log.Warn(operation+" rejected - email in use", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
