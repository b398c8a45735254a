package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"auth-platform/internal/dto/request"
	"auth-platform/internal/dto/response"
	"auth-platform/internal/usecase"
	"auth-platform/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) CheckEmail(ctx context.Context, email, appHeader string) (*response.CheckEmailResponse, error) {
	args := m.Called(ctx, email, appHeader)
	if r, _ := args.Get(0).(*response.CheckEmailResponse); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) SignUp(ctx context.Context, req *request.SignUpRequest, appHeader string) (*response.SignUpThrottledResponse, error) {
	args := m.Called(ctx, req, appHeader)
	if r, _ := args.Get(0).(*response.SignUpThrottledResponse); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Verify(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if r, _ := args.Get(0).(*response.AuthResponse); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) SignIn(ctx context.Context, req *request.SignInRequest, appHeader string) (*response.AuthResponse, error) {
	args := m.Called(ctx, req, appHeader)
	if r, _ := args.Get(0).(*response.AuthResponse); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func doRequest(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("App", "customer-app - 1.0.0")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var env utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestSignUpHandler_Created(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("SignUp", mock.Anything, mock.Anything, "customer-app - 1.0.0").Return(nil, nil)

	h := NewAuthHandler(svc, zap.NewNop())
	rec := doRequest(t, h.SignUp, `{"email":"a@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSignUpHandler_Throttled(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("SignUp", mock.Anything, mock.Anything, mock.Anything).
		Return(&response.SignUpThrottledResponse{SecondsBeforeResend: 90}, nil)

	h := NewAuthHandler(svc, zap.NewNop())
	rec := doRequest(t, h.SignUp, `{"email":"a@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(90), data["secondsBeforeResend"])
}

func TestSignUpHandler_ErrorStatuses(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"email in use", usecase.ErrEmailInUse, http.StatusConflict},
		{"password too short", usecase.ErrPasswordTooShort, http.StatusBadRequest},
		{"password too long", usecase.ErrPasswordTooLong, http.StatusBadRequest},
		{"must sign up as customer", usecase.ErrMustSignUpAsCustomer, http.StatusUnauthorized},
		{"storage fault", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockAuthService{}
			svc.On("SignUp", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.serviceErr)

			h := NewAuthHandler(svc, zap.NewNop())
			rec := doRequest(t, h.SignUp, `{"email":"a@x.com","password":"secret1"}`)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestSignUpHandler_InvalidEmail(t *testing.T) {
	svc := &mockAuthService{}

	h := NewAuthHandler(svc, zap.NewNop())
	rec := doRequest(t, h.SignUp, `{"email":"not-an-email","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignUpHandler_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, zap.NewNop())
	rec := doRequest(t, h.SignUp, `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyHandler_Created(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Verify", mock.Anything, mock.Anything).Return(&response.AuthResponse{
		User:  response.UserResponse{Email: "a@x.com"},
		Token: "Bearer tok",
	}, nil)

	h := NewAuthHandler(svc, zap.NewNop())
	rec := doRequest(t, h.Verify, `{"email":"a@x.com","code":"123456"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bearer tok", data["token"])
}

func TestVerifyHandler_CodeInvalid(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Verify", mock.Anything, mock.Anything).Return(nil, usecase.ErrCodeInvalid)

	h := NewAuthHandler(svc, zap.NewNop())
	rec := doRequest(t, h.Verify, `{"email":"a@x.com","code":"000000"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignInHandler_Statuses(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"invalid credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"type mismatch", usecase.ErrUserTypeMismatch, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockAuthService{}
			svc.On("SignIn", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.serviceErr)

			h := NewAuthHandler(svc, zap.NewNop())
			rec := doRequest(t, h.SignIn, `{"email":"a@x.com","password":"secret1"}`)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestCheckEmailHandler_OK(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("CheckEmail", mock.Anything, "a@x.com", "customer-app - 1.0.0").
		Return(&response.CheckEmailResponse{EmailExists: true}, nil)

	h := NewAuthHandler(svc, zap.NewNop())
	rec := doRequest(t, h.CheckEmail, `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["emailExists"])
}

func TestCheckEmailHandler_TypeMismatch(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("CheckEmail", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, usecase.ErrUserTypeMismatch)

	h := NewAuthHandler(svc, zap.NewNop())
	rec := doRequest(t, h.CheckEmail, `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
