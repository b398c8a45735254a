package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"auth-platform/internal/data/entity"
	"auth-platform/internal/data/repository"
	"auth-platform/internal/dto/request"
	"auth-platform/internal/dto/response"
	"auth-platform/pkg/mailer"
	"auth-platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	passwordMinLength = 6
	passwordMaxLength = 128
)

type AuthService interface {
	CheckEmail(ctx context.Context, email, appHeader string) (*response.CheckEmailResponse, error)
	// SignUp returns a non-nil throttle response when the request landed
	// inside the resend cooldown; nil means a fresh code was issued.
	SignUp(ctx context.Context, req *request.SignUpRequest, appHeader string) (*response.SignUpThrottledResponse, error)
	Verify(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error)
	SignIn(ctx context.Context, req *request.SignInRequest, appHeader string) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	tokens *utils.JWTManager
	apps   AppTypeTable
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail mailer.Mailer,
	tokens *utils.JWTManager,
	apps AppTypeTable,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		tokens: tokens,
		apps:   apps,
		config: config,
		log:    log,
	}
}

func (s *authService) CheckEmail(ctx context.Context, email, appHeader string) (*response.CheckEmailResponse, error) {
	email = utils.NormalizeEmail(email)

	appType, appKnown := s.apps.Resolve(appHeader)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}

	// An existing account reached through the wrong client app must not
	// be routed into its sign-in flow.
	if user != nil && (!appKnown || user.UserTypeID != appType) {
		s.log.Warn("Check email: user type mismatch",
			zap.String("email", email),
			zap.String("app", appHeader))
		return nil, ErrUserTypeMismatch
	}

	return &response.CheckEmailResponse{EmailExists: user != nil}, nil
}

func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest, appHeader string) (*response.SignUpThrottledResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	appType, appKnown := s.apps.Resolve(appHeader)
	if !appKnown || appType != entity.UserTypeCustomer {
		s.log.Warn("Sign-up from non-customer app",
			zap.String("email", email),
			zap.String("app", appHeader))
		return nil, ErrMustSignUpAsCustomer
	}

	if len(req.Password) < passwordMinLength {
		return nil, ErrPasswordTooShort
	}
	if len(req.Password) > passwordMaxLength {
		return nil, ErrPasswordTooLong
	}

	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailInUse
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	expiry := time.Duration(s.config.Verification.ExpiryMinutes) * time.Minute

	signup, err := s.repo.PendingSignup.Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	if signup == nil {
		code, err := utils.GenerateCode(s.config.Verification.CodeLength)
		if err != nil {
			return nil, fmt.Errorf("generate verification code: %w", err)
		}

		signup = &entity.PendingSignup{
			Email:        email,
			PasswordHash: passwordHash,
			Code:         code,
			CreatedAt:    time.Now().UTC().UnixMilli(),
		}
		if err := s.repo.PendingSignup.Put(ctx, signup, expiry); err != nil {
			return nil, fmt.Errorf("sign up: %w", err)
		}

		go s.sendVerificationMail(email, code)

		s.log.Info("Pending signup created", zap.String("email", email))
		return nil, nil
	}

	// A repeat request always carries the latest password choice.
	signup.PasswordHash = passwordHash

	elapsed := time.Now().UTC().UnixMilli() - signup.CreatedAt
	cooldown := int64(s.config.Verification.CooldownMinutes) * 60 * 1000

	if elapsed < cooldown {
		// Inside the cooldown the existing code and timestamp survive, so
		// rapid repeats cannot trigger a mail storm.
		if err := s.repo.PendingSignup.Put(ctx, signup, expiry); err != nil {
			return nil, fmt.Errorf("sign up: %w", err)
		}

		secondsBeforeResend := int(math.Round(float64(cooldown-elapsed) / 1000.0))
		s.log.Info("Pending signup updated within cooldown",
			zap.String("email", email),
			zap.Int("seconds_before_resend", secondsBeforeResend))
		return &response.SignUpThrottledResponse{SecondsBeforeResend: secondsBeforeResend}, nil
	}

	code, err := utils.GenerateCode(s.config.Verification.CodeLength)
	if err != nil {
		return nil, fmt.Errorf("generate verification code: %w", err)
	}

	signup.Code = code
	signup.CreatedAt = time.Now().UTC().UnixMilli()
	if err := s.repo.PendingSignup.Put(ctx, signup, expiry); err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	go s.sendVerificationMail(email, code)

	s.log.Info("Pending signup code regenerated", zap.String("email", email))
	return nil, nil
}

func (s *authService) Verify(ctx context.Context, req *request.VerifyRequest) (*response.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	signup, err := s.repo.PendingSignup.Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	// A missing record covers both "never signed up" and "code expired".
	if signup == nil {
		return nil, ErrCodeInvalid
	}

	if signup.Code != req.Code {
		s.log.Warn("Verification code mismatch", zap.String("email", email))
		return nil, ErrCodeInvalid
	}

	// Delete before creating the user so the code is single use; a replay
	// with the same code must fail.
	if err := s.repo.PendingSignup.Delete(ctx, email); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        signup.Email,
		PasswordHash: signup.PasswordHash, // already a digest, never re-hashed
		UserTypeID:   entity.UserTypeCustomer,
		UserStatusID: entity.UserStatusPendingSetup,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User verified and created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email))

	return &response.AuthResponse{
		User:  response.UserToResponse(user),
		Token: "Bearer " + token,
	}, nil
}

func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest, appHeader string) (*response.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if user == nil {
		s.log.Warn("Sign-in for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Sign-in with wrong password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	appType, appKnown := s.apps.Resolve(appHeader)
	if !appKnown || user.UserTypeID != appType {
		s.log.Warn("Sign-in: user type mismatch",
			zap.String("user_id", user.ID.String()),
			zap.String("app", appHeader))
		return nil, ErrUserTypeMismatch
	}

	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User signed in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email))

	return &response.AuthResponse{
		User:  response.UserToResponse(user),
		Token: "Bearer " + token,
	}, nil
}

// sendVerificationMail runs off the request path; delivery failures are
// logged and never surfaced to the caller.
func (s *authService) sendVerificationMail(email, code string) {
	if err := s.mail.SendVerificationCode(email, code, s.config.Verification.ExpiryMinutes); err != nil {
		s.log.Error("Failed to send verification email",
			zap.Error(err),
			zap.String("email", email))
	}
}
