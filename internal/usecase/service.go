package usecase

import (
	"auth-platform/internal/data/repository"
	"auth-platform/pkg/mailer"
	"auth-platform/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	User UserService
}

func NewService(
	repo *repository.Repository,
	mail mailer.Mailer,
	tokens *utils.JWTManager,
	apps AppTypeTable,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth: NewAuthService(repo, mail, tokens, apps, config, log),
		User: NewUserService(repo.User, log),
	}
}
