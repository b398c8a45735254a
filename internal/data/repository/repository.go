package repository

import (
	"auth-platform/pkg/database"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	PendingSignup PendingSignupRepository
}

func NewRepository(db database.PgxIface, rdb *redis.Client, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		PendingSignup: NewPendingSignupRepository(rdb, log),
	}
}
