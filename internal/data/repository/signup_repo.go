package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"auth-platform/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PendingSignupRepository stores unverified sign-up attempts in a volatile
// TTL cache. A record evicted by TTL is indistinguishable from one that
// never existed; that is how unused codes expire.
type PendingSignupRepository interface {
	// Get returns nil, nil when no record exists for the email.
	Get(ctx context.Context, email string) (*entity.PendingSignup, error)
	// Put overwrites the whole record and resets the TTL.
	Put(ctx context.Context, signup *entity.PendingSignup, ttl time.Duration) error
	Delete(ctx context.Context, email string) error
}

type pendingSignupRepository struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewPendingSignupRepository(rdb *redis.Client, log *zap.Logger) PendingSignupRepository {
	return &pendingSignupRepository{
		rdb: rdb,
		log: log.With(zap.String("repository", "pending_signup")),
	}
}

func signupKey(email string) string {
	return "signup:" + email
}

func (r *pendingSignupRepository) Get(ctx context.Context, email string) (*entity.PendingSignup, error) {
	raw, err := r.rdb.Get(ctx, signupKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get pending signup",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("get pending signup for %s: %w", email, err)
	}

	var signup entity.PendingSignup
	if err := json.Unmarshal([]byte(raw), &signup); err != nil {
		r.log.Error("Failed to decode pending signup",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("decode pending signup for %s: %w", email, err)
	}

	return &signup, nil
}

func (r *pendingSignupRepository) Put(ctx context.Context, signup *entity.PendingSignup, ttl time.Duration) error {
	raw, err := json.Marshal(signup)
	if err != nil {
		return fmt.Errorf("encode pending signup for %s: %w", signup.Email, err)
	}

	if err := r.rdb.Set(ctx, signupKey(signup.Email), raw, ttl).Err(); err != nil {
		r.log.Error("Failed to store pending signup",
			zap.Error(err),
			zap.String("email", signup.Email),
		)
		return fmt.Errorf("store pending signup for %s: %w", signup.Email, err)
	}

	return nil
}

func (r *pendingSignupRepository) Delete(ctx context.Context, email string) error {
	if err := r.rdb.Del(ctx, signupKey(email)).Err(); err != nil {
		r.log.Error("Failed to delete pending signup",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("delete pending signup for %s: %w", email, err)
	}

	return nil
}
