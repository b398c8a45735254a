package response

import (
	"time"

	"auth-platform/internal/data/entity"
)

type CheckEmailResponse struct {
	EmailExists bool `json:"emailExists"`
}

// SignUpThrottledResponse is returned when a repeat sign-up lands inside
// the resend cooldown window.
type SignUpThrottledResponse struct {
	SecondsBeforeResend int `json:"secondsBeforeResend"`
}

type UserResponse struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	UserTypeID   entity.UserType   `json:"user_type_id"`
	UserStatusID entity.UserStatus `json:"user_status_id"`
	CreatedAt    time.Time         `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		UserTypeID:   user.UserTypeID,
		UserStatusID: user.UserStatusID,
		CreatedAt:    user.CreatedAt,
	}
}
