package entity

// UserType identifies which client application a user belongs to.
// Only customers can self-register through the sign-up flow.
type UserType int

const (
	UserTypeCustomer UserType = 1
	UserTypeMerchant UserType = 2
	UserTypeOperator UserType = 3
)

// UserStatus tracks account lifecycle after verification.
type UserStatus int

const (
	UserStatusPendingSetup UserStatus = 1
	UserStatusActive       UserStatus = 2
)

type User struct {
	Base
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	UserTypeID   UserType   `db:"user_type_id"`
	UserStatusID UserStatus `db:"user_status_id"`
}
