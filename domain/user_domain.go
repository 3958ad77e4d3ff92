package domain

import (
	"errors"
	"strconv"
	"time"
)

var (
	MessageSuccessGetUsers   = "users retrieved successfully"
	MessageSuccessGetUser    = "user retrieved successfully"
	MessageSuccessCreateUser = "user created successfully"
	MessageSuccessUpdateUser = "user updated successfully"
	MessageSuccessDeleteUser = "user deleted successfully"

	MessageFailedGetUsers   = "failed to retrieve users"
	MessageFailedGetUser    = "failed to retrieve user"
	MessageFailedCreateUser = "failed to create user"
	MessageFailedUpdateUser = "failed to update user"
	MessageFailedDeleteUser = "failed to delete user"

	ErrUserNotFound = errors.New("user not found")
)

// UserKey identifies a user by exactly one of its unique columns. A raw path
// parameter becomes an id key iff the whole string parses as an unsigned
// integer; anything else, including digit-prefixed emails like "123abc@x.test",
// is an email key.
type UserKey struct {
	ID    uint
	Email string
}

func ParseUserKey(param string) UserKey {
	if id, err := strconv.ParseUint(param, 10, 64); err == nil {
		return UserKey{ID: uint(id)}
	}
	return UserKey{Email: param}
}

func (k UserKey) ByID() bool {
	return k.Email == ""
}

func (k UserKey) String() string {
	if k.ByID() {
		return strconv.FormatUint(uint64(k.ID), 10)
	}
	return k.Email
}

type (
	CreateUserRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Name     string `json:"name" validate:"omitempty"`
		Password string `json:"password" validate:"required,min=6"`
	}

	UpdateUserRequest struct {
		Email    string `json:"email" validate:"omitempty,email"`
		Name     string `json:"name" validate:"omitempty"`
		Password string `json:"password" validate:"omitempty,min=6"`
	}

	UserResponse struct {
		ID        uint      `json:"id"`
		Email     string    `json:"email"`
		Name      *string   `json:"name"`
		Password  string    `json:"password"`
		CreatedAt time.Time `json:"created_at"`
	}
)
