// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type CreateUserRequest struct {
	Email     string `json:"email"     validate:"required,email,max=255"`
	Username  string `json:"username"  validate:"required,min=3,max=50"`
	Password  string `json:"password"  validate:"required,min=8,max=128"`
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName"  validate:"required,min=1,max=100"`
	Role      string `json:"role"      validate:"required,oneof=admin manager employee"`
}

// UpdateUserRequest is a sparse patch: nil means "leave untouched", a
// present pointer means "set", including zero values. An all-nil patch is
// a valid no-op.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty"     validate:"omitempty,email,max=255"`
	Username  *string `json:"username,omitempty"  validate:"omitempty,min=3,max=50"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName,omitempty"  validate:"omitempty,min=1,max=100"`
	Role      *string `json:"role,omitempty"      validate:"omitempty,oneof=admin manager employee"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

func (r *UpdateUserRequest) Empty() bool {
	return r.Email == nil &&
		r.Username == nil &&
		r.FirstName == nil &&
		r.LastName == nil &&
		r.Role == nil &&
		r.IsActive == nil
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListUsersParams struct {
	Page   int
	Limit  int
	Search string
	Role   string
}

func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
