package dto

import (
	"time"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// CustomerResponse defines the customer data returned to clients. It never
// carries the password hash.
type CustomerResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Phone          string                 `json:"phone"`
	Address        domain.CustomerAddress `json:"address"`
	MembershipDate time.Time              `json:"membershipDate"`
	Role           domain.CustomerRole    `json:"role"`
	IsActive       bool                   `json:"isActive"`
	ProfileImage   string                 `json:"profileImage,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Message   string           `json:"message"`
	Data      CustomerResponse `json:"data"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
}

// RegisterCustomerRequest documents the registration body.
type RegisterCustomerRequest struct {
	Name     string                 `json:"name" example:"Jane Doe"`
	Email    string                 `json:"email" example:"jane@example.com"`
	Phone    string                 `json:"phone" example:"0771234567"`
	Address  domain.CustomerAddress `json:"address"`
	Password string                 `json:"password" example:"s3cret-pass"`
}

// LoginRequest documents the login body.
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

// ProfileImageRequest documents the profile image body.
type ProfileImageRequest struct {
	ProfileImage string `json:"profileImage" example:"https://cdn.example.com/avatars/jane.png"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		MembershipDate: c.MembershipDate,
		Role:           c.Role,
		IsActive:       c.IsActive,
		ProfileImage:   c.ProfileImage,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to CustomerResponse DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	return MapList(customers, ToCustomerResponse)
}
