package dto

import "botdesk/internal/domain"

// UserOutput represents user details in API responses
type UserOutput struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccountType string `json:"account_type"`
	MemberSince string `json:"member_since"`
}

// NewUserOutput converts a domain user for API responses.
func NewUserOutput(user *domain.User) *UserOutput {
	if user == nil {
		return nil
	}
	return &UserOutput{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		AccountType: user.AccountType,
		MemberSince: user.MemberSince,
	}
}

// UpdateUserRequest represents a partial profile update
type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	AccountType *string `json:"account_type,omitempty"`
}

// ToDomain converts the request into a domain update.
func (r *UpdateUserRequest) ToDomain() domain.UserUpdate {
	return domain.UserUpdate{
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		AccountType: r.AccountType,
	}
}
