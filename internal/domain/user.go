package domain

// User represents the account holder of the current session.
// Exactly one user is "current" at a time; the absence of a current
// user means the application is unauthenticated.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccountType string `json:"account_type"`
	MemberSince string `json:"member_since"` // calendar date, YYYY-MM-DD
}

// Account tier constants
const (
	TierBasic   = "Basic"
	TierPro     = "Pro"
	TierPremium = "Premium"
)

// UserUpdate carries a partial-field merge for the current user.
// Nil fields are left untouched.
type UserUpdate struct {
	Email       *string `json:"email,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	AccountType *string `json:"account_type,omitempty"`
}

// Apply merges the non-nil fields of the update into the user.
func (u *UserUpdate) Apply(user *User) {
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.AccountType != nil {
		user.AccountType = *u.AccountType
	}
}
