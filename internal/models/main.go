// Package models defines the core data structures exchanged with the
// Fintrack API: user profiles, budgets, income, expenses, and the paged
// envelopes that carry them over the wire.
package models

// UserProfile is the identity and preference record of the signed-in user.
// It is owned by the session and replaced wholesale on every successful
// login or profile update, never mutated field by field.
type UserProfile struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Name is the user's display name.
	Name string `json:"name"`
	// Email is the address the account is registered under.
	Email string `json:"email"`
	// Currency is the user's preferred display currency, empty if unset.
	Currency Currency `json:"currency,omitempty"`
	// Role is the access role assigned by the server ("user", "admin").
	Role string `json:"role"`
	// AvatarURL points at the uploaded profile picture, empty if unset.
	AvatarURL string `json:"avatarUrl,omitempty"`
	// CreatedAt is the server-side RFC 3339 creation timestamp.
	CreatedAt string `json:"createdAt"`
	// UpdatedAt is the server-side RFC 3339 last-modification timestamp.
	UpdatedAt string `json:"updatedAt"`
	// Verified reports whether the account passed OTP verification.
	Verified bool `json:"verified"`
}

// AuthResult is returned by login and OTP verification: the authenticated
// profile together with the bearer token for subsequent calls.
type AuthResult struct {
	User        UserProfile `json:"user"`
	AccessToken string      `json:"accessToken"`
}

// Currency identifies one of the display currencies supported by the API.
type Currency string

// Supported display currencies.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	NGN Currency = "NGN"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
)

// ExpenseCategory classifies budgets and expenses.
type ExpenseCategory string

// Expense categories accepted by the API. CategoryAll is a filter value,
// not a category an expense can be stored under.
const (
	CategoryFood           ExpenseCategory = "food"
	CategoryClothing       ExpenseCategory = "clothing"
	CategoryEntertainment  ExpenseCategory = "entertainment"
	CategoryUtilities      ExpenseCategory = "utilities"
	CategoryHealthcare     ExpenseCategory = "healthcare"
	CategoryEducation      ExpenseCategory = "education"
	CategoryShopping       ExpenseCategory = "shopping"
	CategoryHousing        ExpenseCategory = "housing"
	CategoryTransportation ExpenseCategory = "transportation"
	CategoryPersonal       ExpenseCategory = "personal"
	CategoryAll            ExpenseCategory = "all"
	CategoryMisc           ExpenseCategory = "miscellaneous"
)
