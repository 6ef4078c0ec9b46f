// Package models defines client-side data models used by the palace CLI.
package models

// User is the account as the server reports it. It never carries a password.
type User struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Gender            string   `json:"gender"`
	SubscribedRegions []string `json:"subscribedRegions"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// SignupForm is what the user enters to create an account.
type SignupForm struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Gender    string
}
