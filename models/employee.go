package models

import (
	"time"
)

// Employee is the local projection of the HR directory. The directory of
// record lives in the surrounding HR system; this table only needs enough to
// resolve identities and gate permissions.
type Employee struct {
	ID        int       `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Active    bool      `json:"active" db:"active"`
	Superuser bool      `json:"superuser" db:"superuser"`
	DateAdded time.Time `json:"date_added" db:"date_added"`
}

// FullName returns the employee's display name
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// EmployeeForm represents form data for creating/updating employees
type EmployeeForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
	Superuser bool   `json:"superuser"`
}

// Validate validates the employee form data
func (f *EmployeeForm) Validate() []string {
	var errors []string

	if f.FirstName == "" {
		errors = append(errors, "First name is required")
	}

	if len(f.FirstName) > 100 {
		errors = append(errors, "First name must be less than 100 characters")
	}

	if len(f.LastName) > 100 {
		errors = append(errors, "Last name must be less than 100 characters")
	}

	if f.Email == "" {
		errors = append(errors, "Email is required")
	} else if !isValidEmail(f.Email) {
		errors = append(errors, "Email format is invalid")
	}

	if len(f.Email) > 255 {
		errors = append(errors, "Email must be less than 255 characters")
	}

	return errors
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	// Simple validation: must contain @ and at least one dot after @
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			if atIndex != -1 {
				return false // Multiple @ symbols
			}
			atIndex = i
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false // No @, or @ at start/end
	}

	// Check for dot after @
	for i := atIndex + 1; i < len(email); i++ {
		if email[i] == '.' && i < len(email)-1 {
			return true
		}
	}

	return false
}
