package domain

import "time"

// User is a registered customer account
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	PasswordHash string
	CreatedAt    time.Time
}

// Applicant is a careers-form submission
type Applicant struct {
	ID          string
	FullName    string
	Email       string
	Phone       string
	Position    string
	Experience  string
	About       string
	SubmittedAt time.Time
}
