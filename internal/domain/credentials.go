package domain

// Credentials are collected by the login screen. They live for a single request.
type Credentials struct {
	Email    string
	Password string
}

// Registration is collected by the signup screen.
type Registration struct {
	Name     string
	Email    string
	Password string
}
