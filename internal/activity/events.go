package activity

import "github.com/nfrund/ecoshare/internal/pubsub"

// LoginSucceeded is published after a successful login.
type LoginSucceeded struct {
	Email string `json:"email"`
	At    string `json:"at"`
}

// AccountRegistered is published after a successful signup.
type AccountRegistered struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	At    string `json:"at"`
}

// SubmissionFailed is published when a login or signup attempt is rejected or the backend
// could not be reached. Validation errors are not published.
type SubmissionFailed struct {
	Form    string `json:"form"`
	Outcome string `json:"outcome"`
	Reason  string `json:"reason"`
	At      string `json:"at"`
}

var (
	TopicLoginSucceeded = pubsub.NewEvent[LoginSucceeded](
		"auth.login.succeeded",
		"A visitor logged in and was sent to the dashboard",
	)

	TopicAccountRegistered = pubsub.NewEvent[AccountRegistered](
		"account.registered",
		"A visitor created an account and was sent to the dashboard",
	)

	TopicSubmissionFailed = pubsub.NewEvent[SubmissionFailed](
		"auth.submission.failed",
		"A login or signup submission was rejected or failed",
	)
)
