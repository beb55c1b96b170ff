package domain

// Outcome classifies a finished submission.
type Outcome int

const (
	// OutcomeSucceeded means the backend accepted the submission.
	OutcomeSucceeded Outcome = iota + 1
	// OutcomeRejected means the backend refused the submission (wrong credentials, taken email).
	OutcomeRejected
	// OutcomeFailed means the backend could not be reached or broke.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SubmitResult is what a screen gets back from the backend after a submit.
// Redirect is only set on success; Err is only set otherwise.
type SubmitResult struct {
	Outcome  Outcome
	Redirect string
	Err      error
}

// Succeeded builds a successful result that navigates to redirect.
func Succeeded(redirect string) SubmitResult {
	return SubmitResult{Outcome: OutcomeSucceeded, Redirect: redirect}
}

// Rejected builds a result for a refusal the user can fix.
func Rejected(err error) SubmitResult {
	return SubmitResult{Outcome: OutcomeRejected, Err: err}
}

// Failed builds a result for a transport or backend failure.
func Failed(err error) SubmitResult {
	return SubmitResult{Outcome: OutcomeFailed, Err: err}
}

// OK reports whether the submission succeeded.
func (r SubmitResult) OK() bool {
	return r.Outcome == OutcomeSucceeded
}

// UserMessage is the text shown on the form when the submission did not succeed.
func (r SubmitResult) UserMessage() string {
	switch r.Outcome {
	case OutcomeSucceeded:
		return ""
	case OutcomeRejected:
		if r.Err != nil {
			return capitalize(r.Err.Error()) + "."
		}
		return "Your request was rejected."
	default:
		return "We could not reach EcoShare. Please try again in a moment."
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
