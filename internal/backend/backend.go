// Package backend contains the stand-in for the EcoShare account service.
package backend

import (
	"context"

	"github.com/nfrund/ecoshare/internal/domain"
)

// Authenticator is the contract a real account service would have to satisfy.
// Implementations return an error only when ctx ends before an answer is known;
// every answer, good or bad, is a domain.SubmitResult.
type Authenticator interface {
	Authenticate(ctx context.Context, creds domain.Credentials) (domain.SubmitResult, error)
	Register(ctx context.Context, reg domain.Registration) (domain.SubmitResult, error)
}
