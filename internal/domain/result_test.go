package domain_test

import (
	"errors"
	"testing"

	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSubmitResult(t *testing.T) {
	ok := domain.Succeeded("/dashboard")
	assert.True(t, ok.OK())
	assert.Equal(t, "/dashboard", ok.Redirect)
	assert.Empty(t, ok.UserMessage())
	assert.Equal(t, "succeeded", ok.Outcome.String())

	rejected := domain.Rejected(domain.ErrInvalidCredentials)
	assert.False(t, rejected.OK())
	assert.Equal(t, "Invalid credentials provided.", rejected.UserMessage())

	failed := domain.Failed(errors.New("dial tcp: connection refused"))
	assert.False(t, failed.OK())
	assert.NotContains(t, failed.UserMessage(), "dial tcp", "transport details stay in the logs")
	assert.Equal(t, "failed", failed.Outcome.String())
}
