package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(errors.New("simple error")))
	assert.False(t, IsNotFoundError(InvalidRequestError("invalid request")))

	nfErr := NotFoundError("stats abc not found")
	assert.True(t, IsNotFoundError(nfErr))
	assert.True(t, IsNotFoundError(fmt.Errorf("loading stats: %w", nfErr)))
}

func TestIsTooManyRequestsError(t *testing.T) {
	assert.False(t, IsTooManyRequestsError(errors.New("simple error")))
	assert.False(t, IsTooManyRequestsError(nil))

	err := fmt.Errorf("fetching branches: %w", TooManyRequestsError("rate limit exceeded"))
	assert.True(t, IsTooManyRequestsError(err))
}
