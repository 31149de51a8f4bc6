package manchu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceErrorUnwrapsToSentinel(t *testing.T) {
	err := &ResourceError{File: "suffix.csv", Line: 3, Reason: "bad conjugation"}
	assert.True(t, errors.Is(err, ErrResourceParse))
	assert.Contains(t, err.Error(), "suffix.csv")
	assert.Contains(t, err.Error(), "3")
}
