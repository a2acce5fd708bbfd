package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCount(t *testing.T) {
	assert.NoError(t, checkCount(1))
	assert.NoError(t, checkCount(52))

	err := checkCount(0)
	assert.EqualError(t, err, "--count must be at least 1, got 0")

	err = checkCount(-1)
	assert.EqualError(t, err, "--count must be at least 1, got -1")
}
