package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_Status(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf)

	s.Status("trial 3/10")
	assert.Equal(t, " trial 3/10", s.Suffix)

	s.Start()
	s.Status("trial 4/10")
	s.Stop()

	assert.Equal(t, " trial 4/10", s.Suffix)
}
