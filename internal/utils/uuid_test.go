package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, a, b)

	id, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.True(t, IsUUID(a))
}

func TestIsUUID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0190f2a4-9c1e-7b3a-8d2f-1a2b3c4d5e6f", true},
		{"0190F2A4-9C1E-7B3A-8D2F-1A2B3C4D5E6F", false},
		{"{0190f2a4-9c1e-7b3a-8d2f-1a2b3c4d5e6f}", false},
		{"device-1", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUUID(tt.in), tt.in)
	}
}
