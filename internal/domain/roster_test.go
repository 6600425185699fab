package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDiscordID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{
			name:     "typical snowflake",
			id:       "123456789012345678",
			expected: true,
		},
		{
			name:     "minimum length",
			id:       "1234567890",
			expected: true,
		},
		{
			name:     "maximum length",
			id:       "12345678901234567890",
			expected: true,
		},
		{
			name:     "too short",
			id:       "123456789",
			expected: false,
		},
		{
			name:     "too long",
			id:       "123456789012345678901",
			expected: false,
		},
		{
			name:     "empty",
			id:       "",
			expected: false,
		},
		{
			name:     "non-numeric",
			id:       "12345abcde",
			expected: false,
		},
		{
			name:     "username not snowflake",
			id:       "gandalf#1234",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidDiscordID(tt.id))
		})
	}
}

func TestNormalizeCharacterName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase",
			input:    "gandalf",
			expected: "Gandalf",
		},
		{
			name:     "all caps",
			input:    "GANDALF",
			expected: "Gandalf",
		},
		{
			name:     "surrounding whitespace",
			input:    "  gandalf  ",
			expected: "Gandalf",
		},
		{
			name:     "two words",
			input:    "gandalf the grey",
			expected: "Gandalf The Grey",
		},
		{
			name:     "collapses inner whitespace",
			input:    "gandalf   the   grey",
			expected: "Gandalf The Grey",
		},
		{
			name:     "already normalized",
			input:    "Gandalf",
			expected: "Gandalf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCharacterName(tt.input))
		})
	}
}

func TestUsernameForCharacter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single word",
			input:    "Gandalf",
			expected: "gandalf",
		},
		{
			name:     "multi word",
			input:    "Gandalf The Grey",
			expected: "gandalf_the_grey",
		},
		{
			name:     "trims whitespace",
			input:    " Gandalf ",
			expected: "gandalf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UsernameForCharacter(tt.input))
		})
	}
}

func TestCandidateUsername(t *testing.T) {
	assert.Equal(t, "gandalf", CandidateUsername("gandalf", 0))
	assert.Equal(t, "gandalf_1", CandidateUsername("gandalf", 1))
	assert.Equal(t, "gandalf_7", CandidateUsername("gandalf", 7))
}
