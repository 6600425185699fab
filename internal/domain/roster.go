package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var discordIDPattern = regexp.MustCompile(`^\d{10,20}$`)

// ValidDiscordID reports whether the string is a plausible Discord snowflake
// (10 to 20 digits)
func ValidDiscordID(id string) bool {
	return discordIDPattern.MatchString(id)
}

// NormalizeCharacterName trims and title-cases a character name
func NormalizeCharacterName(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	for i, f := range fields {
		r := []rune(strings.ToLower(f))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}

// UsernameForCharacter derives the base account username from a character
// name: lowercased with spaces replaced by underscores
func UsernameForCharacter(characterName string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(characterName)), " ", "_")
}

// CandidateUsername returns the nth collision candidate for a base username.
// n=0 is the base itself, n=1 yields base_1 and so on.
func CandidateUsername(base string, n int) string {
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, n)
}
