package models

import "unicode/utf8"

// AliasMinLen is the shortest alias a participant may register with
const AliasMinLen = 1

// AliasMaxLen is the longest alias a participant may register with
const AliasMaxLen = 20

// Participant represents one registered player in a session
type Participant struct {
	// ID is the chat-platform user ID of the player, treated as opaque
	ID string

	// Alias is the display name the player registered with
	Alias string
}

// ValidAlias reports whether an alias is within the allowed length bounds.
// Bounds are in runes, not bytes.
func ValidAlias(alias string) bool {
	n := utf8.RuneCountInString(alias)
	return n >= AliasMinLen && n <= AliasMaxLen
}
