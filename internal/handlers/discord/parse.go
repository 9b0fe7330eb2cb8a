package discord

import (
	"errors"
	"regexp"
	"strings"

	"github.com/exposedgame/exposed/internal/services/game"
)

const nameFormatHelp = "Invalid format. Use `@mention as Alias`, separated by commas. Example:\n" +
	"`@david696 as Jeevan, @alice123 as Priya, @bob789 as Rohit`"

// mentionAliasRe captures one "<@id> as Alias" entry; the optional ! covers
// legacy nickname mentions
var mentionAliasRe = regexp.MustCompile(`^<@!?(\d+)> as (.+)$`)

var errBadNameEntry = errors.New("invalid mention+alias entry")

// parseNameList turns a "<@id> as Alias, <@id> as Alias" message into the
// (id, alias) pairs the core consumes. Count and uniqueness validation is
// the core's job; this only enforces the wire format.
func parseNameList(content string) ([]game.NameEntry, error) {
	parts := strings.Split(content, ",")

	entries := make([]game.NameEntry, 0, len(parts))
	for _, part := range parts {
		match := mentionAliasRe.FindStringSubmatch(strings.TrimSpace(part))
		if match == nil {
			return nil, errBadNameEntry
		}
		entries = append(entries, game.NameEntry{
			ID:    match[1],
			Alias: strings.TrimSpace(match[2]),
		})
	}
	return entries, nil
}
