package postgres

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Builder is a squirrel statement builder using PostgreSQL placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns an ILIKE pattern matching s anywhere in a column,
// with LIKE metacharacters in s escaped.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

// AnyContains matches rows where at least one of columns contains keyword, case-insensitively.
func AnyContains(keyword string, columns ...string) squirrel.Or {
	pattern := ContainsPattern(keyword)
	or := make(squirrel.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, squirrel.ILike{c: pattern})
	}
	return or
}
