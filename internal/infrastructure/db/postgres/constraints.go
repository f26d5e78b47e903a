package postgres

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolationCode = "23505"

var sqliteUniquePattern = regexp.MustCompile(`UNIQUE constraint failed: (.+)`)

// uniqueViolation reports whether err is a unique-constraint violation and,
// if so, which constraint fired. On Postgres the driver carries the
// constraint name in a structured field; on sqlite (used by the test suite)
// only the violated columns appear in the message. Repositories match the
// returned tag, never raw driver text.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return pgErr.ConstraintName, true
	}

	if matches := sqliteUniquePattern.FindStringSubmatch(err.Error()); matches != nil {
		return strings.TrimSpace(matches[1]), true
	}

	return "", false
}
