package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The seat counters are protected by conditional single-statement updates,
// not by read-modify-write in Go. These tests pin the guard clauses so a
// refactor cannot quietly reintroduce a race on the last seat.

func normalizeSQL(q string) string {
	return strings.Join(strings.Fields(q), " ")
}

func TestReserveSeatGuard(t *testing.T) {
	q := normalizeSQL(reserveSeatSQL)

	assert.Contains(t, q, "SET available_seats = available_seats - 1",
		"reserving must decrement in the same statement that checks availability")
	assert.Contains(t, q, "available_seats > 0",
		"the decrement must be conditional on a seat being left")
	assert.Contains(t, q, "status = $2",
		"only an approved class can hand out seats")
	assert.Equal(t, 1, strings.Count(q, "UPDATE"),
		"the reserve must be a single statement, not a read followed by a write")
}

func TestReleaseSeatGuard(t *testing.T) {
	q := normalizeSQL(releaseSeatSQL)

	assert.Contains(t, q, "SET available_seats = available_seats + 1")
	assert.Contains(t, q, "available_seats + enrolled_count < total_seats",
		"a release must never push the counters past capacity")
}

func TestConfirmEnrollmentGuard(t *testing.T) {
	q := normalizeSQL(confirmEnrollmentSQL)

	assert.Contains(t, q, "SET enrolled_count = enrolled_count + 1")
	assert.Contains(t, q, "available_seats + enrolled_count < total_seats",
		"an enrollment must never push the counters past capacity")
	assert.Equal(t, 1, strings.Count(q, "UPDATE"),
		"the enrollment bump must be a single conditional statement")
}
