package services

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

var (
	// ErrSlotUnavailable is returned when a booking loses the race for the
	// last slot on a day, or the day is already full/blocked. Callers must
	// re-check availability before retrying.
	ErrSlotUnavailable = errors.New("slot_unavailable")

	ErrNotFound = errors.New("not_found")

	// errRetryReserve signals a lost conditional update inside the
	// reserve loop; never escapes CreateBooking.
	errRetryReserve = errors.New("retry_reserve")
)

// ValidationError is a client-correctable input problem. Controllers map it
// to 400 instead of 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// isDuplicateKey detects unique-constraint violations across the MySQL
// driver and the sqlite driver used in tests.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}
