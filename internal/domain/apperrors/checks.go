package apperrors

import "errors"

// Stateless result-checking helpers shared by every domain service. They hold
// no state and can be called from any goroutine.

// RequireFound fails with notFound when the looked-up value is missing.
func RequireFound(found bool, notFound *Error) error {
	if !found {
		return notFound
	}
	return nil
}

// RequireAbsent fails with conflict when a duplicate was found.
func RequireAbsent(found bool, conflict *Error) error {
	if found {
		return conflict
	}
	return nil
}

// RequireAllowed fails with forbidden when an ownership or structural rule
// does not hold.
func RequireAllowed(allowed bool, forbidden *Error) error {
	if !allowed {
		return forbidden
	}
	return nil
}

// CheckAffected translates a zero-affected-rows conditional delete into
// notFound. A concurrent deleter winning the race must surface as not-found,
// never as silent success.
func CheckAffected(affected int64, notFound *Error) error {
	if affected == 0 {
		return notFound
	}
	return nil
}

func IsNotFound(err error) bool  { return isKind(err, KindNotFound) }
func IsConflict(err error) bool  { return isKind(err, KindConflict) }
func IsForbidden(err error) bool { return isKind(err, KindForbidden) }

func isKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
