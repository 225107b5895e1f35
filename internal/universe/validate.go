package universe

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty     = errors.New("universe has no tickers")
	ErrDuplicate = errors.New("duplicate ticker")
	ErrOverlap   = errors.New("ticker belongs to more than one group")
)

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field string
	Err   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the builder preconditions: a non-empty list of unique
// tickers and disjoint membership sets.
func Validate(u *Universe) error {
	if len(u.Tickers) == 0 {
		return ValidationError{"tickers", ErrEmpty}
	}

	seen := make(map[string]struct{}, len(u.Tickers))
	for i, t := range u.Tickers {
		if t == "" {
			return ValidationError{fmt.Sprintf("tickers[%d]", i), errors.New("empty ticker")}
		}
		if _, dup := seen[t]; dup {
			return ValidationError{fmt.Sprintf("tickers[%d]", i), fmt.Errorf("%w: %s", ErrDuplicate, t)}
		}
		seen[t] = struct{}{}
	}

	owner := make(map[string]int)
	for gi, g := range u.Groups {
		if g.Sector == "" {
			return ValidationError{fmt.Sprintf("groups[%d].sector", gi), errors.New("required")}
		}
		for _, m := range g.Members {
			if prev, ok := owner[m]; ok && prev != gi {
				return ValidationError{fmt.Sprintf("groups[%d].members", gi), fmt.Errorf("%w: %s", ErrOverlap, m)}
			}
			owner[m] = gi
		}
	}

	if u.Fallback.Sector == "" {
		return ValidationError{"fallback.sector", errors.New("required")}
	}

	return nil
}
