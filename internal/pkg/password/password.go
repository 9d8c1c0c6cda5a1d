package password

import (
	"canteen-backoffice/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrMismatch = errs.New("password does not match")
	ErrHashing  = errs.New("password hashing failed")
)

// Cost is the work factor for newly stored admin hashes.
const Cost = 12

func Hash(plain string) (string, error) {
	return HashWithCost(plain, Cost)
}

func HashWithCost(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", errs.Wrapf(ErrHashing, "cost %d out of range", cost)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashing)
	}
	return string(hashed), nil
}

// Verify returns ErrMismatch for a wrong password. A malformed stored hash is
// returned as is.
func Verify(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "stored password hash is unusable")
	}
}

// NeedsRehash reports whether a stored hash was produced below the current Cost.
func NeedsRehash(hashed string) bool {
	cost, err := bcrypt.Cost([]byte(hashed))
	return err != nil || cost < Cost
}
