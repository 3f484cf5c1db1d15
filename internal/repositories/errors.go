package repositories

import "errors"

// Sentinel errors returned by repositories so services can branch on the
// not-found and conflict cases without matching message strings.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrStockNotFound    = errors.New("stock not found")
	ErrFavoriteNotFound = errors.New("favorite not found")

	// Duplicate-key violations surfaced by the unique indexes. These are the
	// authoritative conflict signal when concurrent requests slip past the
	// service-level pre-checks.
	ErrDuplicateUser     = errors.New("user already exists")
	ErrDuplicateStock    = errors.New("stock already exists")
	ErrDuplicateFavorite = errors.New("favorite already exists")
)
