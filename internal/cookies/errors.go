package cookies

import "errors"

var (
	// ErrUnsupportedPlatform indicates the host OS has no known Firefox
	// profile location.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrProfileNotFound indicates no default Firefox profile directory
	// could be located.
	ErrProfileNotFound = errors.New("firefox profile not found")
	// ErrStoreNotFound indicates the profile exists but holds no
	// cookies.sqlite database.
	ErrStoreNotFound = errors.New("cookie database not found")
	// ErrNoCookies indicates the store was readable but held no cookies for
	// any candidate domain.
	ErrNoCookies = errors.New("no cookies found")
)
