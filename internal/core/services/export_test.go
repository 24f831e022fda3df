package services

// SetPasswordMatcher replaces the password comparison used by Login and
// returns a func that restores the original.
func SetPasswordMatcher(fn func(hash, password string) bool) (restore func()) {
	prev := passwordMatches
	passwordMatches = fn
	return func() { passwordMatches = prev }
}
