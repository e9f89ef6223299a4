package domain

import "strings"

// NormalizeCode trims whitespace and uppercases a certificate or verification code.
// Generated codes are uppercase, so lookups are case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
