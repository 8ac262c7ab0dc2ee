package utils

import (
	"strings"
)

// ValidEmail performs a minimal syntactic check on an email address. Full
// RFC validation is intentionally avoided; the gateway and mail transport
// are the final arbiters of deliverability.
func ValidEmail(email string) bool {
	return strings.Contains(email, "@")
}
