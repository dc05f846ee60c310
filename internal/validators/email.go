package validators

import "strings"

// IsEmailShaped checks the minimal local@domain structure. Deliverability
// is not verified; the store's unique index is the real gate on identity.
func IsEmailShaped(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.ContainsAny(email, " \t\n") {
		return false
	}

	return true
}
