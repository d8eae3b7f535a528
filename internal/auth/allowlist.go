package auth

import "strings"

// The admin allow-list. Every admin request is checked against it, not just
// login, so removing an email from ADMIN_EMAILS revokes access on the next
// request even if a token is still live.
var authorizedAdminEmails []string

// SetAuthorizedEmails installs the allow-list (normalized to lower case).
func SetAuthorizedEmails(emails []string) {
	normalized := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			normalized = append(normalized, e)
		}
	}
	authorizedAdminEmails = normalized
}

// IsAuthorizedAdmin reports whether the email is on the allow-list.
func IsAuthorizedAdmin(email string) bool {
	if email == "" {
		return false
	}
	email = strings.ToLower(email)
	for _, allowed := range authorizedAdminEmails {
		if allowed == email {
			return true
		}
	}
	return false
}

// AuthorizedEmails returns a copy of the allow-list.
func AuthorizedEmails() []string {
	out := make([]string, len(authorizedAdminEmails))
	copy(out, authorizedAdminEmails)
	return out
}
