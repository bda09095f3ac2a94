package hotmart

import "strings"

// Allowlist restricts grants to a configured set of product IDs. An empty
// list allows everything; revocations always bypass the list.
type Allowlist []string

// ParseAllowlist splits the comma-separated ALLOWED_PRODUCT_IDS value,
// trimming entries and dropping blanks.
func ParseAllowlist(csv string) Allowlist {
	parts := strings.Split(csv, ",")
	list := make(Allowlist, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

// Allows reports whether a grant for productID may proceed. Events without a
// product ID are never filtered, matching the original provider behavior.
func (a Allowlist) Allows(productID string) bool {
	if len(a) == 0 || productID == "" {
		return true
	}
	for _, id := range a {
		if id == productID {
			return true
		}
	}
	return false
}
