package hotmart

import (
	"regexp"
	"strings"
)

// Action is what a purchase event asks the entitlement store to do.
type Action int

const (
	// ActionNone acknowledges the event without touching the store.
	ActionNone Action = iota
	// ActionGrant adds the product to the purchaser's entitlements.
	ActionGrant
	// ActionRevoke removes the purchaser's record entirely.
	ActionRevoke
)

var grantSubstrings = []string{"approved", "completed", "waiting_payment_approved"}

var revokePattern = regexp.MustCompile(`(?i)(refunded|chargeback|canceled|cancelled|expired|overdue)`)

// ClassifyStatus maps a provider status to a store action. Approval
// substrings are checked before the revocation pattern; anything else is
// informational and leaves the store untouched.
func ClassifyStatus(status string) Action {
	s := strings.ToLower(strings.TrimSpace(status))
	for _, sub := range grantSubstrings {
		if strings.Contains(s, sub) {
			return ActionGrant
		}
	}
	if revokePattern.MatchString(s) {
		return ActionRevoke
	}
	return ActionNone
}
