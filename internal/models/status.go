package models

// Order statuses, in their one and only forward order. There is no cancel, no
// revert and no skipping: every mutation goes through NextStatus.
const (
	StatusPending        = "pending"
	StatusValidated      = "validated"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
)

var statusSuccessor = map[string]string{
	StatusPending:        StatusValidated,
	StatusValidated:      StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

// AllStatuses lists the valid statuses in lifecycle order.
var AllStatuses = []string{StatusPending, StatusValidated, StatusOutForDelivery, StatusDelivered}

// IsValidStatus reports whether s is one of the known statuses.
func IsValidStatus(s string) bool {
	if s == StatusDelivered {
		return true
	}
	_, ok := statusSuccessor[s]
	return ok
}

// NextStatus returns the successor of current, or false when current is
// terminal or unknown.
func NextStatus(current string) (string, bool) {
	next, ok := statusSuccessor[current]
	return next, ok
}

// CanAttachReview reports whether an order in the given status accepts a
// review. Only the terminal state does.
func CanAttachReview(status string) bool {
	return status == StatusDelivered
}
