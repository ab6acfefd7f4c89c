// utils/constants.go
package utils

const (
	// Settlement lifecycle statuses (owned by the upstream application)
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"

	// Default page sizes per report
	DefaultSpendersLimit = 10
	DefaultActivityLimit = 10
	DefaultDebtsLimit    = 20
	DefaultAdminLimit    = 50

	// Window for the "recent expenses" slice of the summary report
	RecentWindowDays = 30

	// HTTP status messages
	ErrInvalidLimit     = "limit must be a positive integer"
	ErrInvalidGroupID   = "groupId must be an integer"
	ErrFailedToRetrieve = "Failed to retrieve data"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
