package schedule

// Business error codes of the schedule admin surface.
const (
	CodeInvalidDate        = "invalid_date"
	CodeInvalidTimeRange   = "invalid_time_range"
	CodeDateAlreadyBlocked = "date_already_blocked"
	CodeBlockedNotFound    = "blocked_date_not_found"
	CodeOverrideNotFound   = "schedule_override_not_found"
	CodeStoreUnavailable   = "store_unavailable"
)
