// utils/params.go
package utils

import "strconv"

// ParseLimit parses a limit query parameter, falling back to def when the
// parameter is absent. No upper bound is enforced; callers can ask for
// arbitrarily large result sets, matching the upstream behavior.
func ParseLimit(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, NewBadRequestError(ErrInvalidLimit)
	}
	return limit, nil
}

// ParseID parses a numeric path or query parameter
func ParseID(raw, message string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewBadRequestError(message)
	}
	return id, nil
}
