package repository

import "time"

// testTime is a fixed UTC instant used for timestamp columns in mocks.
func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}
