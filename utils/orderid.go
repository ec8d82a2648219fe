package utils

import (
	"strconv"
	"time"
)

// OrderID builds "N" followed by the last 8 digits of the millisecond
// timestamp of t.
func OrderID(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "N" + ms
}
