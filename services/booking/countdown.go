// File: services/booking/countdown.go
package booking

import (
	"time"

	"courtside/models"
)

// CountdownUntil decomposes the time remaining until target into hours,
// minutes and seconds. A target at or before now yields exactly {0,0,0}
// with the expired flag set.
func CountdownUntil(target, now time.Time) models.Countdown {
	remaining := target.Sub(now)
	if remaining <= 0 {
		return models.Countdown{Expired: true}
	}
	total := int(remaining.Seconds())
	return models.Countdown{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}
