// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package landing

import "time"

// Countdown is the "offer ends in" timer shown in the page header.
type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// FullDay is the value the timer starts from and wraps back to.
var FullDay = Countdown{Hours: 23, Minutes: 59, Seconds: 59}

// Tick returns the countdown one second later. Each field borrows from
// the next one up and wraps independently, so 00:00:00 becomes 23:59:59
// and the offer never visibly expires.
func (c Countdown) Tick() Countdown {
	seconds := c.Seconds - 1
	minutes := c.Minutes
	if seconds < 0 {
		minutes--
	}
	hours := c.Hours
	if minutes < 0 {
		hours--
	}

	if hours < 0 {
		hours = 23
	}
	if minutes < 0 {
		minutes = 59
	}
	if seconds < 0 {
		seconds = 59
	}
	return Countdown{Hours: hours, Minutes: minutes, Seconds: seconds}
}

// Remaining converts the countdown to a duration.
func (c Countdown) Remaining() time.Duration {
	return time.Duration(c.Hours)*time.Hour +
		time.Duration(c.Minutes)*time.Minute +
		time.Duration(c.Seconds)*time.Second
}

// UntilMidnight returns the time left until the next midnight in loc,
// so every visitor in the same zone sees the same deadline.
func UntilMidnight(now time.Time, loc *time.Location) Countdown {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	y, m, d := local.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, loc)

	left := midnight.Sub(local).Truncate(time.Second)
	if left >= 24*time.Hour {
		return FullDay
	}
	total := int(left / time.Second)
	return Countdown{Hours: total / 3600, Minutes: total % 3600 / 60, Seconds: total % 60}
}
