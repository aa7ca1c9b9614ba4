// Package engine is the morning habit progress engine: pure computations
// over a record-store snapshot, the user's settings and an injected clock
// reading. Nothing in this package performs I/O or reads the wall clock.
package engine

import (
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ToMinutes parses an "HH:MM" clock string into minutes since midnight.
// The legacy "HH:MM AM/PM" form is still accepted for records written by
// old clients. Empty or unparseable input yields 0 so rendering degrades
// to midnight instead of failing.
func ToMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	period := ""
	if fields := strings.Fields(s); len(fields) == 2 {
		p := strings.ToUpper(fields[1])
		if p == "AM" || p == "PM" {
			s = fields[0]
			period = p
		}
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	switch period {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}

	return hours*60 + minutes
}

// ToHHMM renders minutes since midnight as a 24-hour "HH:MM" string,
// wrapping any input into [0, 1440).
func ToHHMM(minutes int) string {
	m := ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return pad2(m/60) + ":" + pad2(m%60)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// TimeDiff is the forward distance from one clock time to another.
type TimeDiff struct {
	Hours      int     `json:"hours"`
	Minutes    int     `json:"minutes"`
	TotalHours float64 `json:"total_hours"`
}

// TimeDifference returns how far current has moved past target, wrapping
// into the next day when current is earlier in wall-clock terms. The
// result is always non-negative.
func TimeDifference(current, target string) TimeDiff {
	diff := ToMinutes(current) - ToMinutes(target)
	if diff < 0 {
		diff += minutesPerDay
	}
	return TimeDiff{
		Hours:      diff / 60,
		Minutes:    diff % 60,
		TotalHours: float64(diff) / 60,
	}
}

// BedtimeInfo tells the user when to be asleep and when to start
// winding down (one hour earlier).
type BedtimeInfo struct {
	Bedtime   string `json:"bedtime"`
	RelaxTime string `json:"relax_time"`
}

// BedtimeFor derives the bedtime that leaves sleepHours of sleep before
// wakeTime, wrapping across midnight as needed.
func BedtimeFor(wakeTime string, sleepHours float64) BedtimeInfo {
	bedtime := ToMinutes(wakeTime) - int(math.Round(sleepHours*60))
	return BedtimeInfo{
		Bedtime:   ToHHMM(bedtime),
		RelaxTime: ToHHMM(bedtime - 60),
	}
}
