package services

import (
	"log"
	"time"
)

// StreakPoint is what the streak computation needs from the owner's most
// recent mood entry.
type StreakPoint struct {
	At     time.Time
	Streak int
}

type StreakResult struct {
	Streak  int
	Allowed bool
}

// UTCDay strips the time of day in UTC. All streak arithmetic runs on
// calendar days, never on raw elapsed time: an entry at 23:00 followed by
// one at 01:00 the next day is a one-day step even though only two hours
// passed.
func UTCDay(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from time.Time, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// ComputeStreak decides the streak value for a new entry logged at now and
// whether logging is permitted. Same-day duplicates are rejected: the
// previous streak is reported unchanged with Allowed false, and the store's
// (user, day) unique index backstops the concurrent case.
func ComputeStreak(previous *StreakPoint, now time.Time) StreakResult {
	if previous == nil {
		return StreakResult{Streak: 1, Allowed: true}
	}

	dayDiff := daysBetween(UTCDay(previous.At), UTCDay(now))
	switch {
	case dayDiff == 0:
		return StreakResult{Streak: previous.Streak, Allowed: false}
	case dayDiff == 1:
		return StreakResult{Streak: previous.Streak + 1, Allowed: true}
	case dayDiff > 1:
		return StreakResult{Streak: 1, Allowed: true}
	default:
		// Backdated previous entry or clock skew. Should not happen when
		// client clocks are sane, so leave a trace.
		log.Printf("streak: previous entry %s is after now %s", previous.At.UTC(), now.UTC())
		return StreakResult{Streak: 1, Allowed: true}
	}
}
