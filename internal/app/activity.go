package app

import (
	"math"
	"time"
)

const (
	// staleAfterDays - repo is stale when nothing was pushed for longer than this.
	staleAfterDays = 540
	// newWithinDays - repo is new when it was created later than this.
	newWithinDays = 365
	// paceWindowWeeks - number of most recent weekly buckets used for commit pace.
	paceWindowWeeks = 13
	// inDevPaceThreshold - commit pace must be strictly greater to count as in-development.
	inDevPaceThreshold = 5
)

// ClassifyActivity maps repository age, push recency, the archived flag and
// commit pace to an activity status. First matching rule wins:
// archived, stale, new, in-development, stable.
//
// Archived is authoritative and short-circuits all velocity reasoning.
// Staleness is judged on push recency, not creation age. A young repo never
// gets a velocity-based status: it hasn't accumulated a meaningful baseline.
func ClassifyActivity(now time.Time, createdAt time.Time, pushedAt time.Time, archived bool, commitPace float64) ActivityStatus {
	if archived {
		return StatusArchived
	}

	if now.Sub(pushedAt) > staleAfterDays*24*time.Hour {
		return StatusStale
	}
	if now.Sub(createdAt) < newWithinDays*24*time.Hour {
		return StatusNew
	}
	if commitPace > inDevPaceThreshold {
		return StatusInDevelopment
	}

	return StatusStable
}

// CommitPace returns the average commits per week over the most recent 13
// weekly buckets (fewer if the series is shorter), rounded to one decimal
// place. An empty or absent series yields 0.
func CommitPace(weeks []CommitWeek) float64 {
	if len(weeks) == 0 {
		return 0
	}

	recent := weeks
	if len(recent) > paceWindowWeeks {
		recent = recent[len(recent)-paceWindowWeeks:]
	}

	var total int
	for _, w := range recent {
		total += w.Total
	}

	return math.Round(float64(total)/float64(len(recent))*10) / 10
}
