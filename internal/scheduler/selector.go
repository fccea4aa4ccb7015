package scheduler

import (
	"sort"
)

// Candidate is the selector's view of one ready process. Remaining is the
// live value from the simulator's runtime table, not the static burst.
type Candidate struct {
	ID        int
	Arrival   int
	Burst     int
	Priority  int
	Remaining int
}

// hrnTieTolerance bounds float noise in the response-ratio quotient: ratios
// closer than this are treated as equal and fall through to the tie-breaks.
const hrnTieTolerance = 0.001

// SelectNext picks the process that should occupy the processor next. It is
// pure: the input slice is never reordered, and nil is returned for an empty
// candidate set. Round robin performs no reordering at all and returns the
// head of the queue as given.
func SelectNext(candidates []Candidate, now int, algo Algorithm) *Candidate {
	if len(candidates) == 0 {
		return nil
	}
	if algo == RoundRobin {
		head := candidates[0]
		return &head
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	less := orderFor(algo, now)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	head := sorted[0]
	return &head
}

// orderFor returns the total order for one discipline. Ties break by
// ascending arrival time, then ascending id.
func orderFor(algo Algorithm, now int) func(a, b Candidate) bool {
	switch algo {
	case FirstComeFirstServe:
		return func(a, b Candidate) bool {
			if a.Arrival != b.Arrival {
				return a.Arrival < b.Arrival
			}
			return a.ID < b.ID
		}
	case ShortestJobFirst:
		return func(a, b Candidate) bool {
			if a.Burst != b.Burst {
				return a.Burst < b.Burst
			}
			return tieBreak(a, b)
		}
	case ShortestRemainingTime:
		return func(a, b Candidate) bool {
			if a.Remaining != b.Remaining {
				return a.Remaining < b.Remaining
			}
			return tieBreak(a, b)
		}
	case Priority:
		return func(a, b Candidate) bool {
			if a.Priority != b.Priority {
				return a.Priority < b.Priority
			}
			return tieBreak(a, b)
		}
	case HighestResponseRatio:
		return func(a, b Candidate) bool {
			ra, rb := ResponseRatio(a, now), ResponseRatio(b, now)
			if diff := ra - rb; diff > hrnTieTolerance || diff < -hrnTieTolerance {
				return ra > rb
			}
			return tieBreak(a, b)
		}
	default:
		// Deliberate fallback for unknown disciplines: plain id order.
		return func(a, b Candidate) bool {
			return a.ID < b.ID
		}
	}
}

func tieBreak(a, b Candidate) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.ID < b.ID
}

// ResponseRatio computes (waiting + burst) / burst for HRN, recomputed from
// the current clock on every call so long-waiting jobs gain urgency.
func ResponseRatio(c Candidate, now int) float64 {
	waiting := now - c.Arrival
	if waiting < 0 {
		waiting = 0
	}
	return float64(waiting+c.Burst) / float64(c.Burst)
}
