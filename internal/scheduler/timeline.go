package scheduler

// IdleLabel marks ticks during which no process occupied the processor.
const IdleLabel = "IDLE"

// Segment is one gantt-chart slice: Occupant held the processor for every
// tick in [Start, End).
type Segment struct {
	Occupant string
	Start    int
	End      int
}

// Timeline is an append-only sequence of segments covering [0, now) with no
// gaps. Consecutive ticks with the same occupant share one segment.
type Timeline []Segment

// Record extends the last segment when the occupant is unchanged, otherwise
// appends a new single-tick segment starting at tick.
func (t *Timeline) Record(occupant string, tick int) {
	n := len(*t)
	if n > 0 && (*t)[n-1].Occupant == occupant && (*t)[n-1].End == tick {
		(*t)[n-1].End = tick + 1
		return
	}
	*t = append(*t, Segment{Occupant: occupant, Start: tick, End: tick + 1})
}

// IdleTicks sums the width of all IDLE segments.
func (t Timeline) IdleTicks() int {
	idle := 0
	for _, seg := range t {
		if seg.Occupant == IdleLabel {
			idle += seg.End - seg.Start
		}
	}
	return idle
}
