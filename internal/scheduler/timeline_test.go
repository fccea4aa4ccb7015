package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeline_RecordCoalesces(t *testing.T) {
	ass := assert.New(t)

	var tl Timeline
	tl.Record("P1", 0)
	tl.Record("P1", 1)
	tl.Record(IdleLabel, 2)
	tl.Record(IdleLabel, 3)
	tl.Record("P1", 4)

	ass.Equal(Timeline{
		{Occupant: "P1", Start: 0, End: 2},
		{Occupant: IdleLabel, Start: 2, End: 4},
		{Occupant: "P1", Start: 4, End: 5},
	}, tl)
	ass.Equal(2, tl.IdleTicks())
}

func TestTimeline_RecordDoesNotMergeAcrossGap(t *testing.T) {
	ass := assert.New(t)

	// Same occupant but a non-adjacent tick starts a new segment.
	var tl Timeline
	tl.Record("P1", 0)
	tl.Record("P1", 5)

	ass.Equal(Timeline{
		{Occupant: "P1", Start: 0, End: 1},
		{Occupant: "P1", Start: 5, End: 6},
	}, tl)
}
