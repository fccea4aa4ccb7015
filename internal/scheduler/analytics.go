package scheduler

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ProcessStats holds the derived timing figures for one finished process.
// Unfinished processes (simulation stopped early) report Completion -1 and
// zeroed derived times.
type ProcessStats struct {
	ID         int
	Name       string
	Arrival    int
	Burst      int
	Priority   int
	Completion int
	Turnaround int
	Waiting    int
	Response   int
}

// RunStats aggregates a whole simulation run.
type RunStats struct {
	TotalTime         int
	IdleTime          int
	CPUUtilization    float64
	Throughput        float64
	AverageWaiting    float64
	AverageTurnaround float64
	AverageResponse   float64
	PerProcess        []ProcessStats
}

// Stats derives per-process and aggregate figures from the current
// simulation state. Meaningful after Run; safe at any point.
func (s *Simulator) Stats() RunStats {
	perProc := make([]ProcessStats, 0, len(s.byID))
	waits := make([]float64, 0, len(s.byID))
	turnarounds := make([]float64, 0, len(s.byID))
	responses := make([]float64, 0, len(s.byID))

	for _, id := range s.order {
		st := s.byID[id]
		ps := ProcessStats{
			ID:         st.def.ID,
			Name:       st.def.Name,
			Arrival:    st.def.Arrival,
			Burst:      st.def.Burst,
			Priority:   st.def.Priority,
			Completion: st.completion,
		}
		if st.completion >= 0 {
			ps.Turnaround = st.completion - st.def.Arrival
			ps.Waiting = ps.Turnaround - st.def.Burst
			ps.Response = st.firstRun - st.def.Arrival
			waits = append(waits, float64(ps.Waiting))
			turnarounds = append(turnarounds, float64(ps.Turnaround))
			responses = append(responses, float64(ps.Response))
		}
		perProc = append(perProc, ps)
	}
	sort.Slice(perProc, func(i, j int) bool { return perProc[i].ID < perProc[j].ID })

	rs := RunStats{
		TotalTime:  s.now,
		IdleTime:   s.timeline.IdleTicks(),
		PerProcess: perProc,
	}
	if len(waits) > 0 {
		rs.AverageWaiting = stat.Mean(waits, nil)
		rs.AverageTurnaround = stat.Mean(turnarounds, nil)
		rs.AverageResponse = stat.Mean(responses, nil)
	}
	if s.now > 0 {
		rs.CPUUtilization = 1 - float64(rs.IdleTime)/float64(s.now)
		rs.Throughput = float64(len(waits)) / float64(s.now)
	}
	return rs
}
