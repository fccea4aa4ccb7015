package scheduler

import (
	"fmt"

	"github.com/Bae-Sunny/cpu-scheduler-simulator/internal/core"
)

// procState is the engine-owned runtime record for one process. The
// simulator is the sole owner of remaining-time bookkeeping; callers only
// supply the static definitions.
type procState struct {
	def        core.Process
	remaining  int
	firstRun   int // tick of first execution, -1 until scheduled
	completion int // tick at which remaining reached 0, -1 until done
}

// Simulator advances a single-processor schedule one tick at a time. Each
// Advance call is one atomic state transition; the struct is not safe for
// concurrent use and must be driven by a single owner.
type Simulator struct {
	algo    Algorithm
	quantum int

	order []int // definition order, for deterministic admission
	byID  map[int]*procState

	now         int
	readyQueue  []int
	currentID   int // -1 when the processor is idle
	completed   map[int]bool
	quantumLeft int
	running     bool
	timeline    Timeline
}

// NewSimulator snapshots the process definitions and prepares a simulation
// at tick 0. quantum must be >= 1 under round robin; other disciplines
// ignore it.
func NewSimulator(procs []core.Process, algo Algorithm, quantum int) (*Simulator, error) {
	if err := core.ValidateSet(procs); err != nil {
		return nil, err
	}
	if algo == RoundRobin && quantum < 1 {
		return nil, fmt.Errorf("round robin requires a time quantum >= 1, got %d", quantum)
	}

	s := &Simulator{
		algo:      algo,
		quantum:   quantum,
		order:     make([]int, 0, len(procs)),
		byID:      make(map[int]*procState, len(procs)),
		currentID: -1,
		completed: make(map[int]bool),
	}
	for _, p := range procs {
		s.order = append(s.order, p.ID)
		s.byID[p.ID] = &procState{def: p, remaining: p.Burst, firstRun: -1, completion: -1}
	}
	return s, nil
}

// Advance applies exactly one tick of the state machine: admit arrivals,
// handle quantum expiry, select the next occupant, record the timeline,
// execute one tick of work, then advance the clock. Once every process has
// finished it only clears the running flag.
func (s *Simulator) Advance() {
	if s.Done() {
		s.running = false
		return
	}
	s.admitArrivals()
	s.expireQuantum()
	s.selectCurrent()
	s.recordTick()
	s.execute()
	s.now++
}

func (s *Simulator) admitArrivals() {
	for _, id := range s.order {
		st := s.byID[id]
		if st.def.Arrival > s.now || st.remaining == 0 || s.completed[id] {
			continue
		}
		if id == s.currentID || s.queued(id) {
			continue
		}
		s.readyQueue = append(s.readyQueue, id)
	}
}

// expireQuantum evicts the running process to the queue tail once its slice
// is spent, provided someone else is waiting. A process alone on the machine
// just keeps its slot.
func (s *Simulator) expireQuantum() {
	if s.algo != RoundRobin || s.currentID < 0 {
		return
	}
	if s.quantumLeft > 0 || len(s.readyQueue) == 0 {
		return
	}
	s.readyQueue = append(s.readyQueue, s.currentID)
	s.currentID = -1
}

// selectCurrent fills an empty processor slot, and under SRT re-runs the
// selection every tick with the incumbent included so a shorter-remaining
// arrival preempts it. Round robin only selects into an empty slot; the
// queue head must not rotate mid-slice.
func (s *Simulator) selectCurrent() {
	if s.currentID >= 0 && s.algo != ShortestRemainingTime {
		return
	}

	candidates := make([]Candidate, 0, len(s.readyQueue)+1)
	for _, id := range s.readyQueue {
		st, ok := s.byID[id]
		if !ok || st.remaining == 0 || s.completed[id] {
			// Stale queue entries are skipped, not an error.
			continue
		}
		candidates = append(candidates, s.candidate(st))
	}
	if s.algo == ShortestRemainingTime && s.currentID >= 0 {
		candidates = append(candidates, s.candidate(s.byID[s.currentID]))
	}

	pick := SelectNext(candidates, s.now, s.algo)
	if pick == nil || pick.ID == s.currentID {
		return
	}
	if s.currentID >= 0 {
		s.readyQueue = append(s.readyQueue, s.currentID)
	}
	s.removeFromQueue(pick.ID)
	s.currentID = pick.ID
	if s.algo == RoundRobin {
		s.quantumLeft = s.quantum
	}
}

func (s *Simulator) recordTick() {
	if s.currentID >= 0 {
		s.timeline.Record(s.byID[s.currentID].def.Name, s.now)
		return
	}
	for _, st := range s.byID {
		if st.remaining > 0 {
			s.timeline.Record(IdleLabel, s.now)
			return
		}
	}
}

func (s *Simulator) execute() {
	if s.currentID < 0 {
		return
	}
	st := s.byID[s.currentID]
	if st.firstRun < 0 {
		st.firstRun = s.now
	}
	st.remaining--
	if s.algo == RoundRobin && s.quantumLeft > 0 {
		s.quantumLeft--
	}
	if st.remaining == 0 {
		st.completion = s.now + 1
		s.completed[st.def.ID] = true
		s.removeFromQueue(st.def.ID)
		s.currentID = -1
		s.quantumLeft = 0
	}
}

func (s *Simulator) queued(id int) bool {
	for _, qid := range s.readyQueue {
		if qid == id {
			return true
		}
	}
	return false
}

func (s *Simulator) removeFromQueue(id int) {
	for i, qid := range s.readyQueue {
		if qid == id {
			s.readyQueue = append(s.readyQueue[:i], s.readyQueue[i+1:]...)
			return
		}
	}
}

func (s *Simulator) candidate(st *procState) Candidate {
	return Candidate{
		ID:        st.def.ID,
		Arrival:   st.def.Arrival,
		Burst:     st.def.Burst,
		Priority:  st.def.Priority,
		Remaining: st.remaining,
	}
}

// Run advances until the simulation completes, erroring out if maxTicks
// transitions were not enough (a guard against unbounded arrival times).
func (s *Simulator) Run(maxTicks int) error {
	s.running = true
	for !s.Done() {
		if s.now >= maxTicks {
			s.running = false
			return fmt.Errorf("simulation exceeded %d ticks", maxTicks)
		}
		s.Advance()
	}
	s.running = false
	return nil
}

// Reset restores the initial state: tick 0, empty timeline and queues,
// every process back to its full burst. Calling it repeatedly is a no-op.
func (s *Simulator) Reset() {
	s.now = 0
	s.readyQueue = nil
	s.currentID = -1
	s.completed = make(map[int]bool)
	s.quantumLeft = 0
	s.running = false
	s.timeline = nil
	for _, st := range s.byID {
		st.remaining = st.def.Burst
		st.firstRun = -1
		st.completion = -1
	}
}

// Done reports whether every process has finished. An empty process set is
// trivially done.
func (s *Simulator) Done() bool {
	for _, st := range s.byID {
		if st.remaining > 0 {
			return false
		}
	}
	return true
}

func (s *Simulator) Now() int { return s.now }

func (s *Simulator) Running() bool { return s.running }

func (s *Simulator) Algorithm() Algorithm { return s.algo }

// Timeline returns a copy of the accumulated gantt segments.
func (s *Simulator) Timeline() Timeline {
	out := make(Timeline, len(s.timeline))
	copy(out, s.timeline)
	return out
}

// Snapshot is an externally consumable view of the simulation state.
type Snapshot struct {
	Now       int
	Algorithm string
	Current   string // running process name, "" when idle
	Ready     []string
	Completed []string
	Remaining map[int]int
	Timeline  Timeline
	Done      bool
}

func (s *Simulator) Snapshot() Snapshot {
	snap := Snapshot{
		Now:       s.now,
		Algorithm: s.algo.String(),
		Remaining: make(map[int]int, len(s.byID)),
		Timeline:  s.Timeline(),
		Done:      s.Done(),
	}
	if s.currentID >= 0 {
		snap.Current = s.byID[s.currentID].def.Name
	}
	for _, id := range s.readyQueue {
		snap.Ready = append(snap.Ready, s.byID[id].def.Name)
	}
	for _, id := range s.order {
		if s.completed[id] {
			snap.Completed = append(snap.Completed, s.byID[id].def.Name)
		}
		snap.Remaining[id] = s.byID[id].remaining
	}
	return snap
}
