package scheduler

import "fmt"

// Algorithm enumerates the supported scheduling disciplines.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota
	ShortestJobFirst
	ShortestRemainingTime
	Priority
	HighestResponseRatio
	RoundRobin
)

var algorithmNames = map[Algorithm]string{
	FirstComeFirstServe:   "fcfs",
	ShortestJobFirst:      "sjf",
	ShortestRemainingTime: "srt",
	Priority:              "priority",
	HighestResponseRatio:  "hrn",
	RoundRobin:            "rr",
}

// Algorithms lists every discipline in a stable order, for "run all" style
// callers.
func Algorithms() []Algorithm {
	return []Algorithm{
		FirstComeFirstServe,
		ShortestJobFirst,
		ShortestRemainingTime,
		Priority,
		HighestResponseRatio,
		RoundRobin,
	}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Preemptive reports whether the discipline may displace a running process
// before its burst completes.
func (a Algorithm) Preemptive() bool {
	return a == ShortestRemainingTime || a == RoundRobin
}

func ParseAlgorithm(name string) (Algorithm, error) {
	for algo, n := range algorithmNames {
		if n == name {
			return algo, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}
