// internal/status/record.go
package status

// Record is one cycle's view of the remote service.
// It contains no logic and no memory of the past beyond current state.
//
// Invariant: when Failed is true, OnlineCount is 0 and Names is empty;
// no other field is trusted.
type Record struct {
	Failed      bool
	OnlineCount int
	Names       []string
}

// Failure returns the canonical failed record for a cycle.
func Failure() Record {
	return Record{Failed: true}
}
