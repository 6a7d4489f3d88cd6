// internal/roster/roster.go
package roster

import "errors"

// Color is the transition-aware display state of one slot, derived
// from its online flag across two consecutive cycles. JustJoined and
// JustLeft are edge markers: they show for exactly one cycle after the
// transition, then settle to SteadyPresent or Off.
type Color uint8

const (
	Off Color = iota
	JustJoined
	SteadyPresent
	JustLeft
)

func (c Color) String() string {
	switch c {
	case JustJoined:
		return "just-joined"
	case SteadyPresent:
		return "steady-present"
	case JustLeft:
		return "just-left"
	default:
		return "off"
	}
}

// slot tracks one identity's online history across cycles.
type slot struct {
	id        Identity
	wasOnline bool // state at the end of the previous cycle
	isOnline  bool // state being computed for the current cycle
}

// Roster owns the fixed set of tracked slots. It is constructed once
// at startup and mutated by exactly one cycle at a time; on a failed
// cycle it is not touched at all, so slot state stays frozen until the
// next successful reconcile.
type Roster struct {
	slots []slot
}

// New builds a roster from an ordered identity list. Order is
// significant: matching is first-match-wins in declaration order, so
// an earlier wildcard shadows a later specific name.
func New(ids []Identity) (*Roster, error) {
	if len(ids) == 0 {
		return nil, errors.New("roster: at least one slot required")
	}

	slots := make([]slot, len(ids))
	for i, id := range ids {
		slots[i] = slot{id: id}
	}
	return &Roster{slots: slots}, nil
}

// Size returns the number of tracked slots.
func (r *Roster) Size() int {
	return len(r.slots)
}

// Reconcile runs one successful cycle's presence update: clear every
// online flag, claim slots for the observed names, derive each slot's
// color from (wasOnline, isOnline), then commit isOnline into
// wasOnline so the next cycle sees the transition as steady state.
//
// A name matching no slot is silently unclaimed. Matching ignores
// claimed state: an already-online wildcard still claims later names.
func (r *Roster) Reconcile(names []string) []Color {
	for i := range r.slots {
		r.slots[i].isOnline = false
	}

	for _, name := range names {
		for i := range r.slots {
			if r.slots[i].id.Matches(name) {
				r.slots[i].isOnline = true
				break
			}
		}
	}

	colors := make([]Color, len(r.slots))
	for i := range r.slots {
		s := &r.slots[i]

		switch {
		case s.wasOnline && s.isOnline:
			colors[i] = SteadyPresent
		case s.wasOnline && !s.isOnline:
			colors[i] = JustLeft
		case !s.wasOnline && s.isOnline:
			colors[i] = JustJoined
		default:
			colors[i] = Off
		}

		s.wasOnline = s.isOnline
	}

	return colors
}
