// Package tsp - progress events for constructors and the improver.
//
// Every algorithm reports through Options.Observer after it applied a change:
// an accepted or closing greedy edge, a visited or inserted city, a 2-opt
// reversal. Observers run synchronously and must not retain Event.Order.
package tsp

// EventKind identifies a progress event.
type EventKind uint8

const (
	// EdgeAccepted: Greedy accepted the edge From–To during its sweep.
	EdgeAccepted EventKind = iota + 1
	// EdgeClosed: Greedy joined the two degree-1 ends From–To to close the cycle.
	EdgeClosed
	// CityVisited: NearestNeighbor moved from city From to city To.
	CityVisited
	// CityInserted: NearestInsertion inserted city To right after city From.
	CityInserted
	// SegmentReversed: TwoOpt reversed route positions From..To (inclusive).
	SegmentReversed
)

var eventKindNames = [...]string{
	EdgeAccepted:    "edge-accepted",
	EdgeClosed:      "edge-closed",
	CityVisited:     "city-visited",
	CityInserted:    "city-inserted",
	SegmentReversed: "segment-reversed",
}

// String returns a short kebab-case name.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && eventKindNames[k] != "" {
		return eventKindNames[k]
	}

	return "unknown"
}

// Event is delivered to an Observer after the change it describes was applied.
type Event struct {
	Kind EventKind

	// Iteration is the 0-based 2-opt iteration for SegmentReversed, and the
	// 0-based step counter of the constructor otherwise.
	Iteration uint64

	// From and To are city indices for constructor events and route positions
	// for SegmentReversed.
	From int
	To   int

	// Order is the current open visiting order as city indices. It is nil for
	// Greedy events (no order exists until stitching) and for TwoOpt runs on
	// routes without indices. The slice is owned by the algorithm: read it
	// during Observe only.
	Order []int
}

// Observer receives progress events. Observe runs synchronously on the
// algorithm's goroutine, so a slow observer slows the algorithm down.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// notify forwards e to obs when one is configured.
func notify(obs Observer, e Event) {
	if obs != nil {
		obs.Observe(e)
	}
}
