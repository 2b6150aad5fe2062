package counter

import (
	"docnum/internal/content"
	"docnum/internal/numbering"
)

// Location is an element's position in document order. The compiler assigns
// locations as a dense sequence during the synthesis pass; counters replay
// their history up to a location to answer queries.
type Location int

// UpdateKind discriminates counter updates.
type UpdateKind int

const (
	// StepUpdate increments one level and zeroes everything deeper.
	StepUpdate UpdateKind = iota
	// SetUpdate replaces the whole value vector.
	SetUpdate
)

// Update is a single recorded change to a counter.
type Update struct {
	Kind  UpdateKind
	Level int   // 1-based, StepUpdate only
	Value []int // SetUpdate only
}

type entry struct {
	loc Location
	upd Update
}

// Log holds the update histories of all counters in a compilation, keyed by
// counter identity (element kind or a user-chosen key). Histories are
// append-only and recorded in document order.
type Log struct {
	counters map[string][]entry
}

// NewLog returns an empty counter log.
func NewLog() *Log {
	return &Log{counters: make(map[string][]entry)}
}

// For returns a handle to the counter with the given key, creating its
// history implicitly on first use.
func (l *Log) For(key string) Counter {
	return Counter{key: key, log: l}
}

func (l *Log) record(key string, loc Location, upd Update) {
	l.counters[key] = append(l.counters[key], entry{loc: loc, upd: upd})
}

// Counter is a keyed view into a Log. The zero value is not usable; obtain
// counters through Log.For.
type Counter struct {
	key string
	log *Log
}

// Key returns the counter's identity.
func (c Counter) Key() string { return c.key }

// Step records a step of the given 1-based level at loc.
func (c Counter) Step(loc Location, level int) {
	if level < 1 {
		level = 1
	}
	c.log.record(c.key, loc, Update{Kind: StepUpdate, Level: level})
}

// Set records a replacement of the value vector at loc.
func (c Counter) Set(loc Location, value []int) {
	v := make([]int, len(value))
	copy(v, value)
	c.log.record(c.key, loc, Update{Kind: SetUpdate, Value: v})
}

// ValueAt replays the counter's history up to and including loc and returns
// the per-level value vector with trailing zero levels trimmed. A counter
// with no preceding updates yields the zero (empty) vector.
func (c Counter) ValueAt(loc Location) []int {
	var value []int
	for _, e := range c.log.counters[c.key] {
		if e.loc > loc {
			break
		}
		value = apply(value, e.upd)
	}
	return trim(value)
}

// Display formats ValueAt(loc) through the given numbering. With reversed
// set, the vector is rendered deepest level first.
func (c Counter) Display(loc Location, n *numbering.Numbering, reversed bool) content.Content {
	value := c.ValueAt(loc)
	if reversed {
		for i, j := 0, len(value)-1; i < j; i, j = i+1, j-1 {
			value[i], value[j] = value[j], value[i]
		}
	}
	return n.Apply(value)
}

func apply(value []int, upd Update) []int {
	switch upd.Kind {
	case StepUpdate:
		for len(value) < upd.Level {
			value = append(value, 0)
		}
		value[upd.Level-1]++
		for i := upd.Level; i < len(value); i++ {
			value[i] = 0
		}
	case SetUpdate:
		value = append(value[:0:0], upd.Value...)
	}
	return value
}

func trim(value []int) []int {
	end := len(value)
	for end > 0 && value[end-1] == 0 {
		end--
	}
	return value[:end]
}
