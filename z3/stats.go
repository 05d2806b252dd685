package z3

// #include "go-z3.h"
import "C"

import "strconv"

// Stats holds the statistics of the last check.
type Stats struct {
	ctx      *Context
	rawStats C.Z3_stats
}

// StatEntry is one statistic. Exactly one of Uint and Double is meaningful,
// as told by IsUint.
type StatEntry struct {
	Key    string
	IsUint bool
	Uint   uint32
	Double float64
}

// Value renders the entry's value as text.
func (e StatEntry) Value() string {
	if e.IsUint {
		return strconv.FormatUint(uint64(e.Uint), 10)
	}
	return strconv.FormatFloat(e.Double, 'g', -1, 64)
}

func newStats(ctx *Context, raw C.Z3_stats) *Stats {
	if raw == nil {
		fatalf("engine returned null statistics: %s", ctx.errorMessage())
	}
	ctx.retain()
	C.Z3_stats_inc_ref(ctx.raw, raw)
	return &Stats{ctx: ctx, rawStats: raw}
}

func (s *Stats) live() C.Z3_stats {
	if s.rawStats == nil {
		fatalf("statistics used after Close")
	}
	return s.rawStats
}

func (s *Stats) Close() error {
	if s.rawStats == nil {
		return nil
	}
	C.Z3_stats_dec_ref(s.ctx.raw, s.rawStats)
	s.rawStats = nil
	s.ctx.release()
	return nil
}

func (s *Stats) Size() int {
	return int(C.Z3_stats_size(s.ctx.live(), s.live()))
}

func (s *Stats) index(i int) C.uint {
	if i < 0 || i >= s.Size() {
		fatalf("statistics index %d out of range", i)
	}
	return C.uint(i)
}

func (s *Stats) Key(i int) string {
	return C.GoString(C.Z3_stats_get_key(s.ctx.live(), s.live(), s.index(i)))
}

func (s *Stats) IsUint(i int) bool {
	return bool(C.Z3_stats_is_uint(s.ctx.live(), s.live(), s.index(i)))
}

// UintValue returns entry i. ok is false if the entry is a double.
func (s *Stats) UintValue(i int) (uint32, bool) {
	if !s.IsUint(i) {
		return 0, false
	}
	return uint32(C.Z3_stats_get_uint_value(s.ctx.raw, s.rawStats, C.uint(i))), true
}

// DoubleValue returns entry i. ok is false if the entry is an integer.
func (s *Stats) DoubleValue(i int) (float64, bool) {
	if !bool(C.Z3_stats_is_double(s.ctx.live(), s.live(), s.index(i))) {
		return 0, false
	}
	return float64(C.Z3_stats_get_double_value(s.ctx.raw, s.rawStats, C.uint(i))), true
}

// Entries returns every statistic in engine order.
func (s *Stats) Entries() []StatEntry {
	n := s.Size()
	entries := make([]StatEntry, 0, n)
	for i := 0; i < n; i++ {
		e := StatEntry{Key: s.Key(i)}
		if u, ok := s.UintValue(i); ok {
			e.IsUint = true
			e.Uint = u
		} else if d, ok := s.DoubleValue(i); ok {
			e.Double = d
		}
		entries = append(entries, e)
	}
	return entries
}

func (s *Stats) Text() (string, error) {
	return textOf(s.ctx, "statistics", C.Z3_stats_to_string(s.ctx.live(), s.live()))
}

func (s *Stats) String() string {
	return stringOf(s.Text())
}
