package aggregate

import "github.com/Dygear/pitwall/internal/codec"

// maxPositions is one more than MaxCars: positions are 1-based in the
// wire format, so slot 0 is permanently unused (spec.md §3 invariant).
const maxPositions = codec.MaxCars + 1

// Session is the process-wide aggregate, reset whenever an "SSTA" event
// is observed (spec.md §3 "Session", §4.6).
type Session struct {
	ActiveCars   uint8
	PlayerCarIdx uint8
	SessionKind  codec.SessionKind
	LeaderLap    uint8
	Positions    [maxPositions]int // positions[pos] = car slot index; -1 = empty
	OverallBest  Bests
	Cars         [codec.MaxCars]CarRow
}

// NewSession returns a freshly initialized, empty session.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset re-initializes the entire aggregate to defaults: positions
// cleared to "empty", all car rows defaulted, overall_best zeroed.
// Per the Open Question decision recorded in DESIGN.md, each car's
// personal-best record is cleared too, for symmetry with overall_best.
func (s *Session) Reset() {
	s.ActiveCars = 0
	s.PlayerCarIdx = 0
	s.SessionKind = 0
	s.LeaderLap = 0
	for i := range s.Positions {
		s.Positions[i] = -1
	}
	s.OverallBest.reset()
	for i := range s.Cars {
		s.Cars[i].reset()
	}
}
