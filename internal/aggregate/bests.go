package aggregate

// Bests is the session-wide overall-best record: sector1/sector2/sector3
// and lap-time TimeRecords plus the derived theoretical-best "possible"
// lap. Per spec.md §9 this is the authoritative source; per-row isOB/isPB
// flags are a presentational convenience derived alongside it.
type Bests struct {
	Sector1  TimeRecord
	Sector2  TimeRecord
	Sector3  TimeRecord
	LapTime  TimeRecord
	Possible uint32
}

func (b *Bests) reset() {
	*b = Bests{}
}

func (b *Bests) recordFor(period Period) *TimeRecord {
	switch period {
	case Sector1:
		return &b.Sector1
	case Sector2:
		return &b.Sector2
	case Sector3:
		return &b.Sector3
	default:
		return &b.LapTime
	}
}

// recomputeTheoretical sums the three overall-best sectors once all are
// set, and commits only if the sum improves on the previous value or no
// value was ever set — the monotonic non-worsening guarantee of
// spec.md §4.5 and testable property 3.
func (b *Bests) recomputeTheoretical() {
	if !b.Sector1.IsSet || !b.Sector2.IsSet || !b.Sector3.IsSet {
		return
	}
	sum := b.Sector1.InMS + b.Sector2.InMS + b.Sector3.InMS
	if b.Possible == 0 || sum < b.Possible {
		b.Possible = sum
	}
}
