package aggregate

// classify runs one completed sector or lap time through the
// bests engine (spec.md §4.5). timeMS == 0 is the formation-lap guard:
// never latched. driverRecord is the reporting driver's own TimeRecord
// for the same period (sector1/2/3 or lastLap on the CarRow). When the
// overall best moves, the previous holder's row loses its IsOB flag.
func classify(session *Session, period Period, timeMS uint32, driverIdx, lapNum uint8, driverRecord *TimeRecord) {
	if timeMS == 0 {
		return
	}

	overall := session.OverallBest.recordFor(period)
	becameOB := false
	if overall.Better(timeMS) {
		if overall.IsSet && int(overall.DriverIdx) < len(session.Cars) {
			prev := &session.Cars[overall.DriverIdx]
			switch period {
			case Sector1:
				prev.Sector1.IsOB = false
			case Sector2:
				prev.Sector2.IsOB = false
			case Sector3:
				prev.Sector3.IsOB = false
			default:
				prev.LastLap.IsOB = false
			}
		}
		overall.latch(timeMS, driverIdx, lapNum)
		overall.IsOB = true
		becameOB = true
	}

	if driverRecord.Better(timeMS) {
		driverRecord.latch(timeMS, driverIdx, lapNum)
		driverRecord.IsPB = true
	}
	if becameOB {
		driverRecord.IsOB = true
	}

	if period != Lap && becameOB {
		session.OverallBest.recomputeTheoretical()
	}
}
