package aggregate

import "github.com/Dygear/pitwall/internal/codec"

// Fold applies one decoded lap packet to the session, implementing the
// full lap-packet fold of spec.md §4.4: position table rebuild,
// formation-lap filter, leader-lap advancement, sector-transition
// detection with sector-3 derivation, and persistence of race state.
func Fold(session *Session, lap *codec.LapPacket) {
	session.PlayerCarIdx = lap.Header.PlayerCarIndex

	for idx := 0; idx < codec.MaxCars; idx++ {
		slot := &lap.Cars[idx]
		row := &session.Cars[idx]

		// 1. Position table. pos == 0 means the slot is empty; anything
		// beyond the grid size is a malformed value and ignored rather
		// than trusted (spec.md §7: semantic-invalid fields are "not
		// applicable", never a crash).
		if pos := slot.CarPosition; pos != 0 && int(pos) < maxPositions {
			session.Positions[pos] = idx
		}

		// 3. Leader lap, tracked regardless of the formation filter below.
		if slot.CurrentLapNum > session.LeaderLap {
			session.LeaderLap = slot.CurrentLapNum
		}

		// 6 (partial). Race state is persisted even on the formation lap.
		row.GridPosition = slot.GridPosition
		row.RacePosition = slot.CarPosition
		row.NumPitStops = slot.NumPitStops
		row.DriverStatus = slot.DriverStatus
		row.currentLapTimeMS = slot.CurrentLapTimeInMS

		// 2. Formation filter: skip all timing work pre-start-line.
		if slot.LapDistance < 0 {
			row.CurrentLapNum = slot.CurrentLapNum
			continue
		}

		foldSectorTransition(session, idx, slot)
		// The lap number is persisted after the transition check, which
		// compares the packet's lap number with the row's previous one.
		row.CurrentLapNum = slot.CurrentLapNum
	}
}

// foldSectorTransition implements spec.md §4.4 step 5: detect a change
// in the packet's reported sector relative to the car's last-seen
// sector, latch the split that just closed, and begin live-updating the
// next one. A stored sector equal to the incoming one is not a
// transition — only the running estimate and persisted sector index are
// refreshed.
func foldSectorTransition(session *Session, idx int, slot *codec.Lap) {
	row := &session.Cars[idx]
	prevSector := row.Sector
	newSector := slot.Sector
	if newSector > 2 {
		// Unreachable per spec.md §3 invariant for a sane feed; treat
		// as a no-op rather than trust an out-of-range wire value.
		return
	}

	if newSector == prevSector {
		row.Current.InMS = liveSectorEstimate(row, slot)
		row.Current.IsSet = true
		return
	}

	// Out-of-order tolerance (spec.md §5, §9 open question): only latch
	// a transition when the packet's lap number is self-consistent with
	// what we've already recorded, so a reordered 1 → 0 → 1 bounce
	// doesn't double-latch a sector split.
	if !lapNumberConsistent(row, prevSector, newSector, slot.CurrentLapNum) {
		row.Sector = newSector
		return
	}

	driverIdx := uint8(idx)
	switch newSector {
	case 0:
		// Previous lap just completed; derive sector 3.
		s3 := uint32(0)
		if slot.LastLapTimeInMS >= row.Sector1.InMS+row.Sector2.InMS {
			s3 = slot.LastLapTimeInMS - (row.Sector1.InMS + row.Sector2.InMS)
		}
		classify(session, Sector3, s3, driverIdx, slot.CurrentLapNum, &row.Sector3)
		classify(session, Lap, slot.LastLapTimeInMS, driverIdx, slot.CurrentLapNum, &row.LastLap)

		row.Current.InMS = slot.CurrentLapTimeInMS
		row.Current.IsSet = true

	case 1:
		// Sector 1 just closed; the canonical split is on the wire.
		classify(session, Sector1, uint32(slot.Sector1TimeInMS), driverIdx, slot.CurrentLapNum, &row.Sector1)

		if slot.CurrentLapTimeInMS >= uint32(slot.Sector1TimeInMS) {
			row.Current.InMS = slot.CurrentLapTimeInMS - uint32(slot.Sector1TimeInMS)
			row.Current.IsSet = true
		}

	case 2:
		// Sector 2 just closed; the canonical split is on the wire.
		classify(session, Sector2, uint32(slot.Sector2TimeInMS), driverIdx, slot.CurrentLapNum, &row.Sector2)

		base := uint32(slot.Sector1TimeInMS) + uint32(slot.Sector2TimeInMS)
		if slot.CurrentLapTimeInMS >= base {
			row.Current.InMS = slot.CurrentLapTimeInMS - base
			row.Current.IsSet = true
		}
	}

	row.Sector = newSector
	recomputeTheoreticalLap(row)
}

// liveSectorEstimate refreshes the not-yet-closed current sector's
// running estimate without classifying anything.
func liveSectorEstimate(row *CarRow, slot *codec.Lap) uint32 {
	switch row.Sector {
	case 0:
		return slot.CurrentLapTimeInMS
	case 1:
		if slot.CurrentLapTimeInMS >= row.Sector1.InMS {
			return slot.CurrentLapTimeInMS - row.Sector1.InMS
		}
	case 2:
		base := row.Sector1.InMS + row.Sector2.InMS
		if slot.CurrentLapTimeInMS >= base {
			return slot.CurrentLapTimeInMS - base
		}
	}
	return row.Current.InMS
}

// lapNumberConsistent guards against latching a spurious transition
// caused by UDP reordering: a forward transition (prev+1, or 2 → 0
// rollover) is always trusted. A backward jump (e.g. a stale sector-0
// packet arriving after sector 1) is only trusted if the packet's lap
// number is past the one this row already holds; a skip ahead within a
// lap (0 → 2) only if the lap number matches it, per the robustness note
// in spec.md §9. row.CurrentLapNum still holds the previous packet's lap.
func lapNumberConsistent(row *CarRow, prevSector, newSector, packetLapNum uint8) bool {
	forward := (newSector == prevSector+1) || (prevSector == 2 && newSector == 0)
	if forward {
		return true
	}
	if newSector < prevSector {
		return packetLapNum > row.CurrentLapNum
	}
	return packetLapNum == row.CurrentLapNum
}

// recomputeTheoreticalLap updates a car row's own theoretical-best (sum
// of its three fastest sectors ever recorded), mirroring the session
// overall-best computation at the per-driver level.
func recomputeTheoreticalLap(row *CarRow) {
	if !row.Sector1.IsSet || !row.Sector2.IsSet || !row.Sector3.IsSet {
		return
	}
	sum := row.Sector1.InMS + row.Sector2.InMS + row.Sector3.InMS
	if row.TheoreticalMS == 0 || sum < row.TheoreticalMS {
		row.TheoreticalMS = sum
	}
}

// HandleEvent applies a decoded event to the session. Only "SSTA"
// mutates core state (spec.md §4.6); other tags are carried for
// upstream consumers and are no-ops here.
func HandleEvent(session *Session, ev codec.Event) {
	if _, ok := ev.(codec.SessionStarted); ok {
		session.Reset()
	}
}
