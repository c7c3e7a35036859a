package main

import (
	"fmt"
	"strings"

	"github.com/Dygear/pitwall/internal/aggregate"
)

// render prints a tabular leaderboard snapshot to stdout after every
// lap-packet fold (spec.md §1: "emits a tabular leaderboard suitable
// for a terminal"; the terminal renderer's screen-clear/colour styling
// is an explicit Non-goal, so this is a plain, uncoloured table).
func render(session *aggregate.Session) {
	var b strings.Builder
	fmt.Fprintf(&b, "POS  DRIVER  LAP  S1      S2      S3      LAST\n")
	for pos := 1; pos < len(session.Positions); pos++ {
		idx := session.Positions[pos]
		if idx < 0 {
			continue
		}
		row := &session.Cars[idx]
		fmt.Fprintf(&b, "%3d  %-6d  %3d  %6d  %6d  %6d  %6d\n",
			pos, row.RaceNumber, row.CurrentLapNum,
			row.Sector1.InMS, row.Sector2.InMS, row.Sector3.InMS, row.LastLap.InMS)
	}
	fmt.Print(b.String())
}
