// Command pitwall receives the UDP telemetry feed from a racing
// simulator and displays a live timing-and-scoring leaderboard.
//
// Usage:
//
//	pitwall [--port 20777]
package main

import (
	"net"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Dygear/pitwall/internal/aggregate"
	"github.com/Dygear/pitwall/internal/codec"
	"github.com/Dygear/pitwall/internal/wire"
)

// readBufferSize comfortably covers the largest defined packet (the
// older-layout motion packet: header + 22 car-motion records + the
// player-only block, 1464 bytes, under spec.md §5's 1500-byte bound).
const readBufferSize = 2 * 1024

type options struct {
	Port int `short:"p" long:"port" description:"UDP port to listen on" default:"20777"`
}

var description = `Decodes the racing-simulator UDP telemetry feed and prints a live
timing-and-scoring leaderboard. The socket bind/receive loop, this
entrypoint's CLI, and its logging are external to the codec and
aggregation engine, which own no I/O of their own.`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true, TimeFormat: zerolog.TimeFieldFormat})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "pitwall"
	parser.LongDescription = description

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	addr, err := net.ResolveUDPAddr("udp", "0.0.0.0:"+strconv.Itoa(opts.Port))
	if err != nil {
		log.Fatal().Int(Code, ErrorAddressNotResolved).Msgf("could not resolve UDP address: %v", err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		log.Fatal().Int(Code, ErrorSetupUDPConnection).Msgf("could not bind UDP socket: %v", err)
	}
	defer conn.Close()

	log.Info().Msgf("listening on %s", addr)
	run(conn)
}

// run owns the session aggregate exclusively; there is no cross-task
// sharing and no locking (spec.md §5). The receive call blocks
// indefinitely — there is deliberately no read deadline here, unlike
// the teacher's timeout-based listen(), per spec.md §5's "no per-packet
// timeout; the receive call blocks indefinitely on idle."
func run(conn *net.UDPConn) {
	session := aggregate.NewSession()
	var buf [readBufferSize]byte

	for {
		n, _, err := conn.ReadFromUDP(buf[:])
		if err != nil {
			log.Error().Msgf("UDP read error: %v", err)
			continue
		}

		datagram := buf[:n]
		if len(datagram) < wire.HeaderSize {
			log.Debug().Int(Code, ErrorTruncatedHeader).Msg("datagram shorter than the packet header")
			continue
		}

		pkt := codec.Dispatch(datagram)
		if !pkt.Known {
			log.Debug().Msgf("discarding packet id %d: unrecognized id or truncated payload", uint8(pkt.ID))
			continue
		}

		switch {
		case pkt.Lap != nil:
			aggregate.Fold(session, pkt.Lap)
			render(session)
		case pkt.Participants != nil:
			aggregate.ApplyParticipants(session, pkt.Participants)
		case pkt.CarTelemetry != nil:
			aggregate.ApplyCarTelemetry(session, pkt.CarTelemetry)
		case pkt.CarStatus != nil:
			aggregate.ApplyCarStatus(session, pkt.CarStatus)
		case pkt.Session != nil:
			aggregate.ApplySession(session, pkt.Session)
		case pkt.Event != nil:
			aggregate.HandleEvent(session, pkt.Event)
		}
	}
}
