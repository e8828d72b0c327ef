package fasting

import "time"

// Protocol is a named fasting pattern with a standard planned duration.
type Protocol string

const (
	Protocol168    Protocol = "16:8"
	Protocol186    Protocol = "18:6"
	Protocol204    Protocol = "20:4"
	ProtocolOMAD   Protocol = "omad"
	ProtocolAltDay Protocol = "alternate-day"
	Protocol24H    Protocol = "24h"
	Protocol36H    Protocol = "36h"
	Protocol48H    Protocol = "48h"
	ProtocolCustom Protocol = "custom"
)

// durations maps each protocol to its standard fasting window. Custom
// protocols have no standard duration and must supply their own.
var durations = map[Protocol]time.Duration{
	Protocol168:    16 * time.Hour,
	Protocol186:    18 * time.Hour,
	Protocol204:    20 * time.Hour,
	ProtocolOMAD:   23 * time.Hour,
	ProtocolAltDay: 36 * time.Hour,
	Protocol24H:    24 * time.Hour,
	Protocol36H:    36 * time.Hour,
	Protocol48H:    48 * time.Hour,
}

// Protocols lists all the fasting protocols in ascending order of their
// standard duration, with custom last.
var Protocols = []Protocol{
	Protocol168,
	Protocol186,
	Protocol204,
	ProtocolOMAD,
	Protocol24H,
	ProtocolAltDay,
	Protocol36H,
	Protocol48H,
	ProtocolCustom,
}

// Duration returns the standard planned duration for p, or zero if p
// has none.
func (p Protocol) Duration() time.Duration {
	return durations[p]
}

// Valid reports whether p is a known fasting protocol.
func (p Protocol) Valid() bool {
	if p == ProtocolCustom {
		return true
	}

	_, ok := durations[p]

	return ok
}
