package app

import "time"

// Default emission settings
const (
	DefaultChannel     = "A"
	DefaultInterval    = 10 * time.Second
	DefaultStaticEvery = 6 // static/voyage data every N position cycles
)

// Config holds application configuration
type Config struct {
	TrackFile   string
	Channel     string
	Interval    time.Duration
	StaticEvery int
	Cycles      int // 0 keeps emitting until interrupted
	UDPTarget   string
	Verbose     bool
	ShowVersion bool
}
