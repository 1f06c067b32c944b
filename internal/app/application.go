package app

import (
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MortadhaDAHMANI/NMEA-AIS-Generator/internal/ais"
	"github.com/MortadhaDAHMANI/NMEA-AIS-Generator/internal/track"
)

// Application wires track loading, encoding and sentence emission together
type Application struct {
	config Config
	logger *logrus.Logger
	tracks []track.Track
	out    io.Writer
	udp    net.Conn

	cyclesRun     int
	sentencesSent int
}

// NewApplication creates a new application instance
func NewApplication(config Config) *Application {
	logger := logrus.New()
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Application{
		config: config,
		logger: logger,
		out:    os.Stdout,
	}
}

// Start loads the track file and emits AIVDM sentences until the configured
// cycle count is reached or a shutdown signal arrives.
func (app *Application) Start() error {
	app.logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("Starting AIS track generator")

	tracks, err := track.Load(app.config.TrackFile)
	if err != nil {
		return fmt.Errorf("failed to load tracks: %w", err)
	}
	app.tracks = tracks
	app.logger.WithField("tracks", len(tracks)).Info("Loaded track file")

	if app.config.UDPTarget != "" {
		addr, err := net.ResolveUDPAddr("udp", app.config.UDPTarget)
		if err != nil {
			return fmt.Errorf("failed to resolve UDP target: %w", err)
		}
		conn, err := net.DialUDP("udp", nil, addr)
		if err != nil {
			return fmt.Errorf("failed to dial UDP target: %w", err)
		}
		app.udp = conn
		defer conn.Close()
		app.logger.WithField("target", app.config.UDPTarget).Info("Forwarding sentences over UDP")
	}

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(app.config.Interval)
	defer ticker.Stop()

	app.emitCycle()
	for app.config.Cycles == 0 || app.cyclesRun < app.config.Cycles {
		select {
		case <-sigChan:
			app.logger.Info("Received shutdown signal")
			app.logStats()
			return nil
		case <-ticker.C:
			app.emitCycle()
		}
	}

	app.logStats()
	return nil
}

// emitCycle encodes one round of messages for every track. Static/voyage
// data goes out on the first cycle and then every StaticEvery cycles,
// mirroring the slower cadence of type 5 transmissions.
func (app *Application) emitCycle() {
	withStatic := app.config.StaticEvery > 0 && app.cyclesRun%app.config.StaticEvery == 0
	for i := range app.tracks {
		t := &app.tracks[i]
		app.emit(t.PositionReport(), t.MMSI)
		if withStatic {
			app.emit(t.StaticVoyage(), t.MMSI)
		}
	}
	app.cyclesRun++

	app.logger.WithFields(logrus.Fields{
		"cycle":     app.cyclesRun,
		"sentences": app.sentencesSent,
	}).Debug("Cycle complete")
}

// emit frames one message and writes its sentences to every output.
func (app *Application) emit(msg ais.Message, mmsi int) {
	sentences, err := ais.Sentences(msg, app.config.Channel)
	if err != nil {
		app.logger.WithError(err).WithField("mmsi", mmsi).Error("Failed to encode message")
		return
	}

	for _, s := range sentences {
		if _, err := io.WriteString(app.out, s); err != nil {
			app.logger.WithError(err).Warn("Write failed")
		}
		if app.udp != nil {
			if _, err := app.udp.Write([]byte(s)); err != nil {
				app.logger.WithError(err).Warn("UDP write failed")
			}
		}
		app.sentencesSent++
	}
}

func (app *Application) logStats() {
	app.logger.WithFields(logrus.Fields{
		"cycles":    app.cyclesRun,
		"sentences": app.sentencesSent,
	}).Info("Emission finished")
}
