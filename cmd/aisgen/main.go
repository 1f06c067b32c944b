package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MortadhaDAHMANI/NMEA-AIS-Generator/internal/app"
)

func main() {
	var config app.Config

	rootCmd := &cobra.Command{
		Use:   "aisgen",
		Short: "AIS track generator (AIVDM encoder)",
		Long: `AIS track generator.

Loads vessel tracks from a JSON file, encodes them as AIS position report
(type 1) and static/voyage data (type 5) binary payloads, armors the payloads
into printable six-bit characters, and emits checksummed NMEA 0183 AIVDM
sentences to stdout and optionally a UDP destination.

Example usage:
  aisgen --tracks tracks.json --channel A --interval 10s --udp 127.0.0.1:10110`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ShowVersion {
				app.ShowVersion()
				return nil
			}

			application := app.NewApplication(config)
			return application.Start()
		},
	}

	rootCmd.Flags().StringVarP(&config.TrackFile, "tracks", "t", "tracks.json", "Track file (JSON)")
	rootCmd.Flags().StringVarP(&config.Channel, "channel", "c", app.DefaultChannel, "AIS channel designator (A or B)")
	rootCmd.Flags().DurationVarP(&config.Interval, "interval", "i", app.DefaultInterval, "Position report interval")
	rootCmd.Flags().IntVar(&config.StaticEvery, "static-every", app.DefaultStaticEvery, "Emit static/voyage data every N cycles (0 disables)")
	rootCmd.Flags().IntVarP(&config.Cycles, "cycles", "n", 0, "Number of emission cycles (0 runs until interrupted)")
	rootCmd.Flags().StringVarP(&config.UDPTarget, "udp", "u", "", "Optional UDP destination (host:port)")
	rootCmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().BoolVar(&config.ShowVersion, "version", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
