// Package track holds the simulated vessel records and the domain
// validation that runs before anything reaches the AIS codec. The codec
// assumes every value it receives has already passed these checks.
package track

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MortadhaDAHMANI/NMEA-AIS-Generator/internal/ais"
)

// Validation bounds. Speed tops out at the highest value the standard
// reports as an actual speed; 102.3 means not available.
const (
	maxSpeed  = 102.2
	maxCourse = 360
)

// ITU MID allocation range; the first three MMSI digits must fall inside it.
const (
	midMin = 201
	midMax = 775
)

// Dimension mirrors the ship dimension block of a track file entry.
type Dimension struct {
	ToBow       int `json:"to_bow"`
	ToStern     int `json:"to_stern"`
	ToPort      int `json:"to_port"`
	ToStarboard int `json:"to_starboard"`
}

// Eta mirrors the ETA block of a track file entry. Omitted sub-fields take
// the AIS not-available sentinels.
type Eta struct {
	Month  *int `json:"month"`
	Day    *int `json:"day"`
	Hour   *int `json:"hour"`
	Minute *int `json:"minute"`
}

// Track is one simulated vessel: everything needed to emit both its
// position report and its static/voyage data message.
type Track struct {
	MMSI        int     `json:"mmsi"`
	NavStatus   int     `json:"nav_status"`
	Lon         float64 `json:"lon"`
	Lat         float64 `json:"lat"`
	Speed       float64 `json:"speed"`
	Course      float64 `json:"course"`
	TrueHeading *int    `json:"true_heading,omitempty"`
	Timestamp   *int    `json:"timestamp,omitempty"`

	IMO         int        `json:"imo"`
	CallSign    string     `json:"call_sign"`
	ShipName    string     `json:"ship_name"`
	ShipType    int        `json:"ship_type"`
	Dimension   *Dimension `json:"dimension,omitempty"`
	Eta         *Eta       `json:"eta,omitempty"`
	Draught     float64    `json:"draught"`
	Destination string     `json:"destination"`
}

// Load reads a JSON array of tracks from path, normalizing and validating
// each entry.
func Load(path string) ([]Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tracks: %w", err)
	}
	tracks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tracks, nil
}

// Parse decodes and validates a JSON array of tracks.
func Parse(data []byte) ([]Track, error) {
	var tracks []Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("parse tracks: %w", err)
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("no tracks defined")
	}
	for i := range tracks {
		tracks[i].Normalize()
		if err := tracks[i].Validate(); err != nil {
			return nil, fmt.Errorf("track %d (mmsi %d): %w", i, tracks[i].MMSI, err)
		}
	}
	return tracks, nil
}

// Normalize truncates over-long text fields to their AIS field widths.
func (t *Track) Normalize() {
	t.CallSign = truncate(t.CallSign, ais.CallSignChars)
	t.ShipName = truncate(t.ShipName, ais.ShipNameChars)
	t.Destination = truncate(t.Destination, ais.DestinationChars)
}

// Validate checks every domain constraint the codec relies on.
func (t *Track) Validate() error {
	if err := validMMSI(t.MMSI); err != nil {
		return err
	}
	if t.NavStatus < 0 || t.NavStatus > 15 {
		return fmt.Errorf("nav_status %d: must be 0-15", t.NavStatus)
	}
	if t.Lon < -180 || t.Lon > 180 {
		return fmt.Errorf("lon %v: must be within -180 to 180", t.Lon)
	}
	if t.Lat < -90 || t.Lat > 90 {
		return fmt.Errorf("lat %v: must be within -90 to 90", t.Lat)
	}
	if t.Speed < 0 || t.Speed > maxSpeed {
		return fmt.Errorf("speed %v: must be within 0 to %v", t.Speed, maxSpeed)
	}
	if t.Course < 0 || t.Course > maxCourse {
		return fmt.Errorf("course %v: must be within 0 to %v", t.Course, maxCourse)
	}
	if t.TrueHeading != nil && (*t.TrueHeading < 0 || *t.TrueHeading > 511) {
		return fmt.Errorf("true_heading %d: must be 0-511", *t.TrueHeading)
	}
	if t.Timestamp != nil && (*t.Timestamp < 0 || *t.Timestamp > 60) {
		return fmt.Errorf("timestamp %d: must be 0-60", *t.Timestamp)
	}
	if err := validIMO(t.IMO); err != nil {
		return err
	}
	if t.ShipType < 0 || t.ShipType > 99 {
		return fmt.Errorf("ship_type %d: must be 0-99", t.ShipType)
	}
	if t.Draught < 0 {
		return fmt.Errorf("draught %v: must be 0 or greater", t.Draught)
	}
	for _, f := range []struct{ name, value string }{
		{"call_sign", t.CallSign},
		{"ship_name", t.ShipName},
		{"destination", t.Destination},
	} {
		if err := validText(f.name, f.value); err != nil {
			return err
		}
	}
	if t.Dimension != nil {
		if err := t.Dimension.validate(); err != nil {
			return err
		}
	}
	if t.Eta != nil {
		if err := t.Eta.validate(); err != nil {
			return err
		}
	}
	return nil
}

// PositionReport builds the codec message for this track, filling in the
// not-available defaults for omitted fields.
func (t *Track) PositionReport() ais.PositionReport {
	heading := ais.TrueHeadingNotAvailable
	if t.TrueHeading != nil {
		heading = *t.TrueHeading
	}
	timestamp := ais.TimestampNotAvailable
	if t.Timestamp != nil {
		timestamp = *t.Timestamp
	}
	return ais.PositionReport{
		MMSI:        t.MMSI,
		NavStatus:   t.NavStatus,
		Speed:       t.Speed,
		Lon:         t.Lon,
		Lat:         t.Lat,
		Course:      t.Course,
		TrueHeading: heading,
		Timestamp:   timestamp,
	}
}

// StaticVoyage builds the codec message for this track.
func (t *Track) StaticVoyage() ais.StaticVoyage {
	var dim ais.ShipDimension
	if t.Dimension != nil {
		dim = ais.ShipDimension{
			ToBow:       t.Dimension.ToBow,
			ToStern:     t.Dimension.ToStern,
			ToPort:      t.Dimension.ToPort,
			ToStarboard: t.Dimension.ToStarboard,
		}
	}
	eta := ais.DefaultShipEta()
	if t.Eta != nil {
		if t.Eta.Month != nil {
			eta.Month = *t.Eta.Month
		}
		if t.Eta.Day != nil {
			eta.Day = *t.Eta.Day
		}
		if t.Eta.Hour != nil {
			eta.Hour = *t.Eta.Hour
		}
		if t.Eta.Minute != nil {
			eta.Minute = *t.Eta.Minute
		}
	}
	return ais.StaticVoyage{
		MMSI:        t.MMSI,
		IMO:         t.IMO,
		CallSign:    t.CallSign,
		ShipName:    t.ShipName,
		ShipType:    t.ShipType,
		Dimension:   dim,
		Eta:         eta,
		Draught:     t.Draught,
		Destination: t.Destination,
	}
}

func (d *Dimension) validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"to_bow", d.ToBow},
		{"to_stern", d.ToStern},
		{"to_port", d.ToPort},
		{"to_starboard", d.ToStarboard},
	} {
		if f.value < 0 {
			return fmt.Errorf("dimension %s %d: must be 0 or greater", f.name, f.value)
		}
	}
	return nil
}

func (e *Eta) validate() error {
	for _, f := range []struct {
		name  string
		value *int
		max   int
	}{
		{"month", e.Month, 12},
		{"day", e.Day, 31},
		{"hour", e.Hour, 24},
		{"minute", e.Minute, 60},
	} {
		if f.value == nil {
			continue
		}
		if *f.value < 0 || *f.value > f.max {
			return fmt.Errorf("eta %s %d: must be 0-%d", f.name, *f.value, f.max)
		}
	}
	return nil
}

// validMMSI requires nine digits starting with an allocated MID prefix.
func validMMSI(mmsi int) error {
	if mmsi < 100000000 || mmsi > 999999999 {
		return fmt.Errorf("mmsi %d: must be 9 digits", mmsi)
	}
	mid := mmsi / 1000000
	if mid < midMin || mid > midMax {
		return fmt.Errorf("mmsi %d: invalid MID %d", mmsi, mid)
	}
	return nil
}

// validIMO requires seven digits where the last is the weighted check digit.
func validIMO(imo int) error {
	if imo < 1000000 || imo > 9999999 {
		return fmt.Errorf("imo %d: must be 7 digits", imo)
	}
	sum := 0
	n := imo / 10
	for weight := 2; weight <= 7; weight++ {
		sum += (n % 10) * weight
		n /= 10
	}
	if sum%10 != imo%10 {
		return fmt.Errorf("imo %d: check digit mismatch", imo)
	}
	return nil
}

// validText restricts a field to the uppercase six-bit ASCII alphabet.
func validText(name, s string) error {
	for i := 0; i < len(s); i++ {
		if _, err := ais.ASCII6(s[i]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
