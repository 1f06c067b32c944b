package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MortadhaDAHMANI/NMEA-AIS-Generator/internal/ais"
)

func intPtr(v int) *int { return &v }

func validTrack() Track {
	return Track{
		MMSI:        205344990,
		NavStatus:   15,
		Lon:         4.407046666667,
		Lat:         51.229636666667,
		Speed:       0,
		Course:      110.7,
		IMO:         9134270,
		CallSign:    "3FOF8",
		ShipName:    "EVER DIADEM",
		ShipType:    70,
		Dimension:   &Dimension{ToBow: 225, ToStern: 70, ToPort: 1, ToStarboard: 31},
		Eta:         &Eta{Month: intPtr(5), Day: intPtr(15), Hour: intPtr(14), Minute: intPtr(0)},
		Draught:     12.2,
		Destination: "NEW YORK",
	}
}

func TestValidateAccepts(t *testing.T) {
	tr := validTrack()
	assert.NoError(t, tr.Validate())
}

func TestValidateMMSI(t *testing.T) {
	tests := []struct {
		name  string
		mmsi  int
		valid bool
	}{
		{name: "reference", mmsi: 205344990, valid: true},
		{name: "polish MID", mmsi: 261000001, valid: true},
		{name: "unallocated MID", mmsi: 123000001, valid: false},
		{name: "eight digits", mmsi: 12300000, valid: false},
		{name: "ten digits", mmsi: 1230000000, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := validTrack()
			tr.MMSI = tt.mmsi
			err := tr.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateNavStatus(t *testing.T) {
	tr := validTrack()
	tr.NavStatus = 0
	assert.NoError(t, tr.Validate())
	tr.NavStatus = 30
	assert.Error(t, tr.Validate())
}

func TestValidatePositionBounds(t *testing.T) {
	for _, lon := range []float64{-180, -10, 0, 10, 180} {
		tr := validTrack()
		tr.Lon = lon
		assert.NoError(t, tr.Validate(), "lon %v", lon)
	}
	for _, lon := range []float64{-200, 200} {
		tr := validTrack()
		tr.Lon = lon
		assert.Error(t, tr.Validate(), "lon %v", lon)
	}
	for _, lat := range []float64{-90, -10, 0, 10, 90} {
		tr := validTrack()
		tr.Lat = lat
		assert.NoError(t, tr.Validate(), "lat %v", lat)
	}
	for _, lat := range []float64{-91, 92} {
		tr := validTrack()
		tr.Lat = lat
		assert.Error(t, tr.Validate(), "lat %v", lat)
	}
}

func TestValidateSpeedCourse(t *testing.T) {
	tr := validTrack()
	tr.Speed = 102.2
	assert.NoError(t, tr.Validate())
	tr.Speed = 105
	assert.Error(t, tr.Validate())
	tr.Speed = -1
	assert.Error(t, tr.Validate())

	tr = validTrack()
	tr.Course = 360
	assert.NoError(t, tr.Validate())
	tr.Course = 361
	assert.Error(t, tr.Validate())
	tr.Course = -1
	assert.Error(t, tr.Validate())
}

func TestValidateIMO(t *testing.T) {
	tr := validTrack()
	tr.IMO = 9134270
	assert.NoError(t, tr.Validate())

	tr.IMO = 91342 // too short
	assert.Error(t, tr.Validate())

	tr.IMO = 1234271 // bad check digit
	assert.Error(t, tr.Validate())
}

func TestValidateText(t *testing.T) {
	tr := validTrack()
	tr.CallSign = "sqWD"
	assert.Error(t, tr.Validate())

	tr = validTrack()
	tr.ShipName = "sToRM"
	assert.Error(t, tr.Validate())

	tr = validTrack()
	tr.Destination = "BOrNHOLM"
	assert.Error(t, tr.Validate())
}

func TestValidateShipTypeAndDraught(t *testing.T) {
	tr := validTrack()
	tr.ShipType = 0
	assert.NoError(t, tr.Validate())
	tr.ShipType = 100
	assert.Error(t, tr.Validate())

	tr = validTrack()
	tr.Draught = 30 // above ceiling is fine, the codec clamps
	assert.NoError(t, tr.Validate())
	tr.Draught = -1
	assert.Error(t, tr.Validate())
}

func TestNormalizeTruncates(t *testing.T) {
	tr := validTrack()
	tr.CallSign = "1234567890"
	tr.ShipName = "THE QUICK BROWN FOX JUMPS OVER"
	tr.Destination = "THE QUICK BROWN FOX JUMPS OVER"
	tr.Normalize()
	assert.Equal(t, "1234567", tr.CallSign)
	assert.Equal(t, "THE QUICK BROWN FOX ", tr.ShipName)
	assert.Equal(t, "THE QUICK BROWN FOX ", tr.Destination)
}

func TestPositionReportDefaults(t *testing.T) {
	tr := validTrack()
	msg := tr.PositionReport()
	assert.Equal(t, ais.TrueHeadingNotAvailable, msg.TrueHeading)
	assert.Equal(t, ais.TimestampNotAvailable, msg.Timestamp)

	tr.TrueHeading = intPtr(90)
	tr.Timestamp = intPtr(40)
	msg = tr.PositionReport()
	assert.Equal(t, 90, msg.TrueHeading)
	assert.Equal(t, 40, msg.Timestamp)
}

func TestStaticVoyageEtaDefaults(t *testing.T) {
	tr := validTrack()
	tr.Eta = &Eta{Month: intPtr(12), Day: intPtr(10)}
	msg := tr.StaticVoyage()
	assert.Equal(t, 12, msg.Eta.Month)
	assert.Equal(t, 10, msg.Eta.Day)
	assert.Equal(t, ais.EtaHourNotAvailable, msg.Eta.Hour)
	assert.Equal(t, ais.EtaMinuteNotAvailable, msg.Eta.Minute)

	tr.Eta = nil
	msg = tr.StaticVoyage()
	assert.Equal(t, ais.DefaultShipEta(), msg.Eta)
}

func TestParse(t *testing.T) {
	data := []byte(`[{
		"mmsi": 205344990,
		"nav_status": 15,
		"lon": 4.407046666667,
		"lat": 51.229636666667,
		"speed": 0,
		"course": 110.7,
		"imo": 9134270,
		"call_sign": "3FOF8",
		"ship_name": "EVER DIADEM",
		"ship_type": 70,
		"dimension": {"to_bow": 225, "to_stern": 70, "to_port": 1, "to_starboard": 31},
		"eta": {"month": 5, "day": 15, "hour": 14, "minute": 0},
		"draught": 12.2,
		"destination": "NEW YORK"
	}]`)

	tracks, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, 205344990, tracks[0].MMSI)
	assert.Equal(t, "EVER DIADEM", tracks[0].ShipName)
	require.NotNil(t, tracks[0].Eta)
	assert.Equal(t, 5, *tracks[0].Eta.Month)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte(`[{"mmsi": 1}]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{`))
	assert.Error(t, err)
}

func TestParseTruncatesLongStrings(t *testing.T) {
	data := []byte(`[{
		"mmsi": 205344990,
		"nav_status": 0,
		"lon": 0, "lat": 0, "speed": 0, "course": 0,
		"imo": 9134270,
		"call_sign": "1234567890",
		"ship_name": "THE QUICK BROWN FOX JUMPS OVER",
		"ship_type": 70,
		"draught": 0,
		"destination": "BORNHOLM"
	}]`)

	tracks, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "1234567", tracks[0].CallSign)
	assert.Equal(t, "THE QUICK BROWN FOX ", tracks[0].ShipName)
}

// The whole pipeline: parsed track through codec to framed sentences.
func TestTrackToSentences(t *testing.T) {
	tr := validTrack()
	tr.Timestamp = intPtr(40)
	require.NoError(t, tr.Validate())

	sentences, err := ais.Sentences(tr.PositionReport(), "A")
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Equal(t, "!AIVDM,1,1,,A,133m@ogP00PD;88MD5MTDww@2D7k,0*46\r\n", sentences[0])

	sentences, err = ais.Sentences(tr.StaticVoyage(), "A")
	require.NoError(t, err)
	assert.Len(t, sentences, 2)
}
