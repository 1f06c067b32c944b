package ais

// Not-available defaults for the optional type 1 fields.
const (
	TrueHeadingNotAvailable = 511
	TimestampNotAvailable   = 60
)

// PositionReport is an AIS message type 1 payload (Position Report Class A).
// Armored payload example: 133m@ogP00PD;88MD5MTDww@2D7k
type PositionReport struct {
	MMSI        int
	NavStatus   int
	Speed       float64 // knots
	Lon         float64 // decimal degrees, east positive
	Lat         float64 // decimal degrees, north positive
	Course      float64 // degrees
	TrueHeading int     // degrees, 511 when not available
	Timestamp   int     // UTC second, 60 when not available
}

// BitLength returns the declared type 1 payload length.
func (m PositionReport) BitLength() int { return PositionReportBits }

// PayloadBits assembles the 168-bit payload in the field order fixed by
// ITU-R M.1371. Constant fields carry the values listed in constants.go.
func (m PositionReport) PayloadBits() (string, error) {
	var b payloadBuilder
	b.uint("msg_type", msgTypePositionReport, lenMsgType)
	b.uint("repeat_indicator", 0, lenRepeat)
	b.uint("mmsi", int64(m.MMSI), lenMMSI)
	b.uint("nav_status", int64(m.NavStatus), lenNavStatus)
	b.uint("rot", constROT, lenROT)
	b.raw(encodeTenth("speed", m.Speed, lenSpeed))
	b.uint("pos_accuracy", constPosAccuracy, lenPosAccuracy)
	b.raw(encodeLon(m.Lon))
	b.raw(encodeLat(m.Lat))
	b.raw(encodeTenth("course", m.Course, lenCourse))
	b.uint("true_heading", int64(m.TrueHeading), lenTrueHeading)
	b.uint("timestamp", int64(m.Timestamp), lenTimestamp)
	b.uint("maneuver", constManeuver, lenManeuver)
	b.uint("spare", constSpareType1, lenSpareType1)
	b.uint("raim", constRAIM, lenRAIM)
	b.uint("radio_status", constRadioStatus, lenRadioStatus)
	return b.bits()
}
