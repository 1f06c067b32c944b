package ais

// AIS message type identifiers for the two supported payloads.
const (
	msgTypePositionReport = 1
	msgTypeStaticVoyage   = 5
)

// Field bit widths per ITU-R M.1371.
const (
	lenMsgType     = 6
	lenRepeat      = 2
	lenMMSI        = 30
	lenNavStatus   = 4
	lenROT         = 8
	lenSpeed       = 10
	lenPosAccuracy = 1
	lenLon         = 28
	lenLat         = 27
	lenCourse      = 12
	lenTrueHeading = 9
	lenTimestamp   = 6
	lenManeuver    = 2
	lenSpareType1  = 3
	lenRAIM        = 1
	lenRadioStatus = 19

	lenAISVersion = 2
	lenIMO        = 30
	lenShipType   = 8
	lenPosFixType = 4
	lenDraught    = 8
	lenDTE        = 1
	lenSpareType5 = 1
)

// Character capacities of the fixed-width string fields.
const (
	CallSignChars    = 7
	ShipNameChars    = 20
	DestinationChars = 20
)

// Constant field values of the type 1 payload.
const (
	constROT         = 128 // rate of turn not available
	constPosAccuracy = 1
	constManeuver    = 0
	constSpareType1  = 0
	constRAIM        = 1
	constRadioStatus = 82419
)

// Constant field values of the type 5 payload.
const (
	constAISVersion = 2 // station compliant with ITU-R M.1371-5
	constPosFixType = 1 // GPS
	constDTE        = 0 // data terminal ready
	constSpareType5 = 0
)

// Declared payload lengths in bits, before six-bit alignment padding.
const (
	PositionReportBits = 168
	StaticVoyageBits   = 424
)
