package ais

// StaticVoyage is an AIS message type 5 payload (Static and Voyage Related
// Data). Its armored payload always exceeds the single-sentence limit and
// frames as two AIVDM sentences.
type StaticVoyage struct {
	MMSI        int
	IMO         int
	CallSign    string
	ShipName    string
	ShipType    int
	Dimension   ShipDimension
	Eta         ShipEta
	Draught     float64 // metres
	Destination string
}

// BitLength returns the declared type 5 payload length.
func (m StaticVoyage) BitLength() int { return StaticVoyageBits }

// PayloadBits assembles the 424-bit payload in the field order fixed by
// ITU-R M.1371.
func (m StaticVoyage) PayloadBits() (string, error) {
	var b payloadBuilder
	b.uint("msg_type", msgTypeStaticVoyage, lenMsgType)
	b.uint("repeat_indicator", 0, lenRepeat)
	b.uint("mmsi", int64(m.MMSI), lenMMSI)
	b.uint("ais_version", constAISVersion, lenAISVersion)
	b.uint("imo", int64(m.IMO), lenIMO)
	b.raw(encodeString("call_sign", m.CallSign, CallSignChars))
	b.raw(encodeString("ship_name", m.ShipName, ShipNameChars))
	b.uint("ship_type", int64(m.ShipType), lenShipType)
	b.raw(m.Dimension.Bits())
	b.uint("pos_fix_type", constPosFixType, lenPosFixType)
	b.raw(m.Eta.Bits())
	b.raw(encodeDraught(m.Draught))
	b.raw(encodeString("destination", m.Destination, DestinationChars))
	b.uint("dte", constDTE, lenDTE)
	b.uint("spare", constSpareType5, lenSpareType5)
	return b.bits()
}
