package rtcp

// NTP timestamp conversion, per https://tools.ietf.org/html/rfc3550#section-4.
//
// Grounded in original_source/cca/rtp.cpp's
// RTCPSenderReport::SetTimestamp/GetTimestamp, which convert a struct
// timeval via `tv_sec + 2208988800` and `tv_usec * 4294.967296`
// (i.e. 2^32 / 1e6).

// ntpEpochOffset is the number of seconds between the NTP epoch
// (1 Jan 1900) and the Unix epoch (1 Jan 1970).
const ntpEpochOffset = 2208988800

// ntpFracPerMicrosecond is 2^32 / 1e6, the scale factor between
// microseconds and 1/2^32-second NTP fractional units.
const ntpFracPerMicrosecond = 4294.967296

// SetTimestamp sets NTPSec and NTPFrac from a wall-clock time expressed as
// whole seconds since the Unix epoch plus a microseconds remainder.
func (sr *SenderReport) SetTimestamp(unixSeconds int64, microseconds uint32) {
	sr.NTPSec = uint32(unixSeconds + ntpEpochOffset)
	sr.NTPFrac = uint32(float64(microseconds)*ntpFracPerMicrosecond + 0.5)
}

// GetTimestamp inverts SetTimestamp, recovering the wall-clock time to
// within 1 microsecond.
func (sr *SenderReport) GetTimestamp() (unixSeconds int64, microseconds uint32) {
	unixSeconds = int64(sr.NTPSec) - ntpEpochOffset
	microseconds = uint32(float64(sr.NTPFrac)/ntpFracPerMicrosecond + 0.5)
	return
}
