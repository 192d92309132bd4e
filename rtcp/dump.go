package rtcp

import (
	"fmt"
	"strings"
)

// Dump helpers. original_source/cca/rtp.cpp's RTCPPacket::Dump and friends
// write a human-readable trace straight to a Debug() log sink, one line per
// packet or inner record, nested with indentation. This codec has no
// logging collaborator of its own, so each packet's Dump() instead builds
// and returns that same trace as a string; callers that want it on a log
// line (e.g. cmd/rtcpdump) just print it.

// fmtHeader writes the opening "[Name attr1 attr2]\n" line used throughout
// Dump output.
func fmtHeader(b *strings.Builder, name, format string, args ...interface{}) {
	fmt.Fprintf(b, "[%s %s]\n", name, fmt.Sprintf(format, args...))
}

// fmtLine writes a single indented "\tkey=value\n" style trace line.
func fmtLine(b *strings.Builder, format string, args ...interface{}) {
	b.WriteString("\t")
	fmt.Fprintf(b, format, args...)
	b.WriteString("\n")
}
