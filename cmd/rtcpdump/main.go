// Command rtcpdump decodes a stream of length-prefixed RTCP compound
// packets and prints a human-readable trace of each one.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/lanikai/rtcpcodec/internal/logging"
	"github.com/lanikai/rtcpcodec/rtcp"
)

const version = "0.1.0"

var log = logging.DefaultLogger.WithTag("rtcpdump")

func main() {
	flag.Parse()

	if flagHelp {
		help()
		os.Exit(0)
	}
	if flagVersion {
		fmt.Println("rtcpdump", version)
		os.Exit(0)
	}

	in := os.Stdin
	if flagInput != "-" {
		f, err := os.Open(flagInput)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run reads length-prefixed RTCP datagrams from r and writes their trace to
// w until r is exhausted.
func run(r io.Reader, w io.Writer) error {
	var lengthBuf [4]byte
	for i := 0; ; i++ {
		if _, err := io.ReadFull(r, lengthBuf[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("reading datagram %d length: %w", i, err)
		}
		n := binary.BigEndian.Uint32(lengthBuf[:])

		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf("reading datagram %d: %w", i, err)
		}

		if !rtcp.IsRTCP(buf) {
			log.Error("datagram %d: not an RTCP packet", i)
			continue
		}

		var c rtcp.CompoundPacket
		if err := c.Parse(buf); err != nil {
			log.Error("datagram %d: %v", i, err)
			continue
		}

		fmt.Fprint(w, c.Dump())
	}
}
