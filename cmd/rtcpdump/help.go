package main

import (
	"fmt"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"
)

var (
	flagInput   string
	flagHelp    bool
	flagVersion bool
)

func init() {
	flag.StringVarP(&flagInput, "input", "i", "-", "Input file of raw RTCP compound packets (default: stdin)")
	flag.BoolVarP(&flagHelp, "help", "h", false, "Print usage information and exit")
	flag.BoolVarP(&flagVersion, "version", "v", false, "Print version information and exit")
}

const usageBody = `
  -i, --input=FILE  Read raw RTCP packets from FILE (default: stdin)
  -h, --help        Print this help message and exit
  -v, --version     Print version information and exit

Each input packet is a single length-prefixed RTCP compound datagram: a
big-endian uint32 byte count followed by that many bytes. This matches what
a packet sniffer would hand off per UDP datagram.`

// help prints usage information, highlighting the program name the way
// alohartcd's own help screen highlights its banner.
func help() {
	color.New(color.FgCyan, color.Bold).Print("rtcpdump")
	fmt.Print(" decodes and prints RTCP compound packets\n\nUsage: ")
	color.New(color.FgYellow).Print("rtcpdump [OPTION]...")
	fmt.Println(usageBody)
}
