// MIT License
//
// Copyright (c) 2018 Pions
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package rtcp

import "errors"

// Sentinel errors returned by Parse/Unmarshal and Serialize/Marshal. They are
// returned unwrapped. A few length checks in the SR, RR, SDES and BYE decoders
// instead return an error formatted with golang.org/x/xerrors that matches
// none of these sentinels.
var (
	errInvalidHeader      = errors.New("rtcp: invalid header")
	errTooManyReports     = errors.New("rtcp: too many reports")
	errTooManyChunks      = errors.New("rtcp: too many chunks")
	errTooManySources     = errors.New("rtcp: too many sources")
	errPacketTooShort     = errors.New("rtcp: packet too short")
	errWrongType          = errors.New("rtcp: wrong packet type")
	errSDESTextTooLong    = errors.New("rtcp: sdes item must be at most 255 octets long")
	errSDESMissingType    = errors.New("rtcp: sdes item missing type")
	errReasonTooLong      = errors.New("rtcp: bye reason must be at most 255 octets long")
	errBadVersion         = errors.New("rtcp: invalid packet version")
	errTruncated          = errors.New("rtcp: packet truncated")
	errUnknownFeedbackFMT = errors.New("rtcp: unknown feedback message type")
	errInconsistentLength = errors.New("rtcp: header length inconsistent with body")
	errBufferTooSmall     = errors.New("rtcp: buffer too small to serialize packet")
	errEmptyWithBody      = errors.New("rtcp: packet kind takes no body but one was present")
)
