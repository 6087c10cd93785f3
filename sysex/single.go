package sysex

import (
	"github.com/pkg/errors"
)

// SingleVoice holds one complete 163-byte single voice dump buffer.
type SingleVoice struct {
	data []byte
}

// NewSingleVoice wraps a full single voice sysex buffer.
func NewSingleVoice(data []byte) (*SingleVoice, error) {
	if len(data) != SingleFileSize {
		return nil, errors.Errorf("single voice dump must be %d bytes, got %d", SingleFileSize, len(data))
	}
	s := &SingleVoice{data: make([]byte, SingleFileSize)}
	copy(s.data, data)
	return s, nil
}

// Payload is the 155-byte unpacked voice span the checksum covers.
func (s *SingleVoice) Payload() []byte {
	return s.data[HeaderSize : HeaderSize+VoiceSize]
}

// StoredChecksum is the checksum byte as present in the buffer.
func (s *SingleVoice) StoredChecksum() byte {
	return s.data[HeaderSize+VoiceSize]
}

// Voice decodes the unpacked voice record.
func (s *SingleVoice) Voice() (*Voice, error) {
	return decodeVoice(s.Payload())
}

// SingleCode is the bitmask result of validating a single voice dump.
// Zero means the dump is well formed. Single voice dumps are strict:
// any set bit is a failure and no repair is offered.
type SingleCode uint8

const (
	SingleBadEnd      SingleCode = 1 << 0
	SingleBadChecksum SingleCode = 1 << 1
	SingleBadSizeLSB  SingleCode = 1 << 2
	SingleBadSizeMSB  SingleCode = 1 << 3
	SingleBadFormat   SingleCode = 1 << 4
	SingleBadStatus   SingleCode = 1 << 5
	SingleBadVendor   SingleCode = 1 << 6
	SingleBadStart    SingleCode = 1 << 7
)

// Validate checks all seven structural fields, each contributing its own
// bit. The checksum is verified only when the structure is intact.
func (s *SingleVoice) Validate() SingleCode {
	var code SingleCode
	d := s.data
	if d[0] != SysexStart {
		code |= SingleBadStart
	}
	if d[1] != YamahaID {
		code |= SingleBadVendor
	}
	if d[2]&0xF0 != 0 {
		code |= SingleBadStatus
	}
	if d[3] != FormatSingle {
		code |= SingleBadFormat
	}
	if d[4] != SingleSizeMSB {
		code |= SingleBadSizeMSB
	}
	if d[5] != SingleSizeLSB {
		code |= SingleBadSizeLSB
	}
	if d[SingleFileSize-1] != SysexEnd {
		code |= SingleBadEnd
	}
	if code == 0 && Checksum(s.Payload()) != s.StoredChecksum() {
		code |= SingleBadChecksum
	}
	return code
}
