package sysex

import (
	"bytes"

	"github.com/pkg/errors"
)

// Bank holds one complete 4104-byte bank dump buffer. The buffer is the
// source of truth: voices are decoded from it on demand and repair
// rewrites it in place. A Bank is never shared between files; every
// ingestion gets its own.
type Bank struct {
	data       []byte
	headerless bool
}

// NewBank wraps a full bank sysex buffer. The buffer is copied so the
// caller's slice stays untouched by repair.
func NewBank(data []byte) (*Bank, error) {
	if len(data) != BankFileSize {
		return nil, errors.Errorf("bank dump must be %d bytes, got %d", BankFileSize, len(data))
	}
	b := &Bank{data: make([]byte, BankFileSize)}
	copy(b.data, data)
	return b, nil
}

// NewHeaderlessBank wraps a raw 4096-byte voice payload, synthesizing
// the canonical header, checksum and end marker around it. Banks built
// this way always need repair to become a well-formed file; callers
// must not run structural validation against the synthesized envelope.
func NewHeaderlessBank(payload []byte) (*Bank, error) {
	if len(payload) != BankPayloadSize {
		return nil, errors.Errorf("raw bank payload must be %d bytes, got %d", BankPayloadSize, len(payload))
	}
	b := &Bank{data: make([]byte, BankFileSize), headerless: true}
	copy(b.data[HeaderSize:], payload)
	b.Canonicalize()
	return b, nil
}

// Headerless reports whether the envelope was synthesized on ingestion
// rather than read from the file.
func (b *Bank) Headerless() bool {
	return b.headerless
}

// Bytes exposes the underlying buffer. Mutations show up in subsequent
// decodes; tests and renderers treat it as read-only.
func (b *Bank) Bytes() []byte {
	return b.data
}

// Payload is the 4096-byte span of 32 packed voices the checksum covers.
func (b *Bank) Payload() []byte {
	return b.data[HeaderSize : HeaderSize+BankPayloadSize]
}

// StoredChecksum is the checksum byte as present in the buffer.
func (b *Bank) StoredChecksum() byte {
	return b.data[HeaderSize+BankPayloadSize]
}

func (b *Bank) voiceBytes(i int) []byte {
	off := HeaderSize + i*PackedVoiceSize
	return b.data[off : off+PackedVoiceSize]
}

// Voice decodes the packed voice record at index 0..31.
func (b *Bank) Voice(i int) (*PackedVoice, error) {
	if i < 0 || NumVoices <= i {
		return nil, errors.Errorf("voice index %d out of range", i)
	}
	return decodePackedVoice(b.voiceBytes(i))
}

// Voices decodes all 32 packed voice records.
func (b *Bank) Voices() ([]*PackedVoice, error) {
	voices := make([]*PackedVoice, NumVoices)
	for i := range voices {
		v, err := b.Voice(i)
		if err != nil {
			return nil, errors.Wrapf(err, "voice %d", i+1)
		}
		voices[i] = v
	}
	return voices, nil
}

// DuplicatePair flags two voices with identical parameter bytes.
// Indexes are 0-based with I < J.
type DuplicatePair struct {
	I int `json:"i"`
	J int `json:"j"`
}

// FindDuplicates byte-compares every voice pair, ignoring the trailing
// name bytes, and returns matches in ascending (I, J) order. 496 pairs
// over fixed 128-byte records; no need to be clever.
func (b *Bank) FindDuplicates() []DuplicatePair {
	var dupes []DuplicatePair
	n := PackedVoiceSize - NameSize
	for i := 0; i < NumVoices-1; i++ {
		for j := i + 1; j < NumVoices; j++ {
			if bytes.Equal(b.voiceBytes(i)[:n], b.voiceBytes(j)[:n]) {
				dupes = append(dupes, DuplicatePair{I: i, J: j})
			}
		}
	}
	return dupes
}
