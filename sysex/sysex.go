// Package sysex decodes, validates and repairs Yamaha DX7 voice dumps.
//
// Two wire shapes are supported: the 32-voice bulk dump (format 9, packed
// voice records) and the single voice dump (format 0, unpacked records).
// Headerless 4096-byte bank payloads are accepted as well; a canonical
// header is synthesized for them on ingestion.
//
// Format reference: section D and F of
// http://homepages.abdn.ac.uk/mth192/pages/dx7/sysex-format.txt
package sysex

const (
	// SysexStart and SysexEnd frame every MIDI system exclusive message.
	SysexStart = 0xF0
	SysexEnd   = 0xF7

	// YamahaID is the manufacturer id byte following the start marker.
	YamahaID = 0x43

	// FormatBank and FormatSingle are the dump format id bytes.
	FormatBank   = 0x09
	FormatSingle = 0x00

	// Declared payload sizes, each split over two 7-bit data bytes.
	BankSizeMSB   = 0x20 // 4096
	BankSizeLSB   = 0x00
	SingleSizeMSB = 0x01 // 155
	SingleSizeLSB = 0x1B
)

const (
	// HeaderSize is the length of the sysex envelope before the payload.
	// Trailing the payload are one checksum byte and the end marker.
	HeaderSize = 6

	// BankPayloadSize is 32 packed voices of 128 bytes each.
	BankPayloadSize = 32 * PackedVoiceSize

	// BankFileSize is the on-disk size of a complete bank dump.
	BankFileSize = HeaderSize + BankPayloadSize + 2

	// SingleFileSize is the on-disk size of a complete single voice dump.
	SingleFileSize = HeaderSize + VoiceSize + 2
)

const (
	PackedOperatorSize = 17
	PackedVoiceSize    = 6*PackedOperatorSize + 16 + NameSize

	OperatorSize = 21
	VoiceSize    = 6*OperatorSize + 19 + NameSize

	NameSize  = 10
	NumVoices = 32
)

// Checksum computes the two's complement checksum used by both dump
// formats: every byte is masked to 7 bits and summed into an 8-bit
// accumulator (wraparound intended), the sum is negated and masked to
// 7 bits. A block followed by its checksum sums to 0 mod 128.
func Checksum(data []byte) byte {
	var sum uint8
	for _, b := range data {
		sum += b & 0x7F
	}
	return (^sum + 1) & 0x7F
}
