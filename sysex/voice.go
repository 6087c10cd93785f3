package sysex

import (
	"github.com/pkg/errors"

	"github.com/lexonic/dx7dump/sysex/dx7"
)

// lfoPMSBits is the bit width of the packed LFO pitch mod sensitivity
// field. Early layout descriptions give 3 bits; the verified revision
// this module implements uses 4.
const lfoPMSBits = 4

const lfoPMSMask = 1<<lfoPMSBits - 1

// PackedVoice is one 128-byte voice record of a bulk dump, expanded
// from its bit-field layout.
//
// Operators are kept in wire order, which is the reverse of display
// order: Op[0] is operator 6. Renderers iterate backwards; the Num
// field of each operator carries its display number.
type PackedVoice struct {
	Op [6]*PackedOperator `json:"operators"`

	PitchEGRate  [4]int `json:"pitch_eg_rate"`
	PitchEGLevel [4]int `json:"pitch_eg_level"`

	Algorithm  int `json:"algorithm"` // 0..31, displayed as 1..32
	Feedback   int `json:"feedback"`
	OscKeySync int `json:"osc_key_sync"`

	LFOSpeed               int         `json:"lfo_speed"`
	LFODelay               int         `json:"lfo_delay"`
	LFOPitchModDepth       int         `json:"lfo_pitch_mod_depth"`
	LFOAMDepth             int         `json:"lfo_am_depth"`
	LFOSync                int         `json:"lfo_sync"`
	LFOWave                dx7.LFOWave `json:"lfo_wave"`
	LFOPitchModSensitivity int         `json:"lfo_pitch_mod_sensitivity"`

	Transpose int `json:"transpose"` // stored with +24 bias

	Name [NameSize]byte `json:"name"` // raw LCD character codes
}

// decodePackedVoice expands one 128-byte packed voice record.
func decodePackedVoice(data []byte) (*PackedVoice, error) {
	//      | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
	//   +0 |     Operator 6 (17 bytes)     |
	//  ... |     Operators 5..1            |
	// +102 |        Pitch EG R1..R4        |
	// +106 |        Pitch EG L1..L4        |
	// +110 | -   -   - |    Algorithm      |
	// +111 | -   -   -   - |KS |    FB     |
	// +112 |   LFO Speed / Delay / PMD /   |
	//  ... |   AMD (one byte each)         |
	// +116 |     PMS       | Wave      |Syn|
	// +117 |           Transpose           |
	// +118 |        Name (10 bytes)        |
	if len(data) < PackedVoiceSize {
		return nil, errors.Errorf("packed voice record too short (%d bytes)", len(data))
	}
	v := &PackedVoice{}
	for i := 0; i < 6; i++ {
		op, err := decodePackedOperator(data[i*PackedOperatorSize:])
		if err != nil {
			return nil, err
		}
		op.Num = 6 - i
		v.Op[i] = op
	}
	p := data[6*PackedOperatorSize:]
	for i := 0; i < 4; i++ {
		v.PitchEGRate[i] = int(p[i])
		v.PitchEGLevel[i] = int(p[4+i])
	}
	v.Algorithm = int(p[8] & 31)
	v.Feedback = int(p[9] & 7)
	v.OscKeySync = int(p[9] >> 3 & 1)
	v.LFOSpeed = int(p[10])
	v.LFODelay = int(p[11])
	v.LFOPitchModDepth = int(p[12])
	v.LFOAMDepth = int(p[13])
	v.LFOSync = int(p[14] & 1)
	v.LFOWave = dx7.LFOWave(p[14] >> 1 & 7)
	v.LFOPitchModSensitivity = int(p[14] >> 4 & lfoPMSMask)
	v.Transpose = int(p[15])
	copy(v.Name[:], p[16:16+NameSize])
	return v, nil
}

// Unpack projects the packed voice into the unpacked single voice dump
// form. Pure and total; operator order stays as stored.
func (v *PackedVoice) Unpack() *Voice {
	u := &Voice{
		PitchEGRate:            v.PitchEGRate,
		PitchEGLevel:           v.PitchEGLevel,
		Algorithm:              v.Algorithm,
		Feedback:               v.Feedback,
		OscKeySync:             v.OscKeySync,
		LFOSpeed:               v.LFOSpeed,
		LFODelay:               v.LFODelay,
		LFOPitchModDepth:       v.LFOPitchModDepth,
		LFOAMDepth:             v.LFOAMDepth,
		LFOSync:                v.LFOSync,
		LFOWave:                v.LFOWave,
		LFOPitchModSensitivity: v.LFOPitchModSensitivity,
		Transpose:              v.Transpose,
		Name:                   v.Name,
	}
	for i, op := range v.Op {
		u.Op[i] = op.Unpack()
	}
	return u
}

// NameString translates the raw LCD name bytes for display.
func (v *PackedVoice) NameString(unicode bool) string {
	return dx7.LCDName(v.Name[:], unicode)
}

// Voice is one unpacked voice record as carried by a single voice dump,
// one byte per field on the wire.
type Voice struct {
	Op [6]*Operator `json:"operators"`

	PitchEGRate  [4]int `json:"pitch_eg_rate"`
	PitchEGLevel [4]int `json:"pitch_eg_level"`

	Algorithm  int `json:"algorithm"`
	Feedback   int `json:"feedback"`
	OscKeySync int `json:"osc_key_sync"`

	LFOSpeed               int         `json:"lfo_speed"`
	LFODelay               int         `json:"lfo_delay"`
	LFOPitchModDepth       int         `json:"lfo_pitch_mod_depth"`
	LFOAMDepth             int         `json:"lfo_am_depth"`
	LFOSync                int         `json:"lfo_sync"`
	LFOWave                dx7.LFOWave `json:"lfo_wave"`
	LFOPitchModSensitivity int         `json:"lfo_pitch_mod_sensitivity"`

	Transpose int `json:"transpose"`

	Name [NameSize]byte `json:"name"`
}

// decodeVoice reads one 155-byte unpacked voice record.
func decodeVoice(data []byte) (*Voice, error) {
	if len(data) < VoiceSize {
		return nil, errors.Errorf("voice record too short (%d bytes)", len(data))
	}
	v := &Voice{}
	for i := 0; i < 6; i++ {
		op, err := decodeOperator(data[i*OperatorSize:])
		if err != nil {
			return nil, err
		}
		op.Num = 6 - i
		v.Op[i] = op
	}
	p := data[6*OperatorSize:]
	for i := 0; i < 4; i++ {
		v.PitchEGRate[i] = int(p[i])
		v.PitchEGLevel[i] = int(p[4+i])
	}
	v.Algorithm = int(p[8])
	v.Feedback = int(p[9])
	v.OscKeySync = int(p[10])
	v.LFOSpeed = int(p[11])
	v.LFODelay = int(p[12])
	v.LFOPitchModDepth = int(p[13])
	v.LFOAMDepth = int(p[14])
	v.LFOSync = int(p[15])
	v.LFOWave = dx7.LFOWave(p[16])
	v.LFOPitchModSensitivity = int(p[17])
	v.Transpose = int(p[18])
	copy(v.Name[:], p[19:19+NameSize])
	return v, nil
}

// Bytes serializes the voice back to its 155-byte wire form. The single
// voice checksum is computed over exactly these bytes.
func (v *Voice) Bytes() []byte {
	b := make([]byte, 0, VoiceSize)
	for i := 0; i < 6; i++ {
		b = append(b, v.Op[i].Bytes()...)
	}
	for i := 0; i < 4; i++ {
		b = append(b, byte(v.PitchEGRate[i]))
	}
	for i := 0; i < 4; i++ {
		b = append(b, byte(v.PitchEGLevel[i]))
	}
	b = append(b,
		byte(v.Algorithm),
		byte(v.Feedback),
		byte(v.OscKeySync),
		byte(v.LFOSpeed),
		byte(v.LFODelay),
		byte(v.LFOPitchModDepth),
		byte(v.LFOAMDepth),
		byte(v.LFOSync),
		byte(v.LFOWave),
		byte(v.LFOPitchModSensitivity),
		byte(v.Transpose),
	)
	return append(b, v.Name[:]...)
}

// NameString translates the raw LCD name bytes for display.
func (v *Voice) NameString(unicode bool) string {
	return dx7.LCDName(v.Name[:], unicode)
}
