package sysex

import (
	"github.com/pkg/errors"

	"github.com/lexonic/dx7dump/sysex/dx7"
)

// PackedOperator is one of the six operators of a packed (bulk dump)
// voice record, expanded from its 17-byte bit-field layout.
type PackedOperator struct {
	Num int `json:"-"` // position in display order, 1..6

	EGRate  [4]int `json:"eg_rate"`
	EGLevel [4]int `json:"eg_level"`

	LevelScalingBreakPoint int       `json:"level_scaling_break_point"`
	ScaleLeftDepth         int       `json:"scale_left_depth"`
	ScaleRightDepth        int       `json:"scale_right_depth"`
	ScaleLeftCurve         dx7.Curve `json:"scale_left_curve"`
	ScaleRightCurve        dx7.Curve `json:"scale_right_curve"`

	RateScale              int `json:"rate_scale"`
	Detune                 int `json:"detune"` // stored with +7 bias
	AmpModSensitivity      int `json:"amp_mod_sensitivity"`
	KeyVelocitySensitivity int `json:"key_velocity_sensitivity"`
	OutputLevel            int `json:"output_level"`

	OscillatorMode  dx7.OscMode `json:"oscillator_mode"`
	FrequencyCoarse int         `json:"frequency_coarse"`
	FrequencyFine   int         `json:"frequency_fine"`
}

// decodePackedOperator expands one 17-byte packed operator record.
func decodePackedOperator(data []byte) (*PackedOperator, error) {
	//     | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
	//  +0 |          EG Rate 1            |
	//  ...
	//  +7 |          EG Level 4           |
	//  +8 |      Level Scaling Br.Pt.     |
	//  +9 |       Scale Left Depth        |
	// +10 |       Scale Right Depth       |
	// +11 | -   -   - | R.Curve | L.Curve |
	// +12 | - |    DET        |    RS     |
	// +13 | -   - |    KVS    |   AMS     |
	// +14 |         Output Level          |
	// +15 | -   - |   F.Coarse        | M |
	// +16 |        Frequency Fine         |
	if len(data) < PackedOperatorSize {
		return nil, errors.Errorf("packed operator record too short (%d bytes)", len(data))
	}
	op := &PackedOperator{}
	for i := 0; i < 4; i++ {
		op.EGRate[i] = int(data[i])
		op.EGLevel[i] = int(data[4+i])
	}
	op.LevelScalingBreakPoint = int(data[8])
	op.ScaleLeftDepth = int(data[9])
	op.ScaleRightDepth = int(data[10])
	op.ScaleLeftCurve = dx7.Curve(data[11] & 3)
	op.ScaleRightCurve = dx7.Curve(data[11] >> 2 & 3)
	op.RateScale = int(data[12] & 7)
	op.Detune = int(data[12] >> 3 & 15)
	op.AmpModSensitivity = int(data[13] & 3)
	op.KeyVelocitySensitivity = int(data[13] >> 2 & 7)
	op.OutputLevel = int(data[14])
	op.OscillatorMode = dx7.OscMode(data[15] & 1)
	op.FrequencyCoarse = int(data[15] >> 1 & 31)
	op.FrequencyFine = int(data[16])
	return op, nil
}

// Unpack projects the packed operator into the unpacked (single voice
// dump) field order. Pure field copy, no failure modes.
func (op *PackedOperator) Unpack() *Operator {
	return &Operator{
		Num:                    op.Num,
		EGRate:                 op.EGRate,
		EGLevel:                op.EGLevel,
		LevelScalingBreakPoint: op.LevelScalingBreakPoint,
		ScaleLeftDepth:         op.ScaleLeftDepth,
		ScaleRightDepth:        op.ScaleRightDepth,
		ScaleLeftCurve:         op.ScaleLeftCurve,
		ScaleRightCurve:        op.ScaleRightCurve,
		RateScale:              op.RateScale,
		AmpModSensitivity:      op.AmpModSensitivity,
		KeyVelocitySensitivity: op.KeyVelocitySensitivity,
		OutputLevel:            op.OutputLevel,
		OscillatorMode:         op.OscillatorMode,
		FrequencyCoarse:        op.FrequencyCoarse,
		FrequencyFine:          op.FrequencyFine,
		Detune:                 op.Detune,
	}
}

// Frequency returns the operator frequency: a ratio in ratio mode, Hz in
// fixed mode.
func (op *PackedOperator) Frequency() float64 {
	return dx7.OperatorFrequency(op.OscillatorMode, op.FrequencyCoarse, op.FrequencyFine)
}

// Operator is one operator of an unpacked (single voice dump) record,
// one byte per field on the wire.
type Operator struct {
	Num int `json:"-"`

	EGRate  [4]int `json:"eg_rate"`
	EGLevel [4]int `json:"eg_level"`

	LevelScalingBreakPoint int       `json:"level_scaling_break_point"`
	ScaleLeftDepth         int       `json:"scale_left_depth"`
	ScaleRightDepth        int       `json:"scale_right_depth"`
	ScaleLeftCurve         dx7.Curve `json:"scale_left_curve"`
	ScaleRightCurve        dx7.Curve `json:"scale_right_curve"`

	RateScale              int `json:"rate_scale"`
	AmpModSensitivity      int `json:"amp_mod_sensitivity"`
	KeyVelocitySensitivity int `json:"key_velocity_sensitivity"`
	OutputLevel            int `json:"output_level"`

	OscillatorMode  dx7.OscMode `json:"oscillator_mode"`
	FrequencyCoarse int         `json:"frequency_coarse"`
	FrequencyFine   int         `json:"frequency_fine"`
	Detune          int         `json:"detune"`
}

// decodeOperator reads one 21-byte unpacked operator record.
func decodeOperator(data []byte) (*Operator, error) {
	if len(data) < OperatorSize {
		return nil, errors.Errorf("operator record too short (%d bytes)", len(data))
	}
	op := &Operator{}
	for i := 0; i < 4; i++ {
		op.EGRate[i] = int(data[i])
		op.EGLevel[i] = int(data[4+i])
	}
	op.LevelScalingBreakPoint = int(data[8])
	op.ScaleLeftDepth = int(data[9])
	op.ScaleRightDepth = int(data[10])
	op.ScaleLeftCurve = dx7.Curve(data[11])
	op.ScaleRightCurve = dx7.Curve(data[12])
	op.RateScale = int(data[13])
	op.AmpModSensitivity = int(data[14])
	op.KeyVelocitySensitivity = int(data[15])
	op.OutputLevel = int(data[16])
	op.OscillatorMode = dx7.OscMode(data[17])
	op.FrequencyCoarse = int(data[18])
	op.FrequencyFine = int(data[19])
	op.Detune = int(data[20])
	return op, nil
}

// Bytes serializes the operator back to its 21-byte wire form.
func (op *Operator) Bytes() []byte {
	b := make([]byte, 0, OperatorSize)
	for i := 0; i < 4; i++ {
		b = append(b, byte(op.EGRate[i]))
	}
	for i := 0; i < 4; i++ {
		b = append(b, byte(op.EGLevel[i]))
	}
	return append(b,
		byte(op.LevelScalingBreakPoint),
		byte(op.ScaleLeftDepth),
		byte(op.ScaleRightDepth),
		byte(op.ScaleLeftCurve),
		byte(op.ScaleRightCurve),
		byte(op.RateScale),
		byte(op.AmpModSensitivity),
		byte(op.KeyVelocitySensitivity),
		byte(op.OutputLevel),
		byte(op.OscillatorMode),
		byte(op.FrequencyCoarse),
		byte(op.FrequencyFine),
		byte(op.Detune),
	)
}
