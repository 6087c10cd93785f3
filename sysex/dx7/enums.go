// Package dx7 holds DX7 parameter value types and display helpers:
// keyboard scaling curves, LFO waveforms, oscillator modes, note and
// frequency formatting, LCD character translation and the algorithm
// routing diagrams.
package dx7

import (
	"encoding/json"
)

const outOfRange = "*out of range*"

// Curve is a keyboard level scaling curve (0..3).
type Curve int

const (
	Curve_LinMinus Curve = iota
	Curve_ExpMinus
	Curve_ExpPlus
	Curve_LinPlus
)

func (c Curve) String() string {
	switch c {
	case Curve_LinMinus:
		return "-LIN"
	case Curve_ExpMinus:
		return "-EXP"
	case Curve_ExpPlus:
		return "+EXP"
	case Curve_LinPlus:
		return "+LIN"
	}
	return outOfRange
}

func (c Curve) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// OscMode is the operator oscillator mode: frequency ratio or fixed
// frequency.
type OscMode int

const (
	OscMode_Ratio OscMode = iota
	OscMode_Fixed
)

func (m OscMode) String() string {
	switch m {
	case OscMode_Ratio:
		return "Frequency (Ratio)"
	case OscMode_Fixed:
		return "Fixed Frequency (Hz)"
	}
	return outOfRange
}

// StringCompact is the short form used in table cells.
func (m OscMode) StringCompact() string {
	switch m {
	case OscMode_Ratio:
		return "Freq. Ratio"
	case OscMode_Fixed:
		return "Fixed Freq."
	}
	return outOfRange
}

func (m OscMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// LFOWave is the LFO waveform selector (0..5).
type LFOWave int

const (
	LFOWave_Triangle LFOWave = iota
	LFOWave_SawDown
	LFOWave_SawUp
	LFOWave_Square
	LFOWave_Sine
	LFOWave_SampleHold
)

func (w LFOWave) String() string {
	switch w {
	case LFOWave_Triangle:
		return "Triangle"
	case LFOWave_SawDown:
		return "Saw Down"
	case LFOWave_SawUp:
		return "Saw Up"
	case LFOWave_Square:
		return "Square"
	case LFOWave_Sine:
		return "Sine"
	case LFOWave_SampleHold:
		return "Sample & Hold"
	}
	return outOfRange
}

func (w LFOWave) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// OnOff renders a 1-bit switch value.
func OnOff(x int) string {
	switch x {
	case 0:
		return "Off"
	case 1:
		return "On"
	}
	return outOfRange
}

// AlgorithmDiagram returns the routing diagram for a 0-based algorithm
// index, in box-drawing or plain ASCII form.
func AlgorithmDiagram(alg int, unicode bool) string {
	if alg < 0 || len(algorithmDiagramsUnicode) <= alg {
		return outOfRange
	}
	if unicode {
		return algorithmDiagramsUnicode[alg]
	}
	return algorithmDiagramsAscii[alg]
}
