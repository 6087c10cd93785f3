package dx7

import (
	"fmt"
	"math"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the pitch class name for a semitone value.
func NoteName(x int) string {
	return noteNames[x%12]
}

// Transpose renders a transpose parameter (0..48, C1..C5) as a note name
// with octave.
func Transpose(x int) string {
	if x < 0 || 48 < x {
		return outOfRange
	}
	return fmt.Sprintf("%s%d", NoteName(x), x/12+1)
}

// Breakpoint renders a keyboard scaling breakpoint (0..99, A-1..C8) as a
// note name with octave.
func Breakpoint(x int) string {
	if x < 0 || 99 < x {
		return outOfRange
	}
	// Shift up an octave before dividing so that values below C0 round
	// toward the correct (negative) octave, then subtract it again.
	octave := (x-3+12)/12 - 1
	return fmt.Sprintf("%s%d", NoteName(x+9), octave)
}

// OperatorFrequency computes the frequency of an operator. In ratio mode
// the result is a multiplier of the played note, with coarse value 0
// meaning one half; in fixed mode it is an absolute frequency in Hz,
// 10^(coarse mod 4 + fine/100).
func OperatorFrequency(mode OscMode, coarse, fine int) float64 {
	if mode == OscMode_Fixed {
		return math.Pow(10, float64(coarse%4)+float64(fine)/100)
	}
	c := float64(coarse)
	if coarse == 0 {
		c = 0.5
	}
	return c + float64(fine)*c/100
}

// FormatFrequency renders an operator frequency, appending the Hz unit
// in fixed mode.
func FormatFrequency(mode OscMode, freq float64) string {
	if mode == OscMode_Fixed {
		return fmt.Sprintf("%g Hz", freq)
	}
	return fmt.Sprintf("%g", freq)
}
