package dx7

import (
	"strings"
	"testing"
	"unicode"
)

func TestLCDToASCII(t *testing.T) {
	name := []byte("BRASS   1 ")
	if got := LCDToASCII(name); got != "BRASS   1 " {
		t.Errorf("got %q", got)
	}
	// Codes outside the printable LCD/ASCII overlap degrade to
	// approximations, high codes to spaces.
	for _, tt := range []struct {
		code byte
		want byte
	}{
		{0x00, ' '},
		{0x5C, 'Y'}, // yen sign
		{0x7E, '>'}, // right arrow
		{0x7F, '<'}, // left arrow
		{0x80, ' '},
		{0xFF, ' '},
	} {
		if got := LCDToASCII([]byte{tt.code}); got[0] != tt.want {
			t.Errorf("code 0x%02X -> %q, want %q", tt.code, got, string(tt.want))
		}
	}
}

func TestLCDToUnicode(t *testing.T) {
	if got := LCDToUnicode([]byte("E.PIANO 1 ")); got != "E.PIANO 1 " {
		t.Errorf("got %q", got)
	}
	for _, tt := range []struct {
		code byte
		want string
	}{
		{0x5C, "¥"},
		{0x7E, "→"},
		{0xDF, "°"},
		{0xF4, "Ω"},
		{0xFF, "█"},
	} {
		if got := LCDToUnicode([]byte{tt.code}); got != tt.want {
			t.Errorf("code 0x%02X -> %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestNoteNames(t *testing.T) {
	for _, tt := range []struct {
		x    int
		want string
	}{
		{0, "C"}, {1, "C#"}, {11, "B"}, {12, "C"}, {60, "C"},
	} {
		if got := NoteName(tt.x); got != tt.want {
			t.Errorf("NoteName(%d) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestTranspose(t *testing.T) {
	for _, tt := range []struct {
		x    int
		want string
	}{
		{0, "C1"}, {12, "C2"}, {24, "C3"}, {48, "C5"}, {26, "D3"},
		{-1, "*out of range*"}, {49, "*out of range*"},
	} {
		if got := Transpose(tt.x); got != tt.want {
			t.Errorf("Transpose(%d) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestBreakpoint(t *testing.T) {
	for _, tt := range []struct {
		x    int
		want string
	}{
		{0, "A-1"}, {2, "B-1"}, {3, "C0"}, {15, "C1"}, {39, "C3"},
		{99, "C8"}, {100, "*out of range*"},
	} {
		if got := Breakpoint(tt.x); got != tt.want {
			t.Errorf("Breakpoint(%d) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestOperatorFrequencyRatio(t *testing.T) {
	for _, tt := range []struct {
		coarse, fine int
		want         float64
	}{
		{0, 0, 0.5},
		{1, 0, 1},
		{2, 0, 2},
		{2, 50, 3},   // fine adds coarse/100 per step
		{0, 50, 0.75},
		{31, 0, 31},
	} {
		if got := OperatorFrequency(OscMode_Ratio, tt.coarse, tt.fine); got != tt.want {
			t.Errorf("ratio %d/%d = %g, want %g", tt.coarse, tt.fine, got, tt.want)
		}
	}
}

func TestOperatorFrequencyFixed(t *testing.T) {
	for _, tt := range []struct {
		coarse, fine int
		want         float64
	}{
		{0, 0, 1},
		{1, 0, 10},
		{2, 0, 100},
		{3, 0, 1000},
		{4, 0, 1}, // coarse wraps mod 4
	} {
		got := OperatorFrequency(OscMode_Fixed, tt.coarse, tt.fine)
		if diff := got - tt.want; diff < -1e-9 || 1e-9 < diff {
			t.Errorf("fixed %d/%d = %g, want %g", tt.coarse, tt.fine, got, tt.want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if Curve_LinMinus.String() != "-LIN" || Curve_LinPlus.String() != "+LIN" ||
		Curve_ExpMinus.String() != "-EXP" || Curve_ExpPlus.String() != "+EXP" {
		t.Error("curve names wrong")
	}
	if Curve(7).String() != "*out of range*" {
		t.Error("out of range curve not flagged")
	}
	if LFOWave_SampleHold.String() != "Sample & Hold" || LFOWave(6).String() != "*out of range*" {
		t.Error("LFO wave names wrong")
	}
	if OscMode_Ratio.StringCompact() != "Freq. Ratio" || OscMode_Fixed.StringCompact() != "Fixed Freq." {
		t.Error("compact mode names wrong")
	}
	if OnOff(0) != "Off" || OnOff(1) != "On" || OnOff(2) != "*out of range*" {
		t.Error("OnOff wrong")
	}
}

func TestAlgorithmDiagrams(t *testing.T) {
	for alg := 0; alg < 32; alg++ {
		u := AlgorithmDiagram(alg, true)
		a := AlgorithmDiagram(alg, false)
		if u == "" || a == "" {
			t.Fatalf("algorithm %d has an empty diagram", alg+1)
		}
		// Every operator box must appear in both variants.
		for _, box := range []string{"[1]", "[2]", "[3]", "[4]", "[5]", "[6]"} {
			if !strings.Contains(u, box) || !strings.Contains(a, box) {
				t.Errorf("algorithm %d diagram is missing %s", alg+1, box)
			}
		}
		for _, r := range a {
			if r > unicode.MaxASCII {
				t.Errorf("algorithm %d ASCII diagram contains %q", alg+1, r)
			}
		}
	}
	if AlgorithmDiagram(-1, true) != "*out of range*" || AlgorithmDiagram(32, false) != "*out of range*" {
		t.Error("out of range algorithm not flagged")
	}
}
