// Package listing renders decoded voice banks as human readable text:
// name tables, long parameter listings and the compact operator table.
// The layout is diff-friendly so two banks can be compared with
// standard tools.
package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/lexonic/dx7dump/sysex"
	"github.com/lexonic/dx7dump/sysex/dx7"
)

// Options selects the listing form.
type Options struct {
	Long    bool // parameter values instead of the name table
	Compact bool // multi-column names, or the operator table when Long
	Hex     bool // show names and voice data in hex
	Unicode bool // Unicode glyphs for names and algorithm diagrams
	Patch   int  // 1-based voice to list; 0 lists all

	// SoftError tells the renderer that diagnostics were already
	// printed for this file, which shifts where the filename and the
	// separators go.
	SoftError bool
}

// Fprint writes the listing for a bank to w.
func Fprint(w io.Writer, bank *sysex.Bank, path string, opts Options) error {
	voices, err := bank.Voices()
	if err != nil {
		return err
	}
	if opts.Long {
		fprintLong(w, voices, path, opts)
	} else {
		fprintNames(w, voices, path, opts)
	}
	return nil
}

// Filename prints the standard file header line, with any leading "./"
// stripped.
func Filename(w io.Writer, path string) {
	fmt.Fprintf(w, "File: %q\n", strings.TrimPrefix(path, "./"))
}

func fprintNames(w io.Writer, voices []*sysex.PackedVoice, path string, opts Options) {
	rows, columns := sysex.NumVoices, 1
	delim := byte('|')
	if opts.Compact {
		if opts.Hex {
			rows, columns = 16, 2
		} else {
			rows, columns = 8, 4
		}
	} else if !opts.Hex {
		delim = ' '
	}

	if !opts.SoftError {
		Filename(w, path)
	}
	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			num := column*rows + row
			v := voices[num]
			fmt.Fprintf(w, "%2d %c%10s%c ", num+1, delim, v.NameString(opts.Unicode), delim)
			if opts.Hex {
				for _, b := range v.Name {
					fmt.Fprintf(w, " %02X", b)
				}
			}
			if column < columns-1 {
				fmt.Fprint(w, "         ")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func fprintLong(w io.Writer, voices []*sysex.PackedVoice, path string, opts Options) {
	if opts.SoftError {
		voiceSeparator(w)
		fmt.Fprint(w, "\n\n")
	}
	for num, v := range voices {
		if opts.Patch != 0 && opts.Patch != num+1 {
			continue
		}
		Filename(w, path)
		fmt.Fprintf(w, "Voice-#: %d\n", num+1)
		fmt.Fprintf(w, "Name: %q", v.NameString(opts.Unicode))
		if opts.Hex {
			fmt.Fprint(w, " | ")
			for _, b := range v.Name {
				fmt.Fprintf(w, " %02X", b)
			}
			// The unpacked form is what a single voice dump would
			// carry, so its checksum is shown along with it.
			data := v.Unpack().Bytes()
			fmt.Fprint(w, "\n\nVoice Data:")
			for _, b := range data {
				fmt.Fprintf(w, " %02X", b)
			}
			fmt.Fprintf(w, " %02X [last byte = checksum]", sysex.Checksum(data))
		}
		fmt.Fprint(w, "\n\n")
		fmt.Fprintf(w, "Algorithm: %d\n", v.Algorithm+1)
		if opts.Compact {
			fmt.Fprintf(w, "\n%s\n", dx7.AlgorithmDiagram(v.Algorithm, opts.Unicode))
		}
		fmt.Fprintf(w, "Feedback: %d\n", v.Feedback)

		fmt.Fprintln(w, "LFO")
		fmt.Fprintf(w, "  Wave: %s\n", v.LFOWave)
		fmt.Fprintf(w, "  Speed: %d\n", v.LFOSpeed)
		fmt.Fprintf(w, "  Delay: %d\n", v.LFODelay)
		fmt.Fprintf(w, "  Pitch Mod Depth: %d\n", v.LFOPitchModDepth)
		fmt.Fprintf(w, "  Amplitude Mod Depth: %d\n", v.LFOAMDepth)
		fmt.Fprintf(w, "  Key Sync: %s\n", dx7.OnOff(v.LFOSync))
		fmt.Fprintf(w, "  Pitch Mod Sensitivity: %d\n", v.LFOPitchModSensitivity)

		fmt.Fprintf(w, "Oscillator Key Sync: %s\n", dx7.OnOff(v.OscKeySync))

		fmt.Fprintln(w, "Pitch Envelope Generator")
		if opts.Compact {
			for i := 0; i < 4; i++ {
				fmt.Fprintf(w, "  Rate %d: %-3d   Level %d: %d\n", i+1, v.PitchEGRate[i], i+1, v.PitchEGLevel[i])
			}
		} else {
			for i := 0; i < 4; i++ {
				fmt.Fprintf(w, "  Rate %d: %d\n", i+1, v.PitchEGRate[i])
			}
			for i := 0; i < 4; i++ {
				fmt.Fprintf(w, "  Level %d: %d\n", i+1, v.PitchEGLevel[i])
			}
		}
		fmt.Fprintf(w, "Transpose: %d\n", v.Transpose-24)

		if opts.Compact {
			fprintOperatorTable(w, v)
			fmt.Fprintln(w)
			if opts.Patch == 0 {
				voiceSeparator(w)
				fmt.Fprint(w, "\n\n")
			}
		} else {
			for i := 0; i < 6; i++ {
				// Operators are stored in reverse order.
				fprintOperator(w, v.Op[5-i])
			}
			if opts.Patch == 0 {
				if num == sysex.NumVoices-1 {
					voiceSeparator(w)
					fmt.Fprint(w, "\n\n")
				} else {
					fmt.Fprint(w, "-------------------------------------------------\n\n")
				}
			}
		}
	}
}

func fprintOperator(w io.Writer, op *sysex.PackedOperator) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Operator: %d\n", op.Num)
	fmt.Fprintf(w, "  Amp Mod Sensitivity: %d\n", op.AmpModSensitivity)
	fmt.Fprintf(w, "  Oscillator Mode: %s\n", op.OscillatorMode)
	fmt.Fprintf(w, "  Frequency: %s\n", dx7.FormatFrequency(op.OscillatorMode, op.Frequency()))
	fmt.Fprintf(w, "  Detune: %+d\n", op.Detune-7)
	fmt.Fprintln(w, "  Envelope Generator")
	for i := 0; i < 4; i++ {
		fmt.Fprintf(w, "    Rate %d: %d\n", i+1, op.EGRate[i])
	}
	for i := 0; i < 4; i++ {
		fmt.Fprintf(w, "    Level %d: %d\n", i+1, op.EGLevel[i])
	}
	fmt.Fprintln(w, "  Keyboard Level Scaling")
	fmt.Fprintf(w, "    Breakpoint: %s\n", dx7.Breakpoint(op.LevelScalingBreakPoint))
	fmt.Fprintf(w, "    Left Curve: %s\n", op.ScaleLeftCurve)
	fmt.Fprintf(w, "    Right Curve: %s\n", op.ScaleRightCurve)
	fmt.Fprintf(w, "    Left Depth: %d\n", op.ScaleLeftDepth)
	fmt.Fprintf(w, "    Right Depth: %d\n", op.ScaleRightDepth)
	fmt.Fprintf(w, "  Keyboard Rate Scaling: %d\n", op.RateScale)
	fmt.Fprintf(w, "  Output Level: %d\n", op.OutputLevel)
	fmt.Fprintf(w, "  Key Velocity Sensitivity: %d\n", op.KeyVelocitySensitivity)
}

// fprintOperatorTable prints all six operators side by side, one
// parameter per row, operator 1 in the leftmost column.
func fprintOperatorTable(w io.Writer, v *sysex.PackedVoice) {
	row := func(name string, format func(*sysex.PackedOperator) string) {
		fmt.Fprintf(w, "\n%-22s |", name)
		if format == nil {
			for i := 0; i < 6; i++ {
				fmt.Fprint(w, "             |")
			}
			return
		}
		for i := 0; i < 6; i++ {
			fmt.Fprint(w, format(v.Op[5-i]))
		}
	}
	separator := func() {
		fmt.Fprint(w, "\n-----------------------+")
		for i := 0; i < 6; i++ {
			fmt.Fprint(w, "-------------+")
		}
	}

	fmt.Fprint(w, "\n                       |")
	for i := 1; i < 7; i++ {
		fmt.Fprintf(w, " Operator %d  |", i)
	}
	separator()
	row("Amplitude Mod Sens", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %11d |", op.AmpModSensitivity)
	})
	row("Oscillator Mode", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %11s |", op.OscillatorMode.StringCompact())
	})
	row("Frequency", func(op *sysex.PackedOperator) string {
		if op.OscillatorMode == dx7.OscMode_Fixed {
			return fmt.Sprintf("%9g Hz |", op.Frequency())
		}
		return fmt.Sprintf(" %11g |", op.Frequency())
	})
	row("Detune", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %+11d |", op.Detune-7)
	})
	separator()
	row("Envelope Generator", nil)
	for i := 0; i < 4; i++ {
		i := i
		row(fmt.Sprintf("  Rate %d : Level %d", i+1, i+1), func(op *sysex.PackedOperator) string {
			return fmt.Sprintf(" %4d : %-4d |", op.EGRate[i], op.EGLevel[i])
		})
	}
	separator()
	row("Keyboard Level Scaling", nil)
	row("  Breakpoint", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %11s |", dx7.Breakpoint(op.LevelScalingBreakPoint))
	})
	row("  Left Curve", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %11s |", op.ScaleLeftCurve)
	})
	row("  Right Curve", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %11s |", op.ScaleRightCurve)
	})
	row("  Left Depth", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %11d |", op.ScaleLeftDepth)
	})
	row("  Right Depth", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %11d |", op.ScaleRightDepth)
	})
	separator()
	row("Keyboard Rate Scaling", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %11d |", op.RateScale)
	})
	row("Output Level", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %11d |", op.OutputLevel)
	})
	row("Key Velocity Sens", func(op *sysex.PackedOperator) string {
		return fmt.Sprintf(" %11d |", op.KeyVelocitySensitivity)
	})
	separator()
	fmt.Fprintln(w)
}

// voiceSeparator keeps the separator one character longer than the
// operator table width.
func voiceSeparator(w io.Writer) {
	fmt.Fprint(w, "\n=========================")
	for i := 0; i < 6; i++ {
		fmt.Fprint(w, "==============")
	}
}
