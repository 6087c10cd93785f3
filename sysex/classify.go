package sysex

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Shape classifies a raw input file purely by its byte length.
type Shape int

const (
	ShapeTooSmall Shape = iota
	ShapeFullBank
	ShapeHeaderlessBank
	ShapeFullSingleVoice
	ShapeTooBig
)

func (s Shape) String() string {
	switch s {
	case ShapeFullBank:
		return "bank dump"
	case ShapeHeaderlessBank:
		return "headerless bank dump"
	case ShapeFullSingleVoice:
		return "single voice dump"
	case ShapeTooBig:
		return "too big"
	case ShapeTooSmall:
		return "too small"
	}
	return "unknown"
}

// ClassifySize maps an exact file length to its dump shape. A 155-byte
// headerless single voice payload is a defined size but not an accepted
// input shape, so it falls through to ShapeTooSmall like every other
// unknown length below the bank dump size.
func ClassifySize(n int) Shape {
	switch {
	case n == BankFileSize:
		return ShapeFullBank
	case n == BankPayloadSize:
		return ShapeHeaderlessBank
	case n == SingleFileSize:
		return ShapeFullSingleVoice
	case n > BankFileSize:
		return ShapeTooBig
	default:
		return ShapeTooSmall
	}
}

// File is one classified and ingested dump file. Exactly one of Bank
// and Single is set for the recognized shapes. Diagnostic state is per
// ingestion; concurrent callers each get their own File.
type File struct {
	Path  string
	Shape Shape

	Bank   *Bank
	Single *SingleVoice

	// SoftError marks a recoverable condition found during ingestion
	// (currently only the headerless shape), NeedsRepair that the
	// buffer deviates from the canonical layout.
	SoftError   bool
	NeedsRepair bool
	Diagnostics []string
}

// ReadFile ingests one dump file: reads it fully into memory,
// classifies it by length and wraps the buffer in the matching type.
// Headerless banks get a synthesized canonical envelope and are
// unconditionally flagged as needing repair. Unrecognized sizes and
// short reads are errors; nothing is partially decoded.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open the file")
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "can't stat the file")
	}

	f := &File{Path: path, Shape: ClassifySize(int(st.Size()))}
	switch f.Shape {
	case ShapeTooSmall:
		return nil, errors.Errorf("file too small (%d bytes)", st.Size())
	case ShapeTooBig:
		return nil, errors.Errorf("file too big (%d bytes)", st.Size())
	}

	buf := make([]byte, st.Size())
	if _, err := io.ReadFull(fh, buf); err != nil {
		return nil, errors.Wrap(err, "file read error")
	}

	switch f.Shape {
	case ShapeFullBank:
		f.Bank, err = NewBank(buf)
	case ShapeHeaderlessBank:
		f.Bank, err = NewHeaderlessBank(buf)
		f.SoftError = true
		f.NeedsRepair = true
		f.Diagnostics = append(f.Diagnostics,
			errors.Errorf("file seems to be a headerless dump (%d bytes)", len(buf)).Error())
	case ShapeFullSingleVoice:
		f.Single, err = NewSingleVoice(buf)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Verify runs the validator matching the file's shape and folds the
// outcome into the file's diagnostic state. Headerless banks skip
// structural validation: their envelope was synthesized, not read.
// For full banks a fatal deviation is returned as an error.
func (f *File) Verify() error {
	switch {
	case f.Single != nil:
		if code := f.Single.Validate(); code != 0 {
			return errors.Errorf("not a well-formed single voice dump (error code 0x%02X)", uint8(code))
		}
	case f.Bank.Headerless():
		// already flagged by ReadFile
	default:
		r := f.Bank.Validate()
		if !r.Pass() {
			return errors.New(r.Fatal)
		}
		if r.NeedsRepair {
			f.SoftError = true
			f.NeedsRepair = true
			f.Diagnostics = append(f.Diagnostics, r.Diagnostics...)
		}
	}
	return nil
}
