package sysex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClassifySizeBoundaries(t *testing.T) {
	for _, tt := range []struct {
		n    int
		want Shape
	}{
		{BankFileSize, ShapeFullBank},
		{BankFileSize - 1, ShapeTooSmall},
		{BankFileSize + 1, ShapeTooBig},
		{BankPayloadSize, ShapeHeaderlessBank},
		{BankPayloadSize - 1, ShapeTooSmall},
		{BankPayloadSize + 1, ShapeTooSmall},
		{SingleFileSize, ShapeFullSingleVoice},
		{SingleFileSize - 1, ShapeTooSmall},
		{SingleFileSize + 1, ShapeTooSmall},
		// The headerless single voice size exists in the layout model
		// but is not an accepted input shape.
		{VoiceSize, ShapeTooSmall},
		{0, ShapeTooSmall},
		{1 << 20, ShapeTooBig},
	} {
		if got := ClassifySize(tt.n); got != tt.want {
			t.Errorf("ClassifySize(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFileFullBank(t *testing.T) {
	path := writeTemp(t, "bank.syx", canonicalBankBytes())
	f, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Shape != ShapeFullBank || f.Bank == nil || f.Single != nil {
		t.Fatalf("shape = %v, bank = %v, single = %v", f.Shape, f.Bank != nil, f.Single != nil)
	}
	if f.SoftError || f.NeedsRepair {
		t.Errorf("clean bank flagged: soft=%v repair=%v", f.SoftError, f.NeedsRepair)
	}
	if err := f.Verify(); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestReadFileHeaderlessBank(t *testing.T) {
	payload := make([]byte, BankPayloadSize)
	copy(payload, packedVoiceBytes("RAW BANK"))
	path := writeTemp(t, "raw.syx", payload)

	f, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Shape != ShapeHeaderlessBank {
		t.Fatalf("shape = %v", f.Shape)
	}
	if !f.SoftError || !f.NeedsRepair || len(f.Diagnostics) == 0 {
		t.Errorf("headerless ingestion must flag repair unconditionally: %+v", f)
	}
	if got := f.Bank.Bytes()[0]; got != SysexStart {
		t.Errorf("synthesized header missing, first byte 0x%02X", got)
	}
	if err := f.Verify(); err != nil {
		t.Errorf("Verify must skip structural checks for synthesized envelopes: %v", err)
	}
}

func TestReadFileSingleVoice(t *testing.T) {
	path := writeTemp(t, "voice.syx", canonicalSingleBytes())
	f, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Shape != ShapeFullSingleVoice || f.Single == nil || f.Bank != nil {
		t.Fatalf("shape = %v", f.Shape)
	}
	if err := f.Verify(); err != nil {
		t.Errorf("Verify: %v", err)
	}
	if _, err := f.Single.Voice(); err != nil {
		t.Errorf("Voice: %v", err)
	}
}

func TestReadFileUnrecognizedSizes(t *testing.T) {
	small := writeTemp(t, "small.syx", make([]byte, 100))
	if _, err := ReadFile(small); err == nil {
		t.Error("100-byte file accepted")
	}
	big := writeTemp(t, "big.syx", make([]byte, BankFileSize+1))
	if _, err := ReadFile(big); err == nil {
		t.Error("oversized file accepted")
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.syx")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestVerifyFatalBank(t *testing.T) {
	data := canonicalBankBytes()
	data[1] = 0x42
	path := writeTemp(t, "badvendor.syx", data)
	f, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Verify(); err == nil {
		t.Error("fatal structural deviation not surfaced")
	}
}

func TestVerifyRecoverableBank(t *testing.T) {
	data := canonicalBankBytes()
	data[HeaderSize+BankPayloadSize] = 0x01
	path := writeTemp(t, "badsum.syx", data)
	f, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Verify(); err != nil {
		t.Fatalf("recoverable deviation must not be terminal: %v", err)
	}
	if !f.SoftError || !f.NeedsRepair || len(f.Diagnostics) != 1 {
		t.Errorf("diagnostic state = %+v", f)
	}
}

func TestVerifyMalformedSingle(t *testing.T) {
	data := canonicalSingleBytes()
	data[SingleFileSize-1] = 0
	path := writeTemp(t, "badsingle.syx", data)
	f, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Verify(); err == nil {
		t.Error("malformed single voice dump not surfaced")
	}
}
