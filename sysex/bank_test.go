package sysex

import (
	"bytes"
	"testing"
)

// bankWithVoices builds a canonical bank whose first len(voices) slots
// hold the given packed voice records; the rest stay zero. The checksum
// is recomputed so the bank validates cleanly.
func bankWithVoices(t *testing.T, voices ...[]byte) *Bank {
	t.Helper()
	data := canonicalBankBytes()
	for i, v := range voices {
		if len(v) != PackedVoiceSize {
			t.Fatalf("voice fixture %d is %d bytes", i, len(v))
		}
		copy(data[HeaderSize+i*PackedVoiceSize:], v)
	}
	data[HeaderSize+BankPayloadSize] = Checksum(data[HeaderSize : HeaderSize+BankPayloadSize])
	return mustBank(t, data)
}

func TestBankVoiceDecode(t *testing.T) {
	b := bankWithVoices(t, packedVoiceBytes("SLOT ONE"), packedVoiceBytes("SLOT TWO"))
	v, err := b.Voice(1)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(v.Name[:8]); got != "SLOT TWO" {
		t.Errorf("voice 2 name = %q", got)
	}
	if _, err := b.Voice(NumVoices); err == nil {
		t.Error("out of range voice index accepted")
	}
	voices, err := b.Voices()
	if err != nil {
		t.Fatal(err)
	}
	if len(voices) != NumVoices {
		t.Errorf("decoded %d voices", len(voices))
	}
}

func TestBankBufferIsCopied(t *testing.T) {
	data := canonicalBankBytes()
	b := mustBank(t, data)
	data[0] = 0x00
	if b.Bytes()[0] != SysexStart {
		t.Error("bank shares the caller's buffer")
	}
}

func TestFindDuplicatesIgnoresName(t *testing.T) {
	one := packedVoiceBytes("NAME ONE")
	two := packedVoiceBytes("NAME TWO")
	three := packedVoiceBytes("NAME ONE")
	three[0] = 42 // one EG rate byte differs
	b := bankWithVoices(t, one, two, three)

	dupes := b.FindDuplicates()
	// Slots 0 and 1 differ only in their names; slot 2 differs in a
	// parameter byte. Slots 3..31 are all-zero and pair up with each
	// other but with none of the three fixtures.
	want := DuplicatePair{I: 0, J: 1}
	if len(dupes) == 0 || dupes[0] != want {
		t.Fatalf("dupes = %v, want leading pair %v", dupes, want)
	}
	for _, d := range dupes[1:] {
		if d.I < 3 || d.J < 3 {
			t.Errorf("unexpected pair %v involves a fixture slot", d)
		}
		if d.J <= d.I {
			t.Errorf("pair %v not in ascending order", d)
		}
	}
}

func TestFindDuplicatesOrdering(t *testing.T) {
	b := mustBank(t, canonicalBankBytes())
	dupes := b.FindDuplicates()
	// An all-zero bank is one big equivalence class: 32*31/2 pairs.
	if len(dupes) != NumVoices*(NumVoices-1)/2 {
		t.Fatalf("got %d pairs", len(dupes))
	}
	prev := DuplicatePair{I: -1, J: -1}
	for _, d := range dupes {
		if d.I > d.J {
			t.Fatalf("pair %v not ordered", d)
		}
		if d.I < prev.I || (d.I == prev.I && d.J <= prev.J) {
			t.Fatalf("pairs not in ascending (i, j) order: %v after %v", d, prev)
		}
		prev = d
	}
}

func TestHeaderlessBankSynthesizesEnvelope(t *testing.T) {
	payload := make([]byte, BankPayloadSize)
	copy(payload, packedVoiceBytes("HEADERLESS"))
	b, err := NewHeaderlessBank(payload)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Headerless() {
		t.Error("headerless flag not set")
	}
	if !bytes.Equal(b.Payload(), payload) {
		t.Error("payload changed during ingestion")
	}
	r := b.Validate()
	if !r.Pass() || r.NeedsRepair {
		t.Errorf("synthesized envelope is not canonical: fatal=%q diags=%v", r.Fatal, r.Diagnostics)
	}
}
