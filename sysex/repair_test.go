package sysex

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRepairIdempotent(t *testing.T) {
	orig := canonicalBankBytes()
	path := writeTemp(t, "bank.syx", orig)
	b := mustBank(t, orig)

	if err := b.Repair(path, RepairOptions{}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, orig) {
		t.Error("repairing a canonical bank changed its bytes")
	}
}

func TestRepairConvergence(t *testing.T) {
	data := canonicalBankBytes()
	copy(data[HeaderSize:], packedVoiceBytes("BROKEN"))
	data[2] = 0x30 // bad sub-status
	data[3] = 0x01 // bad format id
	data[4] = 0x7F // bad declared size
	data[HeaderSize+BankPayloadSize] = 0x11
	path := writeTemp(t, "broken.syx", data)

	b := mustBank(t, data)
	if r := b.Validate(); !r.NeedsRepair {
		t.Fatal("fixture is not broken enough")
	}
	if err := b.Repair(path, RepairOptions{}); err != nil {
		t.Fatal(err)
	}

	fixed, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	r := fixed.Bank.Validate()
	if !r.Pass() || r.NeedsRepair {
		t.Errorf("repaired bank still deviates: fatal=%q diags=%v", r.Fatal, r.Diagnostics)
	}
	// Voice data must survive the repair untouched.
	v, err := fixed.Bank.Voice(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(v.Name[:6]); got != "BROKEN" {
		t.Errorf("voice payload changed: name = %q", got)
	}
}

func TestRepairBackup(t *testing.T) {
	data := canonicalBankBytes()
	data[HeaderSize+BankPayloadSize] = 0x22
	path := writeTemp(t, "backed.syx", data)

	b := mustBank(t, data)
	if err := b.Repair(path, RepairOptions{Backup: true}); err != nil {
		t.Fatal(err)
	}
	backup, err := os.ReadFile(path + BackupSuffix)
	if err != nil {
		t.Fatalf("backup not created: %v", err)
	}
	if !bytes.Equal(backup, data) {
		t.Error("backup does not hold the pre-repair bytes")
	}
	fixed, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if fixed[HeaderSize+BankPayloadSize] != 0 {
		t.Error("checksum not rewritten")
	}
}

func TestRepairAbortsWhenBackupFails(t *testing.T) {
	b := mustBank(t, canonicalBankBytes())
	// No file exists at the target, so the backup rename must fail and
	// the corrected buffer must never hit the disk.
	path := filepath.Join(t.TempDir(), "missing.syx")
	if err := b.Repair(path, RepairOptions{Backup: true}); err == nil {
		t.Fatal("expected backup failure")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file was written despite the failed backup")
	}
}

func TestRepairMutatesBufferEvenWhenWriteFails(t *testing.T) {
	data := canonicalBankBytes()
	data[3] = 0x01
	data[HeaderSize+BankPayloadSize] = 0x33
	b := mustBank(t, data)

	// Writing into a missing directory fails after canonicalization.
	err := b.Repair(filepath.Join(t.TempDir(), "no", "such", "dir.syx"), RepairOptions{})
	if err == nil {
		t.Fatal("expected write failure")
	}
	if r := b.Validate(); !r.Pass() || r.NeedsRepair {
		t.Errorf("in-memory buffer not canonicalized: fatal=%q diags=%v", r.Fatal, r.Diagnostics)
	}
}
