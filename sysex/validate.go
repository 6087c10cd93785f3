package sysex

import "fmt"

// Report is the result of structurally validating a bank dump.
//
// A fatal deviation (wrong framing or vendor id) stops validation at the
// first hit; the buffer is not this format and repair is never offered.
// Recoverable deviations (sub-status, format id, declared size,
// checksum) all accumulate diagnostics and set NeedsRepair.
type Report struct {
	Fatal       string   `json:"fatal,omitempty"`
	Diagnostics []string `json:"diagnostics,omitempty"`
	NeedsRepair bool     `json:"needs_repair"`
}

// Pass reports whether the buffer is readable as a bank dump. A passing
// report may still carry recoverable diagnostics.
func (r *Report) Pass() bool {
	return r.Fatal == ""
}

func (r *Report) fatalf(f string, args ...interface{}) *Report {
	r.Fatal = fmt.Sprintf(f, args...)
	return r
}

func (r *Report) warnf(f string, args ...interface{}) {
	r.Diagnostics = append(r.Diagnostics, fmt.Sprintf(f, args...))
	r.NeedsRepair = true
}

// Validate checks envelope markers, vendor id, sub-status, format id,
// declared size and checksum, in that order. Checks after a fatal
// failure are not evaluated.
func (b *Bank) Validate() *Report {
	r := &Report{}
	d := b.data
	if d[0] != SysexStart {
		return r.fatalf("did not find sysex start F0")
	}
	if d[1] != YamahaID {
		return r.fatalf("did not find Yamaha ID 0x43")
	}
	// Sub-status lives in the high nibble; the channel below it is free.
	if d[2]&0xF0 != 0 {
		r.warnf("did not find substatus 0 (substatus=%d)", d[2]>>4)
	}
	if d[3] != FormatBank {
		r.warnf("did not find format 9 (32 voices)")
	}
	if d[4] != BankSizeMSB || d[5] != BankSizeLSB {
		r.warnf("declared data byte count is not 4096 (sizeMSB=0x%X, sizeLSB=0x%X)", d[4], d[5])
	}
	if d[BankFileSize-1] != SysexEnd {
		return r.fatalf("did not find sysex end F7")
	}
	if sum := Checksum(b.Payload()); sum != b.StoredChecksum() {
		r.warnf("checksum failed: should have been 0x%X", sum)
	}
	return r
}
