package sysex

import (
	"os"

	"github.com/pkg/errors"
)

// BackupSuffix is appended to the original filename when a repair keeps
// a backup.
const BackupSuffix = ".ORIG"

// RepairOptions controls how Repair persists the corrected buffer.
// Whether to repair at all is the caller's decision; any interactive
// confirmation happens before Repair is invoked.
type RepairOptions struct {
	// Backup renames the original file to <path>.ORIG before writing.
	// If the rename fails the repair is aborted and nothing is written.
	Backup bool
}

// Canonicalize forces the envelope to its canonical byte values and
// recomputes the checksum over the payload. Only the header, checksum
// and end marker change; voice data is left alone.
func (b *Bank) Canonicalize() {
	d := b.data
	d[0] = SysexStart
	d[1] = YamahaID
	d[2] = 0 // sub-status and channel
	d[3] = FormatBank
	d[4] = BankSizeMSB
	d[5] = BankSizeLSB
	d[HeaderSize+BankPayloadSize] = Checksum(b.Payload())
	d[BankFileSize-1] = SysexEnd
}

// Repair canonicalizes the in-memory buffer and rewrites path with the
// corrected bank. The buffer is mutated even when the disk write fails.
func (b *Bank) Repair(path string, opts RepairOptions) error {
	b.Canonicalize()

	if opts.Backup {
		if err := os.Rename(path, path+BackupSuffix); err != nil {
			return errors.Wrap(err, "file could not be renamed for backup, fix aborted")
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, "can't open the file for writing: %s", path)
	}
	defer f.Close()
	if _, err := f.Write(b.data); err != nil {
		return errors.Wrapf(err, "error writing to file: %s", path)
	}
	return nil
}
