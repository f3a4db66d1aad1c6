package joyvalue

import (
	"bufio"
	"os"

	"github.com/google/uuid"
)

// FileHandle wraps a non-owning reference to an external stream (§3: File is
// the one variant that does not own its payload — closing is explicit via
// fclose). The embedded id is cosmetic: it lets two distinct open handles
// print distinguishable debug names instead of colliding on a bare pointer
// address, using github.com/google/uuid for unique identifiers the way the
// rest of this codebase mints IDs.
type FileHandle struct {
	id     string
	File   *os.File
	Reader *bufio.Reader
	Writer *bufio.Writer
	Err    bool
	EOF    bool
	Closed bool
}

// NewFileHandleValue builds a File value around an open *os.File.
func NewFileHandleValue(f *os.File) Value {
	return NewFile(FileHandle{
		id:     uuid.NewString(),
		File:   f,
		Reader: bufio.NewReader(f),
		Writer: bufio.NewWriter(f),
	})
}

// ShortID returns the first 8 hex characters of the handle's id, used only
// by Display for a stable, collision-resistant debug label.
func (h *FileHandle) ShortID() string {
	if h == nil || len(h.id) < 8 {
		return "????????"
	}
	return h.id[:8]
}
