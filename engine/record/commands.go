package record

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/1siamBot/firewater/engine/core"
)

// magic starts every recording
var magic = [4]byte{'F', 'W', 'R', 'C'}

const version uint8 = 1

var ErrBadHeader = errors.New("record: not a firewater recording")

// Header describes how the recorded session was simulated
type Header struct {
	Seed int64
	Step float64 // fixed frame step in seconds, 0 for wall clock
}

// InputCommand is one input event applied at the start of Frame
type InputCommand struct {
	Frame uint64
	Type  core.EventType
}

// Encode writes the header to binary
func (h *Header) Encode(w io.Writer) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, version); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.Seed); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, h.Step)
}

// Decode reads a header from binary
func (h *Header) Decode(r io.Reader) error {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return err
	}
	if m != magic {
		return ErrBadHeader
	}
	var v uint8
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return err
	}
	if v != version {
		return ErrBadHeader
	}
	if err := binary.Read(r, binary.LittleEndian, &h.Seed); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &h.Step)
}

// Encode writes a command to binary
func (c *InputCommand) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, c.Frame); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint16(c.Type))
}

// Decode reads a command from binary
func (c *InputCommand) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &c.Frame); err != nil {
		return err
	}
	var t uint16
	if err := binary.Read(r, binary.LittleEndian, &t); err != nil {
		return err
	}
	c.Type = core.EventType(t)
	return nil
}
