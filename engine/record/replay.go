// Package record saves the input of a session so it can be played back
// frame for frame. Recordings are lz4-compressed.
package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// Recorder streams input commands to a file
type Recorder struct {
	Header   Header
	Commands []InputCommand

	file   *os.File
	zw     *lz4.Writer
	writer *bufio.Writer
}

// NewRecorder creates a recording file and writes its header
func NewRecorder(path string, h Header) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create recording: %w", err)
	}
	r := newRecorder(f, h)
	r.file = f
	if err := h.Encode(r.writer); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	return r, nil
}

func newRecorder(w io.Writer, h Header) *Recorder {
	zw := lz4.NewWriter(w)
	return &Recorder{
		Header: h,
		zw:     zw,
		writer: bufio.NewWriter(zw),
	}
}

// Record writes a command
func (r *Recorder) Record(cmd InputCommand) error {
	r.Commands = append(r.Commands, cmd)
	return cmd.Encode(r.writer)
}

// Close flushes the compressor and closes the file
func (r *Recorder) Close() error {
	var errs []error
	if r.writer != nil {
		errs = append(errs, r.writer.Flush())
	}
	if r.zw != nil {
		errs = append(errs, r.zw.Close())
	}
	if r.file != nil {
		errs = append(errs, r.file.Close())
	}
	return errors.Join(errs...)
}

// Replay is a loaded recording
type Replay struct {
	Header   Header
	Commands []InputCommand
	next     int
}

// LoadReplay reads a recording file
func LoadReplay(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	rp, err := ReadReplay(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rp, nil
}

// ReadReplay decodes a recording from r
func ReadReplay(r io.Reader) (*Replay, error) {
	reader := bufio.NewReader(lz4.NewReader(r))

	replay := &Replay{}
	if err := replay.Header.Decode(reader); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for {
		var cmd InputCommand
		if err := cmd.Decode(reader); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read command %d: %w", len(replay.Commands), err)
		}
		replay.Commands = append(replay.Commands, cmd)
	}
	return replay, nil
}

// CommandsForFrame returns the commands due at frame. Frames must be
// asked for in increasing order.
func (r *Replay) CommandsForFrame(frame uint64) []InputCommand {
	start := r.next
	for r.next < len(r.Commands) && r.Commands[r.next].Frame <= frame {
		r.next++
	}
	return r.Commands[start:r.next]
}

// Done reports whether every command has been handed out
func (r *Replay) Done() bool {
	return r.next >= len(r.Commands)
}
