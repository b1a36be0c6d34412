package record

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/1siamBot/firewater/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordThenReplayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.fwr")
	h := Header{Seed: 99, Step: 1.0 / 60}

	rec, err := NewRecorder(path, h)
	require.NoError(t, err)
	require.NoError(t, rec.Record(InputCommand{Frame: 10, Type: core.EvtToggle}))
	require.NoError(t, rec.Record(InputCommand{Frame: 10, Type: core.EvtToggleHUD}))
	require.NoError(t, rec.Record(InputCommand{Frame: 250, Type: core.EvtToggle}))
	require.NoError(t, rec.Close())

	rp, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, h, rp.Header)
	assert.Equal(t, rec.Commands, rp.Commands)

	assert.Empty(t, rp.CommandsForFrame(0))
	assert.Empty(t, rp.CommandsForFrame(9))
	at10 := rp.CommandsForFrame(10)
	require.Len(t, at10, 2)
	assert.Equal(t, core.EvtToggle, at10[0].Type)
	assert.False(t, rp.Done())
	assert.Empty(t, rp.CommandsForFrame(100))
	// a skipped frame still delivers what is due
	assert.Len(t, rp.CommandsForFrame(300), 1)
	assert.True(t, rp.Done())
}

func TestReplayRejectsGarbage(t *testing.T) {
	var buf bytes.Buffer
	rec := newRecorder(&buf, Header{})
	_, err := rec.writer.WriteString("nope, not a header")
	require.NoError(t, err)
	require.NoError(t, rec.Close())

	_, err = ReadReplay(&buf)
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestEmptyRecording(t *testing.T) {
	var buf bytes.Buffer
	rec := newRecorder(&buf, Header{Seed: 5})
	require.NoError(t, rec.Header.Encode(rec.writer))
	require.NoError(t, rec.Close())

	rp, err := ReadReplay(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(5), rp.Header.Seed)
	assert.Empty(t, rp.Commands)
	assert.True(t, rp.Done())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.fwr"))
	assert.Error(t, err)
}
