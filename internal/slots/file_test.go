package slots

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/solarclip/internal/model"
)

func TestFilePersisterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "slots.json")
	p := NewFilePersister(path)
	ctx := context.Background()

	want := model.DefaultSlots(5).
		UpdateField(1, model.SlotFieldContent, "hello").
		UpdateField(3, model.SlotFieldLabel, "X").
		UpdateField(5, model.SlotFieldContent, "multi\nline \"quoted\"")

	require.NoError(t, p.Save(ctx, want))

	got, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFilePersisterWritesJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")
	p := NewFilePersister(path)

	require.NoError(t, p.Save(context.Background(), model.DefaultSlots(1)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"label":"Slot 1","content":""}]`, string(data))
}

func TestFilePersisterMissingFile(t *testing.T) {
	p := NewFilePersister(filepath.Join(t.TempDir(), "missing.json"))

	_, err := p.Load(context.Background())
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestFilePersisterCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFilePersister(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestFilePersisterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewFilePersister(filepath.Join(t.TempDir(), "slots.json"))
	assert.ErrorIs(t, p.Save(ctx, model.DefaultSlots(1)), context.Canceled)
	_, err := p.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
