package clip

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Available() bool { return true }

func (f *fakeBackend) WriteText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

func collectResults(s *Service) func() []CopyResult {
	var mu sync.Mutex
	var results []CopyResult
	s.SetResultCallback(func(r CopyResult) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	})
	return func() []CopyResult {
		mu.Lock()
		defer mu.Unlock()
		return append([]CopyResult(nil), results...)
	}
}

func TestCopyWritesContent(t *testing.T) {
	backend := &fakeBackend{}
	s := NewService(backend)
	results := collectResults(s)

	s.Copy(1, "hello")
	s.Wait()

	assert.Equal(t, []string{"hello"}, backend.writes)
	got := results()
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].SlotID)
	assert.Equal(t, "hello", got[0].Content)
	assert.NoError(t, got[0].Err)
	assert.NotEmpty(t, got[0].OpID)
}

func TestCopyEmptyContent(t *testing.T) {
	backend := &fakeBackend{}
	s := NewService(backend)

	s.Copy(2, "")
	s.Wait()

	assert.Equal(t, []string{""}, backend.writes)
}

func TestCopyFailureIsReported(t *testing.T) {
	backend := &fakeBackend{err: errors.New("locked")}
	s := NewService(backend)
	results := collectResults(s)

	s.Copy(3, "secret")
	s.Wait()

	got := results()
	require.Len(t, got, 1)
	assert.EqualError(t, got[0].Err, "locked")
	assert.Equal(t, "secret", got[0].Content)
}

func TestHeadlessBackend(t *testing.T) {
	b := &headlessBackend{reason: ErrUnavailable}
	s := NewService(b)
	results := collectResults(s)

	assert.False(t, s.Available())
	assert.Equal(t, "headless", s.BackendName())

	s.Copy(1, "x")
	s.Wait()

	got := results()
	require.Len(t, got, 1)
	assert.ErrorIs(t, got[0].Err, ErrUnavailable)
}

func TestCopyWithoutCallback(t *testing.T) {
	backend := &fakeBackend{}
	s := NewService(backend)

	for i := 0; i < 10; i++ {
		s.Copy(i, "x")
	}
	s.Wait()

	assert.Len(t, backend.writes, 10)
}
