package clip

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// CopyResult describes a finished copy
type CopyResult struct {
	OpID    string
	SlotID  int
	Content string
	Err     error
}

// Service performs clipboard writes off the UI thread.
type Service struct {
	backend Backend

	mu       sync.Mutex
	onResult func(CopyResult)

	writeMu sync.Mutex
	pending sync.WaitGroup
}

// NewService creates a copy service over backend
func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// Available reports whether the backend can write
func (s *Service) Available() bool {
	return s.backend.Available()
}

// BackendName returns the backend name for logs and the banner
func (s *Service) BackendName() string {
	return s.backend.Name()
}

// SetResultCallback sets the callback invoked after each copy, on the
// copying goroutine.
func (s *Service) SetResultCallback(callback func(CopyResult)) {
	s.mu.Lock()
	s.onResult = callback
	s.mu.Unlock()
}

// Copy writes content in the background. Empty content is written as an
// empty string. Failures are logged and reported through the result
// callback.
func (s *Service) Copy(slotID int, content string) {
	res := CopyResult{OpID: newOperationID(), SlotID: slotID, Content: content}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		s.writeMu.Lock()
		res.Err = s.backend.WriteText(content)
		s.writeMu.Unlock()

		if res.Err != nil {
			slog.Error("clipboard write failed", "op", res.OpID, "slot", slotID, "backend", s.backend.Name(), "err", res.Err)
		} else {
			slog.Debug("slot copied", "op", res.OpID, "slot", slotID, "bytes", len(content))
		}

		s.mu.Lock()
		callback := s.onResult
		s.mu.Unlock()
		if callback != nil {
			callback(res)
		}
	}()
}

// Wait blocks until every pending copy has finished
func (s *Service) Wait() {
	s.pending.Wait()
}

func newOperationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
