package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ytget/solarclip/internal/model"
	"github.com/ytget/solarclip/internal/platform"
)

// FilePersister stores slots as a JSON array in a single file.
type FilePersister struct {
	path string
}

// NewFilePersister creates a persister for path
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Path returns the slot file location
func (p *FilePersister) Path() string {
	return p.path
}

// Load reads the slot file. A missing or unparsable file yields ErrNoData.
func (p *FilePersister) Load(ctx context.Context) (model.Slots, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s does not exist", ErrNoData, p.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.path, err)
	}

	var slots model.Slots
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrNoData, p.path, err)
	}
	return slots, nil
}

// Save replaces the slot file with the full collection
func (p *FilePersister) Save(ctx context.Context, slots model.Slots) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if slots == nil {
		slots = model.Slots{}
	}
	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slots: %w", err)
	}
	if err := platform.WriteFileAtomic(p.path, data); err != nil {
		return fmt.Errorf("write %s: %w", p.path, err)
	}
	return nil
}
