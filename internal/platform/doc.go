package platform

// Package platform contains OS integration glue: config directory discovery,
// atomic file writes, revealing files in the system file manager and the
// overlay window collaborator that toggles click-through and topmost state.
