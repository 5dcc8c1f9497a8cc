// Package drag converts raw pointer movement into position and size updates
// for draggable, resizable surfaces, and tells drags apart from clicks.
package drag
