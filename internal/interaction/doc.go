// Package interaction tracks which UI regions currently claim the pointer and
// derives whether the overlay window should capture mouse input or let it
// pass through to the windows underneath.
package interaction
