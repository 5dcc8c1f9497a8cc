package model

// Package model defines domain data structures used across the app: clipboard
// slots, the slot collection, theme mode and widget visibility. Collections are
// value types; updates return a new collection so callers can hand snapshots
// to background persistence without sharing mutable state.
