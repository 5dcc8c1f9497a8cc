// Package slots owns the clipboard slot collection and its persistence.
//
// The Service is the single writer of the collection. Saves are
// fire-and-forget and never start before the initial Load has resolved, so
// defaults can not overwrite a slower-loading slot file.
package slots
