// Package caption holds the in-memory caption set a compile operates on: an
// informational language name plus tokens mapped to caption text.
//
// Tokens are keyed case-sensitively and keep their first declaration
// position; a later Set for the same token replaces the text in place. Case
// folding for sorting and hashing belongs to the encoder, not to this type.
package caption
