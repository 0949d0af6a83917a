// Package textutil provides small string helpers for building output paths.
//
// SanitizeFileName makes an arbitrary string safe to use as a file name and
// SanitizeToken reduces a string to a lowercase [a-z0-9_-] token. Output name
// patterns such as "closecaption_{language}.dat" are expanded with
// ExpandPattern, which sanitizes every substituted value.
package textutil
