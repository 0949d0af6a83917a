// Package keyvalues parses Valve KeyValues text, the brace-delimited
// key/value format caption sources are written in.
//
// A document is a sequence of pairs. A pair is a key followed by either a
// value or a brace-delimited block of nested pairs. Keys and values may be
// quoted ("...") or bare words; quoted strings understand \n, \t, \\ and \"
// and keep any other backslash sequence verbatim. Line comments start with
// //. Platform conditionals such as [$WIN32] after a pair are accepted and
// ignored.
//
// Parse keeps every pair in source order, duplicates included; callers decide
// how repeated keys resolve.
package keyvalues
