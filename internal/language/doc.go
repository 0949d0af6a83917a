// Package language normalizes the language name a caption source declares.
//
// Caption sources name their language with engine-style words ("english",
// "schinese", "brazilian"). This package maps those words, ISO 639 codes and
// display names to one canonical caption name, used when naming output files,
// and to a BCP 47 tag recorded in build history.
package language
