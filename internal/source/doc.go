// Package source loads caption source files into caption sets.
//
// A source file is a KeyValues document of the form
//
//	"lang"
//	{
//		"Language" "English"
//		"Tokens"
//		{
//			"Token.Name" "Caption text"
//		}
//	}
//
// Engine tools usually save these files as UTF-16LE with a byte order mark,
// but UTF-8 sources are common too. Decode sniffs the encoding, Parse maps
// the document onto a caption.Set, and Load does both for a path.
package source
