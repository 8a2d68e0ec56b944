// Package terminfo decodes compiled terminfo entries and interprets the
// parameterized string escape language used by their string
// capabilities.
//
// # Overview
//
// A compiled terminfo entry is a small binary table: a names header, a
// block of boolean flags, a block of signed numbers, and a block of
// string offsets into a trailing string table. Decode reads that format
// (both the legacy 16-bit slot width and the extended 32-bit width, plus
// the optional extended-capabilities section some entries carry) into a
// CapabilitySet, a name-keyed map of decoded Value.
//
// Many string capabilities are themselves tiny programs in a stack-based
// escape language (cursor_address is the canonical example: "move the
// cursor to row %p1%d, column %p2%d"). Expand and WriteExpand interpret
// that language against a set of call parameters and a persistent
// Context of static and dynamic variables.
//
// # Basic Usage
//
//	data, _ := os.ReadFile("/usr/share/terminfo/x/xterm-256color")
//	db, _ := terminfo.FromBuffer(data)
//
//	if db.Bool(terminfo.AutoRightMargin) {
//	    // terminal wraps at the right margin
//	}
//
//	cup, _ := db.String(terminfo.CursorAddress)
//	seq, _ := terminfo.Expand(cup, []terminfo.Parameter{
//	    terminfo.NumberParam(4),
//	    terminfo.NumberParam(10),
//	}, &terminfo.Context{})
//	os.Stdout.Write(seq) // moves the cursor to row 4, column 10
//
// FromEnv and FromName locate a compiled entry the way ncurses does,
// searching $TERMINFO (or $HOME/.terminfo when it is unset), $TERMINFO_DIRS, and the
// well-known system terminfo directories.
//
// # Scope
//
// This package only reads compiled entries and expands their string
// capabilities to bytes; it does not write compiled entries, parse
// terminfo(5) source text, speak termcap, or perform any terminal I/O
// beyond handing expanded bytes to a caller-supplied io.Writer.
package terminfo
