package terminfo

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// Magic numbers selecting the slot width for the rest of a compiled entry.
var (
	magicLegacy   = [2]byte{0x1A, 0x01} // 16-bit numeric/string-offset slots
	magicExtended = [2]byte{0x1E, 0x02} // 32-bit numeric/string-offset slots
)

// reader walks a compiled terminfo buffer left to right, tracking how
// much has been consumed. It never panics: every read is bounds-checked
// and reports ErrParse on a short buffer.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) remaining() int { return len(r.buf) - r.pos }

func (r *reader) take(n int) ([]byte, bool) {
	if n < 0 || r.remaining() < n {
		return nil, false
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

// int16 reads one little-endian signed 16-bit header count.
func (r *reader) int16() (int16, bool) {
	b, ok := r.take(2)
	if !ok {
		return 0, false
	}
	return int16(binary.LittleEndian.Uint16(b)), true
}

// slot reads one little-endian signed numeric/string-offset slot at the
// entry's configured width (16 or 32 bits).
func (r *reader) slot(width int) (int32, bool) {
	if width == 16 {
		v, ok := r.int16()
		return int32(v), ok
	}
	b, ok := r.take(4)
	if !ok {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(b)), true
}

// count decodes a header count: -1 normalizes to 0, other negatives are
// a parse error, everything else passes through unchanged.
func count(n int16) (int, bool) {
	switch {
	case n == -1:
		return 0, true
	case n < 0:
		return 0, false
	default:
		return int(n), true
	}
}

// normalizeSlot applies the shared -1 (absent) / -2 (canceled) / <-2
// (invalid) rule used by every numeric and string-offset slot.
func normalizeSlot(n int32) (int32, bool, bool) {
	switch {
	case n == -1 || n == -2:
		return 0, false, true // absent, valid
	case n < -2:
		return 0, false, false // invalid
	default:
		return n, true, true // present, valid
	}
}

// Decode parses a compiled terminfo entry from buf and builds a
// CapabilitySet. It never panics on malformed input; any short read,
// bad magic, out-of-range count, or out-of-range offset yields ErrParse.
func Decode(buf []byte) (*CapabilitySet, error) {
	r := &reader{buf: buf}

	magic, ok := r.take(2)
	if !ok {
		return nil, ErrParse
	}

	var width int
	switch {
	case magic[0] == magicLegacy[0] && magic[1] == magicLegacy[1]:
		width = 16
	case magic[0] == magicExtended[0] && magic[1] == magicExtended[1]:
		width = 32
	default:
		return nil, ErrParse
	}

	nameSize, boolCount, numCount, stringCount, tableSize, ok := readHeaderCounts(r)
	if !ok {
		return nil, ErrParse
	}

	namesRaw, ok := r.take(nameSize)
	if !ok {
		return nil, ErrParse
	}
	name, aliases, description := parseNames(namesRaw)

	boolBytes, ok := r.take(boolCount)
	if !ok {
		return nil, ErrParse
	}

	if (nameSize+boolCount)%2 != 0 {
		if _, ok := r.take(1); !ok {
			return nil, ErrParse
		}
	}

	numbers, ok := readSlots(r, numCount, width)
	if !ok {
		return nil, ErrParse
	}

	stringOffsets, ok := readSlots(r, stringCount, width)
	if !ok {
		return nil, ErrParse
	}

	table, ok := r.take(tableSize)
	if !ok {
		return nil, ErrParse
	}

	entries := make(map[string]Value)

	for i, b := range boolBytes {
		if b == 0 {
			continue
		}
		if name, ok := BooleanName(i); ok {
			if _, exists := entries[name]; !exists {
				entries[name] = boolValue()
			}
		}
	}

	if err := applyNumbers(entries, numbers, NumberName); err != nil {
		return nil, err
	}
	if err := applyStrings(entries, stringOffsets, table, StringName); err != nil {
		return nil, err
	}

	if r.remaining() > 0 {
		if err := decodeExtended(r, tableSize, width, entries); err != nil {
			return nil, err
		}
	}

	return &CapabilitySet{
		Name:        name,
		Aliases:     aliases,
		Description: description,
		entries:     entries,
	}, nil
}

func readHeaderCounts(r *reader) (nameSize, boolCount, numCount, stringCount, tableSize int, ok bool) {
	raw := make([]int16, 5)
	for i := range raw {
		n, good := r.int16()
		if !good {
			return 0, 0, 0, 0, 0, false
		}
		raw[i] = n
	}

	vals := make([]int, 5)
	for i, n := range raw {
		v, good := count(n)
		if !good {
			return 0, 0, 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], vals[4], true
}

// parseNames splits the '|'-delimited names header into name, aliases,
// and description, stripping the block's trailing NUL and whitespace.
func parseNames(raw []byte) (name string, aliases []string, description string) {
	s := string(raw)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}

	fields := strings.Split(s, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) == 0 {
		return "", nil, ""
	}

	name = fields[0]
	if len(fields) == 1 {
		return name, nil, ""
	}

	description = fields[len(fields)-1]
	aliases = fields[1 : len(fields)-1]
	return name, aliases, description
}

// readSlots reads n numeric/string-offset slots at the given width.
func readSlots(r *reader, n, width int) ([]int32, bool) {
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		v, ok := r.slot(width)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func applyNumbers(entries map[string]Value, numbers []int32, nameOf func(int) (string, bool)) error {
	for i, raw := range numbers {
		v, present, valid := normalizeSlot(raw)
		if !valid {
			return ErrParse
		}
		if !present {
			continue
		}
		name, ok := nameOf(i)
		if !ok {
			continue
		}
		if _, exists := entries[name]; !exists {
			entries[name] = numberValue(v)
		}
	}
	return nil
}

func applyStrings(entries map[string]Value, offsets []int32, table []byte, nameOf func(int) (string, bool)) error {
	for i, raw := range offsets {
		off, present, valid := normalizeSlot(raw)
		if !valid {
			return ErrParse
		}
		if !present {
			continue
		}
		name, ok := nameOf(i)
		if !ok {
			continue
		}
		s, ok := readCString(table, int(off))
		if !ok {
			return ErrParse
		}
		if _, exists := entries[name]; !exists {
			entries[name] = stringValue(s)
		}
	}
	return nil
}

// readCString reads bytes from table starting at off up to (not
// including) the first NUL.
func readCString(table []byte, off int) ([]byte, bool) {
	if off < 0 || off > len(table) {
		return nil, false
	}
	rest := table[off:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return nil, false
	}
	return rest[:end], true
}

// decodeExtended parses the optional extended-capabilities section that
// may follow the main string table.
func decodeExtended(r *reader, tableSize, width int, entries map[string]Value) error {
	if tableSize%2 != 0 {
		if _, ok := r.take(1); !ok {
			return ErrParse
		}
	}

	extBoolCount, extNumCount, extStringCount, extOffsetCount, extTableSize, ok := readHeaderCounts(r)
	if !ok {
		return ErrParse
	}

	extBoolBytes, ok := r.take(extBoolCount)
	if !ok {
		return ErrParse
	}
	if extBoolCount%2 != 0 {
		if _, ok := r.take(1); !ok {
			return ErrParse
		}
	}

	extNumbers, ok := readSlots(r, extNumCount, width)
	if !ok {
		return ErrParse
	}
	extStrings, ok := readSlots(r, extStringCount, width)
	if !ok {
		return ErrParse
	}

	// extOffsetCount is bool+num+2*string in real compiled entries: the
	// string value offsets just read plus one name offset per extended
	// capability. Only the name offsets remain, nameCount of them, and
	// they are consumed without being used; name-fragment slicing below
	// relies on positional order instead.
	_ = extOffsetCount
	nameCount := extBoolCount + extNumCount + extStringCount
	_, ok = readSlots(r, nameCount, width)
	if !ok {
		return ErrParse
	}

	extTable, ok := r.take(extTableSize)
	if !ok {
		return ErrParse
	}

	valueCount := 0
	for _, n := range extStrings {
		if _, present, valid := normalizeSlot(n); valid && present {
			valueCount++
		}
	}

	fragments := splitNUL(extTable)
	if len(fragments) < valueCount+nameCount {
		return ErrParse
	}
	names := fragments[valueCount : valueCount+nameCount]

	idx := 0
	for _, b := range extBoolBytes {
		name := string(names[idx])
		idx++
		if b == 0 {
			continue
		}
		if _, exists := entries[name]; !exists {
			entries[name] = boolValue()
		}
	}

	for _, raw := range extNumbers {
		name := string(names[idx])
		idx++
		v, present, valid := normalizeSlot(raw)
		if !valid {
			return ErrParse
		}
		if !present {
			continue
		}
		if _, exists := entries[name]; !exists {
			entries[name] = numberValue(v)
		}
	}

	for _, raw := range extStrings {
		name := string(names[idx])
		idx++
		off, present, valid := normalizeSlot(raw)
		if !valid {
			return ErrParse
		}
		if !present {
			continue
		}
		s, ok := readCString(extTable, int(off))
		if !ok {
			return ErrParse
		}
		if _, exists := entries[name]; !exists {
			entries[name] = stringValue(s)
		}
	}

	return nil
}

// splitNUL splits b on NUL bytes, the way the extended table's value
// strings and name strings are packed back to back.
func splitNUL(b []byte) [][]byte {
	return bytes.Split(b, []byte{0})
}
