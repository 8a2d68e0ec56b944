package terminfo

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildLegacy assembles a minimal 16-bit compiled terminfo buffer. bools
// has one entry per boolean ordinal slot (true/false); numbers has one
// signed value per number ordinal slot (use -1 for absent); strings has
// one entry per string ordinal slot (empty means absent). It mirrors the
// layout compiled.rs's own test fixtures are built from.
func buildLegacy(t *testing.T, name string, bools []bool, numbers []int16, strings []string) []byte {
	t.Helper()

	names := append([]byte(name), 0)

	boolBytes := make([]byte, len(bools))
	for i, b := range bools {
		if b {
			boolBytes[i] = 1
		}
	}

	var table bytes.Buffer
	offsets := make([]int16, len(strings))
	for i, s := range strings {
		if s == "" {
			offsets[i] = -1
			continue
		}
		offsets[i] = int16(table.Len())
		table.WriteString(s)
		table.WriteByte(0)
	}

	var buf bytes.Buffer
	buf.Write(magicLegacy[:])

	header := []int16{
		int16(len(names)),
		int16(len(boolBytes)),
		int16(len(numbers)),
		int16(len(offsets)),
		int16(table.Len()),
	}
	for _, h := range header {
		binary.Write(&buf, binary.LittleEndian, h)
	}

	buf.Write(names)
	buf.Write(boolBytes)
	if (len(names)+len(boolBytes))%2 != 0 {
		buf.WriteByte(0)
	}
	for _, n := range numbers {
		binary.Write(&buf, binary.LittleEndian, n)
	}
	for _, o := range offsets {
		binary.Write(&buf, binary.LittleEndian, o)
	}
	buf.Write(table.Bytes())

	return buf.Bytes()
}

func TestDecodeBasic(t *testing.T) {
	bools := make([]bool, len(booleanNames))
	bools[0] = true // auto_left_margin

	numbers := make([]int16, len(numberNames))
	for i := range numbers {
		numbers[i] = -1
	}
	numbers[0] = 80 // columns

	strs := make([]string, len(stringNames))
	strs[0] = "\x1b[Z" // back_tab

	buf := buildLegacy(t, "xterm|a test terminal", bools, numbers, strs)

	cs, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if cs.Name != "xterm" {
		t.Fatalf("Name = %q", cs.Name)
	}
	if cs.Description != "a test terminal" {
		t.Fatalf("Description = %q", cs.Description)
	}
	if !cs.Bool(AutoLeftMargin) {
		t.Fatal("expected auto_left_margin")
	}
	if n, ok := cs.Number(Columns); !ok || n != 80 {
		t.Fatalf("Columns = %d, %v", n, ok)
	}
	if s, ok := cs.String(BackTab); !ok || string(s) != "\x1b[Z" {
		t.Fatalf("BackTab = %q, %v", s, ok)
	}
}

func TestDecodeAbsentSlotsSkipped(t *testing.T) {
	bools := make([]bool, len(booleanNames))
	numbers := make([]int16, len(numberNames))
	for i := range numbers {
		numbers[i] = -1
	}
	strs := make([]string, len(stringNames))

	buf := buildLegacy(t, "dumb", bools, numbers, strs)

	cs, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(cs.Entries()) != 0 {
		t.Fatalf("expected no entries, got %d", len(cs.Entries()))
	}
}

func TestDecodeCanceledSlotTreatedAbsent(t *testing.T) {
	bools := make([]bool, len(booleanNames))
	numbers := make([]int16, len(numberNames))
	for i := range numbers {
		numbers[i] = -1
	}
	numbers[0] = -2 // canceled, same as absent
	strs := make([]string, len(stringNames))

	buf := buildLegacy(t, "dumb", bools, numbers, strs)

	cs, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := cs.Number(Columns); ok {
		t.Fatal("canceled slot should not be present")
	}
}

func TestDecodeInvalidSlotIsParseError(t *testing.T) {
	bools := make([]bool, len(booleanNames))
	numbers := make([]int16, len(numberNames))
	for i := range numbers {
		numbers[i] = -1
	}
	numbers[0] = -5 // < -2, malformed
	strs := make([]string, len(stringNames))

	buf := buildLegacy(t, "dumb", bools, numbers, strs)

	if _, err := Decode(buf); err != ErrParse {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestDecodeTruncatedBufferIsParseError(t *testing.T) {
	buf := buildLegacy(t, "dumb", make([]bool, len(booleanNames)), nil, nil)
	_, err := Decode(buf[:len(buf)-5])
	if err != ErrParse {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestDecodeBadMagicIsParseError(t *testing.T) {
	buf := buildLegacy(t, "dumb", make([]bool, len(booleanNames)), nil, nil)
	buf[0] = 0xFF
	if _, err := Decode(buf); err != ErrParse {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestDecodeExtendedSection(t *testing.T) {
	base := buildLegacy(t, "xterm", make([]bool, len(booleanNames)), nil, nil)

	// Hand-build an extended section: one bool ("XT"), one number
	// ("NumCap"), one string ("StrCap"). Real
	// compiled entries set ext_offset_count to bool+num+2*string (one
	// offset per string's value plus one per string's own name), not
	// bool+num+string; this fixture's header follows that real formula
	// (1+1+2*1 = 4) so the test pins the behavior real databases need.
	var table bytes.Buffer
	table.WriteString("foo")
	table.WriteByte(0) // value string for the lone string capability
	table.WriteString("XT")
	table.WriteByte(0)
	table.WriteString("NumCap")
	table.WriteByte(0)
	table.WriteString("StrCap")
	table.WriteByte(0)

	var ext bytes.Buffer
	header := []int16{1, 1, 1, 4, int16(table.Len())}
	for _, h := range header {
		binary.Write(&ext, binary.LittleEndian, h)
	}
	ext.WriteByte(1) // the one extended bool, true
	ext.WriteByte(0) // pad after an odd extended bool count
	binary.Write(&ext, binary.LittleEndian, int16(42))
	binary.Write(&ext, binary.LittleEndian, int16(0)) // offset of "foo" in table
	for i := 0; i < 4-1; i++ {
		binary.Write(&ext, binary.LittleEndian, int16(i)) // name offsets (offset count minus the one value offset), unused positionally
	}
	ext.Write(table.Bytes())

	buf := append(base, ext.Bytes()...)

	cs, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v, ok := cs.Raw("XT"); !ok || v.Kind != KindBool {
		t.Fatalf("XT = %+v, %v", v, ok)
	}
	if v, ok := cs.Raw("NumCap"); !ok || v.Kind != KindNumber || v.Number != 42 {
		t.Fatalf("NumCap = %+v, %v", v, ok)
	}
	if v, ok := cs.Raw("StrCap"); !ok || v.Kind != KindString || string(v.String) != "foo" {
		t.Fatalf("StrCap = %+v, %v", v, ok)
	}
}

// TestDecodeExtendedMultipleStringsRealOffsetFormula pins the real-world
// ext_offset_count formula (bool+num+2*string, confirmed against
// compiled entries like Eterm's ext counts bool=2,num=0,str=18,
// offset=38) against a fixture with more than one extended string
// capability, where bool+num+string would diverge from it most visibly.
func TestDecodeExtendedMultipleStringsRealOffsetFormula(t *testing.T) {
	base := buildLegacy(t, "xterm", make([]bool, len(booleanNames)), nil, nil)

	var table bytes.Buffer
	table.WriteString("one")
	table.WriteByte(0)
	table.WriteString("two")
	table.WriteByte(0)
	table.WriteString("Str1")
	table.WriteByte(0)
	table.WriteString("Str2")
	table.WriteByte(0)

	const extStringCount = 2
	const extOffsetCount = extStringCount * 2 // bool=0, num=0

	var ext bytes.Buffer
	header := []int16{0, 0, extStringCount, extOffsetCount, int16(table.Len())}
	for _, h := range header {
		binary.Write(&ext, binary.LittleEndian, h)
	}
	binary.Write(&ext, binary.LittleEndian, int16(0)) // offset of "one"
	binary.Write(&ext, binary.LittleEndian, int16(4)) // offset of "two"
	for i := 0; i < extOffsetCount-extStringCount; i++ {
		binary.Write(&ext, binary.LittleEndian, int16(i)) // name offsets (offset count minus the value offsets), unused positionally
	}
	ext.Write(table.Bytes())

	buf := append(base, ext.Bytes()...)

	cs, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v, ok := cs.Raw("Str1"); !ok || v.Kind != KindString || string(v.String) != "one" {
		t.Fatalf("Str1 = %+v, %v", v, ok)
	}
	if v, ok := cs.Raw("Str2"); !ok || v.Kind != KindString || string(v.String) != "two" {
		t.Fatalf("Str2 = %+v, %v", v, ok)
	}
}

func TestDecodeExtendedFirstWriteWins(t *testing.T) {
	bools := make([]bool, len(booleanNames))
	bools[0] = true // auto_left_margin, standard section writes this first
	base := buildLegacy(t, "xterm", bools, nil, nil)

	var table bytes.Buffer
	table.WriteString("auto_left_margin")
	table.WriteByte(0)

	var ext bytes.Buffer
	header := []int16{1, 0, 0, 1, int16(table.Len())}
	for _, h := range header {
		binary.Write(&ext, binary.LittleEndian, h)
	}
	ext.WriteByte(0) // extended bool value is false; should not override
	ext.WriteByte(0) // pad after an odd extended bool count
	binary.Write(&ext, binary.LittleEndian, int16(0))
	ext.Write(table.Bytes())

	buf := append(base, ext.Bytes()...)

	cs, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !cs.Bool(AutoLeftMargin) {
		t.Fatal("standard-section value should win over extended")
	}
}
