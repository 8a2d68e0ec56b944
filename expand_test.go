package terminfo

import (
	"testing"
)

func TestExpandLiteral(t *testing.T) {
	got, err := Expand([]byte("hello"), nil, nil)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandPercentLiteral(t *testing.T) {
	got, err := Expand([]byte("100%%"), nil, nil)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "100%" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandCursorAddress(t *testing.T) {
	got, err := Expand([]byte("\x1b[%p1%d;%p2%dH"),
		[]Parameter{NumberParam(4), NumberParam(10)}, &Context{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "\x1b[4;10H" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandSetabf(t *testing.T) {
	got, err := Expand([]byte("\\E[48;5;%p1%dm"), []Parameter{NumberParam(1)}, &Context{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "\\E[48;5;1m" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandIncrement(t *testing.T) {
	got, err := Expand([]byte("%i%p1%d,%p2%d"),
		[]Parameter{NumberParam(0), NumberParam(0)}, &Context{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "1,1" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandConditional(t *testing.T) {
	tmpl := []byte("%p1%?%{1}%=%tyes%eno%;")

	got, err := Expand(tmpl, []Parameter{NumberParam(1)}, &Context{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "yes" {
		t.Fatalf("got %q", got)
	}

	got, err = Expand(tmpl, []Parameter{NumberParam(2)}, &Context{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "no" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandNestedConditional(t *testing.T) {
	tmpl := []byte("%?%p1%{1}%=%t%?%p2%{1}%=%tab%ecd%;%e%?%p2%{1}%=%tef%egh%;%;")

	cases := []struct {
		p1, p2 int32
		want   string
	}{
		{1, 1, "ab"},
		{1, 2, "cd"},
		{2, 1, "ef"},
		{2, 2, "gh"},
	}
	for _, c := range cases {
		got, err := Expand(tmpl, []Parameter{NumberParam(c.p1), NumberParam(c.p2)}, &Context{})
		if err != nil {
			t.Fatalf("Expand(%d,%d): %v", c.p1, c.p2, err)
		}
		if string(got) != c.want {
			t.Fatalf("Expand(%d,%d) = %q, want %q", c.p1, c.p2, got, c.want)
		}
	}
}

func TestExpandStaticDynamicVariables(t *testing.T) {
	ctx := &Context{}
	got, err := Expand([]byte("%p1%PA%gA%c%gA%c"), []Parameter{NumberParam(7)}, ctx)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "\x07\x07" {
		t.Fatalf("got %q", got)
	}

	got, err = Expand([]byte("%p1%Pa%ga%c%ga%c"), []Parameter{NumberParam(5)}, ctx)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "\x05\x05" {
		t.Fatalf("got %q", got)
	}

	// %ga must read the dynamic bank, not the static bank written by %PA.
	if ctx.Static[0].Number != 7 {
		t.Fatalf("static bank A = %+v, want Number 7", ctx.Static[0])
	}
	if ctx.Dynamic[0].Number != 5 {
		t.Fatalf("dynamic bank a = %+v, want Number 5", ctx.Dynamic[0])
	}
}

func TestExpandCharacterConstant(t *testing.T) {
	got, err := Expand([]byte("%'A'%c"), nil, nil)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "A" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandZeroByteBecomes0x80(t *testing.T) {
	got, err := Expand([]byte("%{0}%c"), nil, nil)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 1 || got[0] != 0x80 {
		t.Fatalf("got %v", got)
	}
}

func TestExpandArithmetic(t *testing.T) {
	got, err := Expand([]byte("%{3}%{4}%+%d"), nil, nil)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "7" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandFormatWidthAndPadding(t *testing.T) {
	got, err := Expand([]byte("%p1%5d"), []Parameter{NumberParam(3)}, &Context{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "    3" {
		t.Fatalf("got %q", got)
	}

	got, err = Expand([]byte("%p1%:-5d|"), []Parameter{NumberParam(3)}, &Context{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "3    |" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandStringPrecision(t *testing.T) {
	got, err := Expand([]byte("%p1%.3s"), []Parameter{StringParam([]byte("hello"))}, &Context{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(got) != "hel" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandStackUnderflow(t *testing.T) {
	_, err := Expand([]byte("%d"), nil, nil)
	var ee *ExpandError
	if err == nil {
		t.Fatal("expected error")
	}
	if ee2, ok := err.(*ExpandError); !ok || ee2.Kind != ErrStackUnderflow {
		t.Fatalf("got %v (%T)", err, err)
	}
	_ = ee
}

func TestExpandUnrecognizedFormatOption(t *testing.T) {
	_, err := Expand([]byte("%z"), nil, nil)
	ee, ok := err.(*ExpandError)
	if !ok || ee.Kind != ErrUnrecognizedFormatOption {
		t.Fatalf("got %v (%T)", err, err)
	}
	if ee.Payload != 'z' {
		t.Fatalf("payload = %q", ee.Payload)
	}
}

func TestExpandMalformedCharacterConstant(t *testing.T) {
	_, err := Expand([]byte("%'AB"), nil, nil)
	ee, ok := err.(*ExpandError)
	if !ok || ee.Kind != ErrMalformedCharacterConstant {
		t.Fatalf("got %v (%T)", err, err)
	}
}

func TestExpandInvalidParameterIndex(t *testing.T) {
	_, err := Expand([]byte("%p0"), nil, nil)
	ee, ok := err.(*ExpandError)
	if !ok || ee.Kind != ErrInvalidParameterIndex {
		t.Fatalf("got %v (%T)", err, err)
	}
}

func TestExpandIntegerConstantOverflow(t *testing.T) {
	_, err := Expand([]byte("%{9999999999}"), nil, nil)
	ee, ok := err.(*ExpandError)
	if !ok || ee.Kind != ErrIntegerConstantOverflow {
		t.Fatalf("got %v (%T)", err, err)
	}
}

func TestExpandFormatWidthOverflow(t *testing.T) {
	_, err := Expand([]byte("%p1%9999999999d"), []Parameter{NumberParam(1)}, &Context{})
	ee, ok := err.(*ExpandError)
	if !ok || ee.Kind != ErrFormatWidthOverflow {
		t.Fatalf("got %v (%T)", err, err)
	}
}

func TestExpandFormatPrecisionOverflow(t *testing.T) {
	_, err := Expand([]byte("%p1%.9999999999d"), []Parameter{NumberParam(1)}, &Context{})
	ee, ok := err.(*ExpandError)
	if !ok || ee.Kind != ErrFormatPrecisionOverflow {
		t.Fatalf("got %v (%T)", err, err)
	}
}

func TestExpandTypeMismatch(t *testing.T) {
	_, err := Expand([]byte("%p1%d"), []Parameter{StringParam([]byte("x"))}, &Context{})
	ee, ok := err.(*ExpandError)
	if !ok || ee.Kind != ErrTypeMismatch {
		t.Fatalf("got %v (%T)", err, err)
	}
}

func TestWriteExpandMatchesExpand(t *testing.T) {
	var buf writerBuf
	tmpl := []byte("\x1b[%p1%d;%p2%dH")
	params := []Parameter{NumberParam(1), NumberParam(2)}

	if err := WriteExpand(&buf, tmpl, params, &Context{}); err != nil {
		t.Fatalf("WriteExpand: %v", err)
	}
	want, err := Expand(tmpl, params, &Context{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if buf.String() != string(want) {
		t.Fatalf("WriteExpand = %q, want %q", buf.String(), want)
	}
}

// writerBuf is a minimal io.Writer for tests that don't want to import
// bytes just to check accumulated output.
type writerBuf struct {
	data []byte
}

func (w *writerBuf) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *writerBuf) String() string { return string(w.data) }
