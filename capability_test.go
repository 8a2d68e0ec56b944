package terminfo

import "testing"

func TestCapabilityAccessors(t *testing.T) {
	b, err := NewBuilder().
		Name("test").
		Description("a test terminal").
		SetBool(AutoRightMargin).
		SetNumber(Columns, 132).
		SetString(CursorAddress, []byte("\x1b[%p1%d;%p2%dH")).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if !b.Bool(AutoRightMargin) {
		t.Fatal("expected AutoRightMargin")
	}
	if b.Bool(AutoLeftMargin) {
		t.Fatal("did not expect AutoLeftMargin")
	}
	if n, ok := b.Number(Columns); !ok || n != 132 {
		t.Fatalf("Columns = %d, %v", n, ok)
	}
	if _, ok := b.Number(Lines); ok {
		t.Fatal("did not expect Lines")
	}
	if s, ok := b.String(CursorAddress); !ok || string(s) != "\x1b[%p1%d;%p2%dH" {
		t.Fatalf("CursorAddress = %q, %v", s, ok)
	}
}

func TestCapabilityRawShortName(t *testing.T) {
	b, err := NewBuilder().Name("test").
		SetNumber(Columns, 80).
		SetString(CursorAddress, []byte("cup")).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if v, ok := b.Raw("cols"); !ok || v.Number != 80 {
		t.Fatalf("Raw(cols) = %+v, %v", v, ok)
	}
	if v, ok := b.Raw("cup"); !ok || string(v.String) != "cup" {
		t.Fatalf("Raw(cup) = %+v, %v", v, ok)
	}
	// Already-canonical long names fall through unresolved, same as a
	// name absent from the alias table.
	if v, ok := b.Raw("columns"); !ok || v.Number != 80 {
		t.Fatalf("Raw(columns) = %+v, %v", v, ok)
	}
}

func TestCapabilityFirstWriteWins(t *testing.T) {
	b := NewBuilder().Name("test")
	b.SetNumber(Columns, 80)
	b.SetNumber(Columns, 999)

	cs, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n, _ := cs.Number(Columns); n != 80 {
		t.Fatalf("Columns = %d, want 80", n)
	}
}

func TestResolveAliasFallback(t *testing.T) {
	if got := ResolveAlias("some_unknown_long_name"); got != "some_unknown_long_name" {
		t.Fatalf("got %q", got)
	}
	if got := ResolveAlias("cup"); got != "cursor_address" {
		t.Fatalf("got %q", got)
	}
}
