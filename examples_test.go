package terminfo

import (
	"fmt"
)

func Example() {
	info, err := NewBuilder().
		Name("xterm").
		Description("xterm terminal emulator").
		SetBool(AutoRightMargin).
		SetNumber(MaxColors, 256).
		SetString(CursorAddress, []byte("\x1b[%p1%d;%p2%dH")).
		Build()
	if err != nil {
		panic(err)
	}

	fmt.Println(info.Bool(AutoRightMargin))

	colors, _ := info.Number(MaxColors)
	fmt.Println(colors)

	cup, _ := info.String(CursorAddress)
	seq, err := Expand(cup, []Parameter{NumberParam(4), NumberParam(10)}, &Context{})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", seq)

	// Output:
	// true
	// 256
	// "\x1b[4;10H"
}
