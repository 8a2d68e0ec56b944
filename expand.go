package terminfo

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
)

// exKind names one state of the parameterized-string interpreter. Most
// states consume exactly one byte and return to exInput; the constant,
// format, and conditional-skip states span several bytes and carry the
// extra fields below.
type exKind int

const (
	exInput exKind = iota
	exBegin
	exPush
	exVarSet
	exVarGet
	exConstCharFirst
	exConstCharClose
	exConstInt
	exFormatFlags
	exFormatWidth
	exFormatPrecision
	exSeekIfElse
	exSeekIfElseExpand
	exSeekIfEnd
	exSeekIfEndExpand
)

// formatFlags accumulates the printf-style flags recognized between '%'
// and the terminal d/o/x/X/s verb.
type formatFlags struct {
	width     int
	precision int
	alternate bool
	left      bool
	sign      bool
	space     bool
}

// expander holds all mutable state for one Expand/WriteExpand call. It
// is not reused across calls.
type expander struct {
	kind      exKind
	constInt  int32
	flags     formatFlags
	seekLevel int

	stack  Stack
	params [9]Parameter

	ctx *Context
	out io.Writer
}

// WriteExpand interprets data as a terminfo parameterized string and
// writes the result to w. context supplies and receives the static and
// dynamic variable banks; parameters fills %p1.."%p9 (missing trailing
// parameters default to Number(0)).
func WriteExpand(w io.Writer, data []byte, parameters []Parameter, context *Context) error {
	if context == nil {
		context = &Context{}
	}
	bw := bufio.NewWriter(w)
	e := &expander{ctx: context, out: bw}
	for i := 0; i < len(e.params) && i < len(parameters); i++ {
		e.params[i] = parameters[i]
	}

	for _, ch := range data {
		if err := e.step(ch); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Expand interprets data as a terminfo parameterized string and returns
// the resulting bytes. It is WriteExpand with the output buffered in
// memory instead of streamed to a caller-supplied sink.
func Expand(data []byte, parameters []Parameter, context *Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteExpand(&buf, data, parameters, context); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// step advances the interpreter by one byte. Each state handler sets
// e.kind to the next state itself, including the return to exInput; the
// caller only feeds bytes.
func (e *expander) step(ch byte) error {
	switch e.kind {
	case exInput:
		return e.stepInput(ch)
	case exBegin:
		return e.stepBegin(ch)
	case exPush:
		return e.stepPush(ch)
	case exVarSet:
		return e.stepVarSet(ch)
	case exVarGet:
		return e.stepVarGet(ch)
	case exConstCharFirst:
		e.stack.Push(NumberParam(int32(ch)))
		e.kind = exConstCharClose
		return nil
	case exConstCharClose:
		if ch != '\'' {
			return expandErr(ErrMalformedCharacterConstant)
		}
		e.kind = exInput
		return nil
	case exConstInt:
		return e.stepConstInt(ch)
	case exFormatFlags, exFormatWidth, exFormatPrecision:
		return e.stepFormat(ch)
	case exSeekIfElse:
		if ch == '%' {
			e.kind = exSeekIfElseExpand
		}
		return nil
	case exSeekIfElseExpand:
		return e.stepSeekIfElseExpand(ch)
	case exSeekIfEnd:
		if ch == '%' {
			e.kind = exSeekIfEndExpand
		}
		return nil
	case exSeekIfEndExpand:
		return e.stepSeekIfEndExpand(ch)
	default:
		return expandErr(ErrTypeMismatch)
	}
}

func (e *expander) stepInput(ch byte) error {
	if ch == '%' {
		e.kind = exBegin
		return nil
	}
	_, err := e.out.Write([]byte{ch})
	return err
}

func (e *expander) stepBegin(ch byte) error {
	switch {
	case ch == '?' || ch == ';':
		e.kind = exInput
		return nil

	case ch == '%':
		if _, err := e.out.Write([]byte{'%'}); err != nil {
			return err
		}
		e.kind = exInput
		return nil

	case ch == 'c':
		v, ok := e.stack.Pop()
		if !ok {
			return expandErr(ErrStackUnderflow)
		}
		if v.IsString {
			return expandErr(ErrTypeMismatch)
		}
		b := byte(v.Number)
		if v.Number == 0 {
			b = 128
		}
		if _, err := e.out.Write([]byte{b}); err != nil {
			return err
		}
		e.kind = exInput
		return nil

	case ch == 'p':
		e.kind = exPush
		return nil

	case ch == 'P':
		e.kind = exVarSet
		return nil

	case ch == 'g':
		e.kind = exVarGet
		return nil

	case ch == '\'':
		e.kind = exConstCharFirst
		return nil

	case ch == '{':
		e.constInt = 0
		e.kind = exConstInt
		return nil

	case ch == '+' || ch == '-' || ch == '/' || ch == '*' || ch == '^' || ch == '&' || ch == '|' || ch == 'm':
		if err := e.binop(ch); err != nil {
			return err
		}
		e.kind = exInput
		return nil

	case ch == '=' || ch == '>' || ch == '<' || ch == 'A' || ch == 'O':
		if err := e.cmpop(ch); err != nil {
			return err
		}
		e.kind = exInput
		return nil

	case ch == '!' || ch == '~':
		if err := e.unop(ch); err != nil {
			return err
		}
		e.kind = exInput
		return nil

	case ch == 'i':
		if e.params[0].IsString || e.params[1].IsString {
			return expandErr(ErrTypeMismatch)
		}
		e.params[0].Number++
		e.params[1].Number++
		e.kind = exInput
		return nil

	case ch == 'd' || ch == 'o' || ch == 'x' || ch == 'X' || ch == 's':
		v, ok := e.stack.Pop()
		if !ok {
			return expandErr(ErrStackUnderflow)
		}
		out, err := formatParameter(ch, v, formatFlags{})
		if err != nil {
			return err
		}
		if _, err := e.out.Write(out); err != nil {
			return err
		}
		e.kind = exInput
		return nil

	case ch == ':' || ch == '#' || ch == ' ' || ch == '.' || (ch >= '0' && ch <= '9'):
		e.flags = formatFlags{}
		switch {
		case ch == ':':
			e.kind = exFormatFlags
		case ch == '#':
			e.flags.alternate = true
			e.kind = exFormatFlags
		case ch == ' ':
			e.flags.space = true
			e.kind = exFormatFlags
		case ch == '.':
			e.kind = exFormatPrecision
		default:
			e.flags.width = int(ch - '0')
			e.kind = exFormatWidth
		}
		return nil

	case ch == 't':
		v, ok := e.stack.Pop()
		if !ok {
			return expandErr(ErrStackUnderflow)
		}
		if v.IsString {
			return expandErr(ErrTypeMismatch)
		}
		if v.Number == 0 {
			e.seekLevel = 0
			e.kind = exSeekIfElse
		} else {
			e.kind = exInput
		}
		return nil

	case ch == 'e':
		e.seekLevel = 0
		e.kind = exSeekIfEnd
		return nil

	default:
		return expandErrByte(ErrUnrecognizedFormatOption, ch)
	}
}

func (e *expander) stepPush(ch byte) error {
	if ch < '1' || ch > '9' {
		return expandErrByte(ErrInvalidParameterIndex, ch)
	}
	e.stack.Push(e.params[ch-'1'])
	e.kind = exInput
	return nil
}

func (e *expander) stepVarSet(ch byte) error {
	switch {
	case ch >= 'A' && ch <= 'Z':
		v, ok := e.stack.Pop()
		if !ok {
			return expandErr(ErrStackUnderflow)
		}
		e.ctx.Static[ch-'A'] = v
	case ch >= 'a' && ch <= 'z':
		v, ok := e.stack.Pop()
		if !ok {
			return expandErr(ErrStackUnderflow)
		}
		e.ctx.Dynamic[ch-'a'] = v
	default:
		return expandErrByte(ErrInvalidVariableName, ch)
	}
	e.kind = exInput
	return nil
}

func (e *expander) stepVarGet(ch byte) error {
	switch {
	case ch >= 'A' && ch <= 'Z':
		e.stack.Push(e.ctx.Static[ch-'A'])
	case ch >= 'a' && ch <= 'z':
		e.stack.Push(e.ctx.Dynamic[ch-'a'])
	default:
		return expandErrByte(ErrInvalidVariableName, ch)
	}
	e.kind = exInput
	return nil
}

func (e *expander) stepConstInt(ch byte) error {
	if ch == '}' {
		e.stack.Push(NumberParam(e.constInt))
		e.kind = exInput
		return nil
	}
	if ch < '0' || ch > '9' {
		return expandErr(ErrMalformedIntegerConstant)
	}
	wide := int64(e.constInt)*10 + int64(ch-'0')
	if wide > math.MaxInt32 || wide < math.MinInt32 {
		return expandErr(ErrIntegerConstantOverflow)
	}
	e.constInt = int32(wide)
	return nil
}

func (e *expander) stepFormat(ch byte) error {
	if ch == 'd' || ch == 'o' || ch == 'x' || ch == 'X' || ch == 's' {
		v, ok := e.stack.Pop()
		if !ok {
			return expandErr(ErrStackUnderflow)
		}
		out, err := formatParameter(ch, v, e.flags)
		if err != nil {
			return err
		}
		if _, err := e.out.Write(out); err != nil {
			return err
		}
		e.kind = exInput
		return nil
	}

	switch e.kind {
	case exFormatFlags:
		switch {
		case ch == '#':
			e.flags.alternate = true
		case ch == '-':
			e.flags.left = true
		case ch == '+':
			e.flags.sign = true
		case ch == ' ':
			e.flags.space = true
		case ch >= '0' && ch <= '9':
			e.flags.width = int(ch - '0')
			e.kind = exFormatWidth
		case ch == '.':
			e.kind = exFormatPrecision
		default:
			return expandErrByte(ErrUnrecognizedFormatOption, ch)
		}
		return nil

	case exFormatWidth:
		switch {
		case ch >= '0' && ch <= '9':
			wide := int64(e.flags.width)*10 + int64(ch-'0')
			if wide > math.MaxInt32 || wide < math.MinInt32 {
				return expandErr(ErrFormatWidthOverflow)
			}
			e.flags.width = int(wide)
		case ch == '.':
			e.kind = exFormatPrecision
		default:
			return expandErrByte(ErrUnrecognizedFormatOption, ch)
		}
		return nil

	case exFormatPrecision:
		switch {
		case ch >= '0' && ch <= '9':
			wide := int64(e.flags.precision)*10 + int64(ch-'0')
			if wide > math.MaxInt32 || wide < math.MinInt32 {
				return expandErr(ErrFormatPrecisionOverflow)
			}
			e.flags.precision = int(wide)
		default:
			return expandErrByte(ErrUnrecognizedFormatOption, ch)
		}
		return nil
	}

	return expandErrByte(ErrUnrecognizedFormatOption, ch)
}

func (e *expander) stepSeekIfElseExpand(ch byte) error {
	switch {
	case ch == ';' && e.seekLevel == 0:
		e.kind = exInput
	case ch == ';':
		e.seekLevel--
		e.kind = exSeekIfElse
	case ch == 'e' && e.seekLevel == 0:
		e.kind = exInput
	case ch == '?':
		e.seekLevel++
		e.kind = exSeekIfElse
	default:
		e.kind = exSeekIfElse
	}
	return nil
}

func (e *expander) stepSeekIfEndExpand(ch byte) error {
	switch {
	case ch == ';' && e.seekLevel == 0:
		e.kind = exInput
	case ch == ';':
		e.seekLevel--
		e.kind = exSeekIfEnd
	case ch == '?':
		e.seekLevel++
		e.kind = exSeekIfEnd
	default:
		e.kind = exSeekIfEnd
	}
	return nil
}

func (e *expander) binop(ch byte) error {
	y, ok1 := e.stack.Pop()
	x, ok2 := e.stack.Pop()
	if !ok1 || !ok2 {
		return expandErr(ErrStackUnderflow)
	}
	if x.IsString || y.IsString {
		return expandErr(ErrTypeMismatch)
	}
	var r int32
	switch ch {
	case '+':
		r = x.Number + y.Number
	case '-':
		r = x.Number - y.Number
	case '/':
		r = x.Number / y.Number
	case '*':
		r = x.Number * y.Number
	case '^':
		r = x.Number ^ y.Number
	case '&':
		r = x.Number & y.Number
	case '|':
		r = x.Number | y.Number
	case 'm':
		r = x.Number % y.Number
	}
	e.stack.Push(NumberParam(r))
	return nil
}

func (e *expander) cmpop(ch byte) error {
	y, ok1 := e.stack.Pop()
	x, ok2 := e.stack.Pop()
	if !ok1 || !ok2 {
		return expandErr(ErrStackUnderflow)
	}
	if x.IsString || y.IsString {
		return expandErr(ErrTypeMismatch)
	}
	var r bool
	switch ch {
	case '=':
		r = x.Number == y.Number
	case '<':
		r = x.Number < y.Number
	case '>':
		r = x.Number > y.Number
	case 'A':
		r = x.Number > 0 && y.Number > 0
	case 'O':
		r = x.Number > 0 || y.Number > 0
	}
	if r {
		e.stack.Push(NumberParam(1))
	} else {
		e.stack.Push(NumberParam(0))
	}
	return nil
}

func (e *expander) unop(ch byte) error {
	x, ok := e.stack.Pop()
	if !ok {
		return expandErr(ErrStackUnderflow)
	}
	if x.IsString {
		return expandErr(ErrTypeMismatch)
	}
	switch ch {
	case '!':
		if x.Number > 0 {
			e.stack.Push(NumberParam(0))
		} else {
			e.stack.Push(NumberParam(1))
		}
	case '~':
		e.stack.Push(NumberParam(^x.Number))
	}
	return nil
}

// formatParameter renders one popped stack value per a single d/o/x/X/s
// verb and its accumulated flags, matching printf's width/precision
// semantics: precision on a number verb is a minimum-digit zero pad,
// precision on %s is a maximum byte count.
func formatParameter(verb byte, p Parameter, flags formatFlags) ([]byte, error) {
	var s string

	switch verb {
	case 'd':
		if p.IsString {
			return nil, expandErr(ErrTypeMismatch)
		}
		switch {
		case flags.sign:
			s = fmt.Sprintf("%+0*d", flags.precision, p.Number)
		case p.Number < 0:
			s = fmt.Sprintf("%0*d", flags.precision+1, p.Number)
		case flags.space:
			s = " " + fmt.Sprintf("%0*d", flags.precision, p.Number)
		default:
			s = fmt.Sprintf("%0*d", flags.precision, p.Number)
		}

	case 'o':
		if p.IsString {
			return nil, expandErr(ErrTypeMismatch)
		}
		if flags.alternate {
			prec := flags.precision - 1
			if prec < 0 {
				prec = 0
			}
			s = "0" + fmt.Sprintf("%0*o", prec, p.Number)
		} else {
			s = fmt.Sprintf("%0*o", flags.precision, p.Number)
		}

	case 'x':
		if p.IsString {
			return nil, expandErr(ErrTypeMismatch)
		}
		if flags.alternate && p.Number != 0 {
			s = "0x" + fmt.Sprintf("%0*x", flags.precision, p.Number)
		} else {
			s = fmt.Sprintf("%0*x", flags.precision, p.Number)
		}

	case 'X':
		if p.IsString {
			return nil, expandErr(ErrTypeMismatch)
		}
		if flags.alternate && p.Number != 0 {
			s = "0X" + fmt.Sprintf("%0*X", flags.precision, p.Number)
		} else {
			s = fmt.Sprintf("%0*X", flags.precision, p.Number)
		}

	case 's':
		if !p.IsString {
			return nil, expandErr(ErrTypeMismatch)
		}
		if flags.precision > 0 && flags.precision < len(p.String) {
			s = string(p.String[:flags.precision])
		} else {
			s = string(p.String)
		}

	default:
		return nil, expandErrByte(ErrUnrecognizedFormatOption, verb)
	}

	out := []byte(s)
	if flags.width > len(out) {
		pad := bytes.Repeat([]byte{' '}, flags.width-len(out))
		if flags.left {
			out = append(out, pad...)
		} else {
			out = append(pad, out...)
		}
	}
	return out, nil
}
