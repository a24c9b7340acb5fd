package lang

import "context"

// reader holds the hand-written LL(2) recursive-descent reader's state: the
// source buffer, current byte offset, and 1-based line/column. It operates
// at the byte level, not the rune level — identifier and whitespace
// classification are defined in terms of raw ASCII bytes.
type reader struct {
	namespace string
	input     []byte
	pos       int
	line      uint16
	col       uint16
}

// Read parses buf as a sequence of top-level forms belonging to namespace.
// It returns every form successfully parsed before the first error, along
// with that error; callers that want best-effort partial trees should still
// inspect the returned Ast even on error.
func Read(ctx context.Context, buf []byte, namespace string) (Ast, error) {
	r := &reader{namespace: namespace, input: buf, line: 1, col: 1}

	var forms Ast

	for {
		r.skipAtmosphere()

		if r.eof() {
			return forms, nil
		}

		if err := ctx.Err(); err != nil {
			return forms, err
		}

		form, err := r.readForm()
		if err != nil {
			return forms, err
		}

		forms = append(forms, form)
	}
}

// --- cursor primitives ---

func (r *reader) eof() bool { return r.pos >= len(r.input) }

func (r *reader) peek() byte {
	if r.eof() {
		return 0
	}

	return r.input[r.pos]
}

func (r *reader) peekN(n int) byte {
	if r.pos+n >= len(r.input) {
		return 0
	}

	return r.input[r.pos+n]
}

func (r *reader) advance() {
	if r.eof() {
		return
	}

	if r.input[r.pos] == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}

	r.pos++
}

func (r *reader) here() Location {
	return Location{
		Namespace: r.namespace,
		Offset:    r.pos,
		Line:      r.line,
		Column:    r.col,
		Known:     true,
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == ','
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isSymbolByte reports whether b may appear inside a symbol or keyword
// lexeme: any byte other than whitespace, '(', ')', '"', ';', and the ASCII
// control bytes below 0x20 and 0x7f.
func isSymbolByte(b byte) bool {
	if isSpace(b) {
		return false
	}

	switch b {
	case '(', ')', '"', ';':
		return false
	}

	if b < 0x20 || b == 0x7f {
		return false
	}

	return true
}

func (r *reader) skipAtmosphere() {
	for !r.eof() {
		switch {
		case isSpace(r.peek()):
			r.advance()
		case r.peek() == ';':
			for !r.eof() && r.peek() != '\n' {
				r.advance()
			}
		default:
			return
		}
	}
}

// --- grammar ---

func (r *reader) readForm() (*Expression, error) {
	switch c := r.peek(); {
	case c == '(':
		return r.readList()
	case c == '"':
		return r.readString()
	case c == ':':
		return r.readKeyword()
	case c == '-' && isDigit(r.peekN(1)):
		return r.readNumber()
	case isDigit(c):
		return r.readNumber()
	default:
		return r.readSymbol()
	}
}

func (r *reader) readList() (*Expression, error) {
	start := r.here()

	r.advance() // '('

	var items []*Expression

	for {
		r.skipAtmosphere()

		if r.eof() {
			rng := LocationRange{Start: start, End: r.here()}

			return nil, NewErrorAt(KindEOFWhileScanningAList, rng)
		}

		if r.peek() == ')' {
			r.advance()

			end := r.here()

			return NewList(items, LocationRange{Start: start, End: end}), nil
		}

		item, err := r.readForm()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
}

func (r *reader) readString() (*Expression, error) {
	start := r.here()

	r.advance() // opening '"'

	var out []byte

	for {
		if r.eof() {
			rng := LocationRange{Start: start, End: r.here()}

			return nil, NewErrorAt(KindEOFWhileScanningAList, rng).
				WithMessage("end of file while scanning a string")
		}

		c := r.peek()

		if c == '"' {
			r.advance()

			end := r.here()

			return NewString(string(out), LocationRange{Start: start, End: end}), nil
		}

		if c == '\\' {
			r.advance()

			if r.eof() {
				rng := LocationRange{Start: start, End: r.here()}

				return nil, NewErrorAt(KindEOFWhileScanningAList, rng).
					WithMessage("end of file while scanning a string escape")
			}

			esc := r.peek()
			r.advance()

			switch esc {
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			default:
				out = append(out, '\\', esc)
			}

			continue
		}

		out = append(out, c)
		r.advance()
	}
}

func (r *reader) readNumber() (*Expression, error) {
	start := r.here()

	negative := false
	if r.peek() == '-' {
		negative = true

		r.advance()
	}

	if !isDigit(r.peek()) {
		rng := LocationRange{Start: start, End: r.here()}

		return nil, NewErrorAt(KindInvalidDigitForNumber, rng)
	}

	textStart := r.pos
	float := false

	for !r.eof() && (isDigit(r.peek()) || r.peek() == '.') {
		if r.peek() == '.' {
			if float {
				dotStart := r.here()

				r.advance()

				rng := LocationRange{Start: dotStart, End: r.here()}

				return nil, NewErrorAt(KindTwoFloatPoints, rng)
			}

			float = true
		}

		r.advance()
	}

	if !r.eof() && isSymbolByte(r.peek()) && !isSpace(r.peek()) && r.peek() != ')' {
		rng := LocationRange{Start: start, End: r.here()}

		return nil, NewErrorAt(KindInvalidDigitForNumber, rng)
	}

	text := string(r.input[textStart:r.pos])
	end := r.here()

	return NewNumber(text, negative, float, LocationRange{Start: start, End: end}), nil
}

func (r *reader) readKeyword() (*Expression, error) {
	start := r.here()

	r.advance() // ':'

	nameStart := r.pos

	for !r.eof() && isSymbolByte(r.peek()) {
		r.advance()
	}

	if r.pos == nameStart {
		rng := LocationRange{Start: start, End: r.here()}

		return nil, NewErrorAt(KindInvalidCharacterForSymbol, rng).
			WithMessage("empty keyword")
	}

	name := string(r.input[nameStart:r.pos])
	end := r.here()

	return NewKeyword(name, LocationRange{Start: start, End: end}), nil
}

func (r *reader) readSymbol() (*Expression, error) {
	start := r.here()

	if !isSymbolByte(r.peek()) {
		rng := LocationRange{Start: start, End: r.here()}

		return nil, NewErrorAt(KindInvalidCharacterForSymbol, rng)
	}

	nameStart := r.pos

	for !r.eof() && isSymbolByte(r.peek()) {
		r.advance()
	}

	lexeme := string(r.input[nameStart:r.pos])
	end := r.here()
	rng := LocationRange{Start: start, End: end}

	ns, name := SplitSymbol(lexeme)
	if ns == "" {
		ns = r.namespace
	}

	return NewSymbol(ns, name, rng), nil
}

// SplitSymbol splits a raw symbol lexeme at its first '/' into a namespace
// and a name. A lexeme with no '/' yields an empty namespace. A lexeme whose
// only '/' is the first byte (e.g. "/") is treated as unqualified, matching
// the convention that "/" alone names the division operator rather than an
// empty-namespace reference.
func SplitSymbol(lexeme string) (ns, name string) {
	if lexeme == "/" {
		return "", "/"
	}

	for i := 0; i < len(lexeme); i++ {
		if lexeme[i] == '/' {
			return lexeme[:i], lexeme[i+1:]
		}
	}

	return "", lexeme
}
