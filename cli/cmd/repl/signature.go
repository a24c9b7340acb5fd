package repl

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// signatureHintStyle styles for the call-position hint.
var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// functionCall represents a detected call form in the input: the cursor
// sits inside an open, unclosed "(name ...)".
type functionCall struct {
	name     string
	argIndex int
	inCall   bool
}

// detectFunctionCall analyzes the input to determine whether the cursor is
// inside a list form's argument position, returning the head symbol and the
// 0-based index of the argument under the cursor. A nested list counts as one
// argument, and whitespace after an argument moves on to the next index.
func detectFunctionCall(input string, cursor int) functionCall {
	if cursor > len(input) {
		cursor = len(input)
	}

	depth := 0
	openParenPos := -1

	for i := cursor - 1; i >= 0; i-- {
		switch input[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				openParenPos = i
			} else {
				depth--
			}
		}

		if openParenPos != -1 {
			break
		}
	}

	if openParenPos == -1 {
		return functionCall{inCall: false}
	}

	nameEnd := openParenPos + 1
	for nameEnd < cursor {
		r, size := utf8.DecodeRuneInString(input[nameEnd:])
		if isWordBoundary(r) {
			break
		}

		nameEnd += size
	}

	name := strings.TrimSpace(input[openParenPos+1 : nameEnd])
	if name == "" {
		return functionCall{inCall: false}
	}

	argIndex := -1
	inWord := false
	depth := 0

	for i := nameEnd; i < cursor; i++ {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case r == '(' && depth == 0:
			inWord = true
			argIndex++
			depth++
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth > 0:
		case isWordBoundary(r):
			inWord = false
		case !inWord:
			inWord = true
			argIndex++
		}

		i += size - 1
	}

	if !inWord {
		argIndex++
	}

	return functionCall{name: name, argIndex: argIndex, inCall: true}
}

// getSignature reports whether name is among the symbols seen so far in the
// namespace's tree. There is no parameter-arity metadata in this reader's
// AST, so the hint is the bare symbol name rather than a typed signature.
func getSignature(symbols []string, name string) (string, bool) {
	_, found := slices.BinarySearch(symbols, name)

	return name, found
}

// renderSignatureHint renders the call-position hint: the head symbol name
// plus the 0-based argument index currently under the cursor.
func renderSignatureHint(name string, argIndex int) string {
	if name == "" {
		return ""
	}

	return signatureNameStyle.Render(name) +
		signatureStyle.Render(" · arg ") +
		currentParamStyle.Render(strconv.Itoa(argIndex))
}
