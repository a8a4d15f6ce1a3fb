// Package pattern splits a date pattern into symbol runs and literal text.
//
// The pattern language is small:
//
//   - a run of one repeated letter is a symbol ("YYYY", "MM", "d");
//   - a run of one repeated non-letter ("-", "::") is literal;
//   - a '#' directly after a run asks for an ordinal suffix ("D#") and is
//     consumed, even after a literal run;
//   - text between matching single or double quotes is literal ('at', "T");
//   - a backslash makes the next character literal (\T).
//
// Tokenizing never fails.  An unterminated quote ends at the end of the
// pattern, and a trailing backslash yields an empty literal.
package pattern

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind distinguishes symbol tokens from literal tokens.
type Kind int

const (
	// Symbol is a run of one repeated character, resolved against a date.
	Symbol Kind = iota
	// Literal is text copied to the output unchanged.
	Literal
)

func (k Kind) String() string {
	switch k {
	case Symbol:
		return "symbol"
	case Literal:
		return "literal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one element of a tokenized pattern.
type Token struct {
	Kind Kind
	// Text is the symbol run or the literal body.  Quote characters and
	// escaping backslashes never appear in it.
	Text string
	// Suffix is set on a symbol followed by '#'.  Always false for literals.
	Suffix bool
}

func (t Token) String() string {
	if t.Kind == Literal {
		return fmt.Sprintf("Literal(%q)", t.Text)
	}
	if t.Suffix {
		return "Symbol(" + t.Text + "#)"
	}
	return "Symbol(" + t.Text + ")"
}

// scanner states
const (
	stateBegin = iota
	stateSymbol
	stateLiteral
	stateLiteralSingle
)

// Tokenize scans p into tokens.  The tokens' source spans partition p.
func Tokenize(p string) []Token {
	var (
		tokens []Token
		text   strings.Builder
		state  = stateBegin
		ref    rune // first character of the run, or the opening quote
	)

	// flush moves the text accumulated for the last token into it.
	flush := func() {
		if len(tokens) > 0 {
			tokens[len(tokens)-1].Text = text.String()
		}
		text.Reset()
	}

	runes := []rune(p)
	for i := 0; i < len(runes); {
		ch := runes[i]
		switch state {
		case stateBegin:
			flush()
			ref = ch
			switch ch {
			case '\'', '"':
				tokens = append(tokens, Token{Kind: Literal})
				state = stateLiteral
			case '\\':
				tokens = append(tokens, Token{Kind: Literal})
				state = stateLiteralSingle
			default:
				kind := Symbol
				if !unicode.IsLetter(ch) {
					kind = Literal
				}
				tokens = append(tokens, Token{Kind: kind})
				text.WriteRune(ch)
				state = stateSymbol
			}
			i++

		case stateSymbol: // also scans non-letter runs
			switch {
			case ch == ref:
				text.WriteRune(ch)
				i++
			case ch == '#':
				last := &tokens[len(tokens)-1]
				last.Suffix = last.Kind == Symbol
				state = stateBegin
				i++
			default:
				// Not consumed: ch starts the next token.
				state = stateBegin
			}

		case stateLiteral:
			if ch == ref {
				state = stateBegin
			} else {
				text.WriteRune(ch)
			}
			i++

		case stateLiteralSingle:
			text.WriteRune(ch)
			state = stateBegin
			i++
		}
	}
	flush()
	return tokens
}

// Literals returns the bodies of the literal tokens, in order.
func Literals(tokens []Token) []string {
	var out []string
	for _, t := range tokens {
		if t.Kind == Literal {
			out = append(out, t.Text)
		}
	}
	return out
}
