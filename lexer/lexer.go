package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/RZakaria1/LDI-Interpreter/token"
)

// Error is a lexical failure: an invalid character, an unterminated string
// or a number the float parser rejects.
type Error struct {
	Msg string
	Pos int // 1-based column
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical error at position %d: %s", e.Pos, e.Msg)
}

// Lexer tokenizes a single line of source. The line is scanned lazily, one
// token per NextToken call.
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	ch       byte // current char under examination
	err      *Error
}

func New(input string) *Lexer {
	return &Lexer{input: input, position: 0}
}

// Err returns the failure that produced the last ILLEGAL token, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	// once failed, the lexer stays at end of input
	if l.err != nil {
		return token.Token{Type: token.EOF, Pos: len(l.input) + 1}
	}

	l.readChar()
	l.skipWhitespace()

	pos := l.position
	switch l.ch {
	case '=':
		if l.getChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Literal: "=="}
		} else {
			tok = newToken(token.ASSIGN, '=')
		}
	case '!':
		if l.getChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Literal: "!="}
		} else {
			return l.invalidChar(pos)
		}
	case '<':
		if l.getChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LT_EQ, Literal: "<="}
		} else {
			tok = newToken(token.LT, l.ch)
		}
	case '>':
		if l.getChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GT_EQ, Literal: ">="}
		} else {
			tok = newToken(token.GT, l.ch)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch)
	case '-':
		tok = newToken(token.MINUS, l.ch)
	case '*':
		tok = newToken(token.ASTERISK, l.ch)
	case '/':
		tok = newToken(token.SLASH, l.ch)
	case '(':
		tok = newToken(token.LPAREN, l.ch)
	case ')':
		tok = newToken(token.RPAREN, l.ch)
	case '"':
		str, ok := l.readString()
		if !ok {
			return l.illegal(pos, "no right \" found")
		}
		l.readChar() // eats '"'
		tok = token.Token{Type: token.STRING, Literal: str}
	case 0:
		if l.position <= len(l.input) {
			return l.illegal(pos, "invalid character NUL")
		}
		tok.Literal = ""
		tok.Type = token.EOF
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
		} else if isDigit(l.ch) {
			tok.Literal = l.readNumber()
			// an overflowing digit run is still a number; ParseFloat yields +Inf
			value, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return l.illegal(pos, fmt.Sprintf("malformed number %q", tok.Literal))
			}
			tok.Type = token.NUMBER
			tok.Number = value
		} else {
			return l.invalidChar(pos)
		}
	}

	tok.Pos = pos
	return tok
}

func (l *Lexer) illegal(pos int, msg string) token.Token {
	l.err = &Error{Msg: msg, Pos: pos}
	return token.Token{Type: token.ILLEGAL, Literal: msg, Pos: pos}
}

// invalidChar reports the whole UTF-8 character starting at pos, not just
// its first byte.
func (l *Lexer) invalidChar(pos int) token.Token {
	r, _ := utf8.DecodeRuneInString(l.input[pos-1:])
	return l.illegal(pos, fmt.Sprintf("invalid character '%c'", r))
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// getChar peeks at the next char without consuming it.
func (l *Lexer) getChar() byte {
	if l.position >= len(l.input) {
		return 0
	}
	return l.input[l.position]
}

func (l *Lexer) readChar() byte {
	if l.position >= len(l.input) {
		l.ch = 0
		// keep position pinned one past the end so EOF stays reported
		l.position = len(l.input) + 1
	} else {
		l.ch = l.input[l.position]
		l.position++
	}
	return l.ch
}

func (l *Lexer) readIdentifier() string {
	id := []byte{l.ch}
	for isLetter(l.getChar()) || isDigit(l.getChar()) || l.getChar() == '_' {
		id = append(id, l.readChar())
	}
	return string(id)
}

func (l *Lexer) readNumber() string {
	num := []byte{l.ch}
	for isDigit(l.getChar()) || l.getChar() == '.' {
		num = append(num, l.readChar())
	}
	return string(num)
}

// readString consumes the characters after an opening quote up to, but not
// including, the closing quote. It reports false when the line ends first.
func (l *Lexer) readString() (string, bool) {
	str := []byte{}
	for {
		switch l.getChar() {
		case '"':
			return string(str), true
		case 0:
			if l.position >= len(l.input) {
				return string(str), false
			}
		}
		str = append(str, l.readChar())
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func newToken(tokenType token.TokenType, ch byte) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch)}
}
