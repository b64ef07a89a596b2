package token

import "strings"

type TokenType int

const (
	NIL TokenType = iota
	ILLEGAL
	EOF
	// Identifiers + literals
	IDENT
	NUMBER
	// "foobar"
	STRING
	// Operators
	ASSIGN
	PLUS
	MINUS
	ASTERISK // "*"
	SLASH    // "/"
	LT       // "<"
	GT       // ">"
	EQ       // "=="
	NOT_EQ   // "!="
	LT_EQ    // "<="
	GT_EQ    // ">="
	// Delimiters
	LPAREN // "("
	RPAREN // ")"
	// Keywords
	TRUE
	FALSE
	AND
	OR
	NOT
	PRINT
)

var names = map[TokenType]string{
	NIL:      "NIL",
	ILLEGAL:  "ILLEGAL",
	EOF:      "EOF",
	IDENT:    "IDENT",
	NUMBER:   "NUMBER",
	STRING:   "STRING",
	ASSIGN:   "=",
	PLUS:     "+",
	MINUS:    "-",
	ASTERISK: "*",
	SLASH:    "/",
	LT:       "<",
	GT:       ">",
	EQ:       "==",
	NOT_EQ:   "!=",
	LT_EQ:    "<=",
	GT_EQ:    ">=",
	LPAREN:   "(",
	RPAREN:   ")",
	TRUE:     "TRUE",
	FALSE:    "FALSE",
	AND:      "and",
	OR:       "or",
	NOT:      "not",
	PRINT:    "print",
}

// Name returns the printable name of t used in diagnostics.
func (t TokenType) Name() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "UNKNOWN"
}

func (t TokenType) String() string {
	return t.Name()
}

type Token struct {
	Type    TokenType
	Literal string
	Number  float64 // value of a NUMBER token
	Pos     int     // 1-based column of the first character
}

var keywords = map[string]TokenType{
	"true":  TRUE,
	"false": FALSE,
	"and":   AND,
	"or":    OR,
	"not":   NOT,
	"print": PRINT,
}

// LookupIdent maps a word to its keyword type. Keywords match regardless of
// case; anything else is an identifier.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}
