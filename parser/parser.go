package parser

import (
	"fmt"

	"github.com/RZakaria1/LDI-Interpreter/ast"
	"github.com/RZakaria1/LDI-Interpreter/lexer"
	"github.com/RZakaria1/LDI-Interpreter/token"
)

const (
	_ int = iota * 10
	LOWEST
	LOGICAL // and | or
	COMPARE // == != < > <= >=
	SUM     // + -
	PRODUCT // * /
	PREFIX  // -X or not X
)

var precedences = map[token.TokenType]int{
	token.AND:      LOGICAL,
	token.OR:       LOGICAL,
	token.EQ:       COMPARE,
	token.NOT_EQ:   COMPARE,
	token.LT:       COMPARE,
	token.GT:       COMPARE,
	token.LT_EQ:    COMPARE,
	token.GT_EQ:    COMPARE,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
}

// Error is a syntax error. Expected is empty when the grammar position
// accepts more than one kind of token.
type Error struct {
	Expected string
	Got      token.TokenType
	Pos      int
	Msg      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l      *lexer.Lexer
	errors []error

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []error{},
	}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.NOT, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for tokenType := range precedences {
		p.registerInfix(tokenType, p.parseInfixExpression)
	}

	return p
}

func (p *Parser) GetToken() token.Token {
	if p.curToken.Type == token.NIL {
		p.curToken = p.l.NextToken()
		p.peekToken.Type = token.NIL
	}
	return p.curToken
}

func (p *Parser) PeekToken() token.Token {
	p.GetToken()
	if p.peekToken.Type == token.NIL {
		p.peekToken = p.l.NextToken()
	}
	return p.peekToken
}

func (p *Parser) nextToken() {
	if p.peekToken.Type != token.NIL {
		p.curToken = p.peekToken
	} else {
		p.curToken = p.l.NextToken()
	}
	p.peekToken = token.Token{}
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.GetToken().Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.PeekToken().Type == t
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	if p.peekToken.Type == token.ILLEGAL {
		p.lexerError()
		return
	}
	p.errors = append(p.errors, &Error{
		Expected: t.Name(),
		Got:      p.peekToken.Type,
		Pos:      p.peekToken.Pos,
		Msg: fmt.Sprintf("expected next token to be '%s', got '%s' instead",
			t.Name(), p.peekToken.Type.Name()),
	})
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	if tok.Type == token.ILLEGAL {
		p.lexerError()
		return
	}
	p.errors = append(p.errors, &Error{
		Got: tok.Type,
		Pos: tok.Pos,
		Msg: fmt.Sprintf("expected an expression, got '%s' instead", tok.Type.Name()),
	})
}

func (p *Parser) lexerError() {
	if err := p.l.Err(); err != nil {
		p.errors = append(p.errors, err)
	}
}

// ParseStatement parses the whole token stream of one line as a single
// statement. It returns a nil statement and a nil error for a line without
// tokens, and the first recorded error when the line is malformed.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	stmt := p.parseStatement()
	if len(p.errors) == 0 && stmt != nil {
		p.expectPeek(token.EOF)
	}
	if len(p.errors) != 0 {
		return nil, p.errors[0]
	}
	return stmt, nil
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.GetToken().Type {
	case token.PRINT:
		return p.parsePrintStatement()
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignStatement()
		}
		return p.parseExpressionStatement()
	case token.EOF:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseAssignStatement() ast.Statement {
	stmt := &ast.AssignStatement{Token: p.GetToken()}
	stmt.Name = &ast.Identifier{Token: p.GetToken(), Value: p.GetToken().Literal}

	p.nextToken() // eats IDENT
	p.nextToken() // eats '='

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	return stmt
}

func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStatement{Token: p.GetToken()}

	p.nextToken() // eats 'print'

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.GetToken()}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	return stmt
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.GetToken().Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.GetToken())
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.PeekToken().Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()

		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) peekPrecedence() int {
	if p, ok := precedences[p.PeekToken().Type]; ok {
		return p
	}

	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if p, ok := precedences[p.GetToken().Type]; ok {
		return p
	}

	return LOWEST
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.GetToken(), Value: p.GetToken().Literal}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	return &ast.NumberLiteral{Token: p.GetToken(), Value: p.GetToken().Number}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.GetToken(), Value: p.GetToken().Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.BooleanLiteral{Token: p.GetToken(), Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.GetToken(),
		Operator: p.GetToken().Type.Name(),
	}

	p.nextToken()

	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}

	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.GetToken(),
		Operator: p.GetToken().Type.Name(),
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}

	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return exp
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}
