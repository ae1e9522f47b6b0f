package monkey

import (
	"fmt"
	"strconv"
)

type parseError struct {
	pos Position
	msg string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.pos.Line, e.pos.Column, e.msg)
}

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Operator precedence ranks, lowest binds loosest.
const (
	lowestPrec = iota
	precEquals
	precLessGreater
	precSum
	precProduct
	precPrefix
	precCall
	precIndex
)

var precedences = map[TokenType]int{
	tokenEQ:       precEquals,
	tokenNotEQ:    precEquals,
	tokenLT:       precLessGreater,
	tokenGT:       precLessGreater,
	tokenPlus:     precSum,
	tokenMinus:    precSum,
	tokenSlash:    precProduct,
	tokenAsterisk: precProduct,
	tokenLParen:   precCall,
	tokenLBracket: precIndex,
}

type parser struct {
	l *lexer

	curToken  Token
	peekToken Token

	errors []error

	prefixFns map[TokenType]prefixParseFn
	infixFns  map[TokenType]infixParseFn
}

func newParser(input string) *parser {
	l := newLexer(input)
	p := &parser{l: l}

	p.prefixFns = make(map[TokenType]prefixParseFn)
	p.infixFns = make(map[TokenType]infixParseFn)

	p.registerPrefix(tokenIdent, p.parseIdentifier)
	p.registerPrefix(tokenInt, p.parseIntegerLiteral)
	p.registerPrefix(tokenString, p.parseStringLiteral)
	p.registerPrefix(tokenTrue, p.parseBooleanLiteral)
	p.registerPrefix(tokenFalse, p.parseBooleanLiteral)
	p.registerPrefix(tokenBang, p.parsePrefixExpression)
	p.registerPrefix(tokenMinus, p.parsePrefixExpression)
	p.registerPrefix(tokenLParen, p.parseGroupedExpression)
	p.registerPrefix(tokenIf, p.parseIfExpression)
	p.registerPrefix(tokenFunction, p.parseFunctionLiteral)
	p.registerPrefix(tokenLBracket, p.parseArrayLiteral)
	p.registerPrefix(tokenLBrace, p.parseHashLiteral)

	p.infixFns[tokenPlus] = p.parseInfixExpression
	p.infixFns[tokenMinus] = p.parseInfixExpression
	p.infixFns[tokenSlash] = p.parseInfixExpression
	p.infixFns[tokenAsterisk] = p.parseInfixExpression
	p.infixFns[tokenEQ] = p.parseInfixExpression
	p.infixFns[tokenNotEQ] = p.parseInfixExpression
	p.infixFns[tokenLT] = p.parseInfixExpression
	p.infixFns[tokenGT] = p.parseInfixExpression
	p.infixFns[tokenLParen] = p.parseCallExpression
	p.infixFns[tokenLBracket] = p.parseIndexExpression

	p.nextToken()
	p.nextToken()

	return p
}

func (p *parser) registerPrefix(tt TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Parse runs the source through the lexer and parser and returns the
// program together with any parse errors, in the order they were found.
// Parsing is best-effort: a malformed statement contributes an error and
// is skipped, so several independent errors can surface from one pass.
func Parse(input string) (*Program, []error) {
	return newParser(input).parseProgram()
}

func (p *parser) parseProgram() (*Program, []error) {
	program := &Program{}

	for p.curToken.Type != tokenEOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program, p.errors
}

func (p *parser) parseStatement() Statement {
	switch p.curToken.Type {
	case tokenLet:
		return p.parseLetStatement()
	case tokenReturn:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *parser) parseLetStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	name := &Identifier{Name: p.curToken.Literal, token: p.curToken}

	if !p.expectPeek(tokenAssign) {
		return nil
	}

	p.nextToken()
	value := p.parseExpression(lowestPrec)

	if p.peekToken.Type == tokenSemicolon {
		p.nextToken()
	}

	return &LetStatement{Name: name, Value: value, token: tok}
}

func (p *parser) parseReturnStatement() Statement {
	tok := p.curToken
	p.nextToken()
	value := p.parseExpression(lowestPrec)

	if p.peekToken.Type == tokenSemicolon {
		p.nextToken()
	}

	return &ReturnStatement{Value: value, token: tok}
}

func (p *parser) parseExpressionStatement() Statement {
	tok := p.curToken
	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}

	if p.peekToken.Type == tokenSemicolon {
		p.nextToken()
	}

	return &ExpressionStatement{Expr: expr, token: tok}
}

func (p *parser) parseExpression(precedence int) Expression {
	prefix := p.prefixFns[p.curToken.Type]
	if prefix == nil {
		p.errorNoPrefix(p.curToken)
		return nil
	}

	left := prefix()

	for p.peekToken.Type != tokenSemicolon && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *parser) parseIdentifier() Expression {
	return &Identifier{Name: p.curToken.Literal, token: p.curToken}
}

func (p *parser) parseIntegerLiteral() Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, &parseError{
			pos: p.curToken.Pos,
			msg: fmt.Sprintf("could not parse %q as integer", p.curToken.Literal),
		})
		return nil
	}
	return &IntegerLiteral{Value: value, token: p.curToken}
}

func (p *parser) parseStringLiteral() Expression {
	return &StringLiteral{Value: p.curToken.Literal, token: p.curToken}
}

func (p *parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Value: p.curToken.Type == tokenTrue, token: p.curToken}
}

func (p *parser) parsePrefixExpression() Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(precPrefix)
	return &PrefixExpression{Operator: tok.Literal, Right: right, token: tok}
}

func (p *parser) parseInfixExpression(left Expression) Expression {
	tok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &InfixExpression{Left: left, Operator: tok.Literal, Right: right, token: tok}
}

func (p *parser) parseGroupedExpression() Expression {
	p.nextToken()
	expr := p.parseExpression(lowestPrec)
	if !p.expectPeek(tokenRParen) {
		return nil
	}
	return expr
}

func (p *parser) parseIfExpression() Expression {
	tok := p.curToken
	if !p.expectPeek(tokenLParen) {
		return nil
	}

	p.nextToken()
	condition := p.parseExpression(lowestPrec)

	if !p.expectPeek(tokenRParen) {
		return nil
	}
	if !p.expectPeek(tokenLBrace) {
		return nil
	}

	consequence := p.parseBlockStatement()

	var alternative *BlockStatement
	if p.peekToken.Type == tokenElse {
		p.nextToken()
		if !p.expectPeek(tokenLBrace) {
			return nil
		}
		alternative = p.parseBlockStatement()
	}

	return &IfExpression{Condition: condition, Consequence: consequence, Alternative: alternative, token: tok}
}

func (p *parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{token: p.curToken}

	p.nextToken()
	for p.curToken.Type != tokenRBrace && p.curToken.Type != tokenEOF {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

func (p *parser) parseFunctionLiteral() Expression {
	tok := p.curToken
	if !p.expectPeek(tokenLParen) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}

	body := p.parseBlockStatement()

	return &FunctionLiteral{Parameters: params, Body: body, token: tok}
}

func (p *parser) parseFunctionParameters() ([]*Identifier, bool) {
	params := []*Identifier{}

	if p.peekToken.Type == tokenRParen {
		p.nextToken()
		return params, true
	}

	p.nextToken()
	params = append(params, &Identifier{Name: p.curToken.Literal, token: p.curToken})

	for p.peekToken.Type == tokenComma {
		p.nextToken()
		p.nextToken()
		params = append(params, &Identifier{Name: p.curToken.Literal, token: p.curToken})
	}

	if !p.expectPeek(tokenRParen) {
		return nil, false
	}

	return params, true
}

func (p *parser) parseCallExpression(callee Expression) Expression {
	tok := p.curToken
	args := p.parseExpressionList(tokenRParen)
	return &CallExpression{Callee: callee, Arguments: args, token: tok}
}

func (p *parser) parseArrayLiteral() Expression {
	tok := p.curToken
	elements := p.parseExpressionList(tokenRBracket)
	return &ArrayLiteral{Elements: elements, token: tok}
}

// parseExpressionList is shared by call arguments and array elements:
// comma-separated expressions up to the closing token.
func (p *parser) parseExpressionList(end TokenType) []Expression {
	list := []Expression{}

	if p.peekToken.Type == end {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(lowestPrec))

	for p.peekToken.Type == tokenComma {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(lowestPrec))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

func (p *parser) parseIndexExpression(collection Expression) Expression {
	tok := p.curToken
	p.nextToken()
	index := p.parseExpression(lowestPrec)
	if !p.expectPeek(tokenRBracket) {
		return nil
	}
	return &IndexExpression{Collection: collection, Index: index, token: tok}
}

func (p *parser) parseHashLiteral() Expression {
	tok := p.curToken
	pairs := []HashPair{}

	for p.peekToken.Type != tokenRBrace {
		p.nextToken()
		key := p.parseExpression(lowestPrec)

		if !p.expectPeek(tokenColon) {
			return nil
		}

		p.nextToken()
		value := p.parseExpression(lowestPrec)

		pairs = append(pairs, HashPair{Key: key, Value: value})

		if p.peekToken.Type != tokenRBrace && !p.expectPeek(tokenComma) {
			return nil
		}
	}

	if !p.expectPeek(tokenRBrace) {
		return nil
	}

	return &HashLiteral{Pairs: pairs, token: tok}
}

func (p *parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

func (p *parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

func (p *parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.errorExpected(tt, p.peekToken)
	return false
}

func (p *parser) errorExpected(expected TokenType, got Token) {
	p.errors = append(p.errors, &parseError{
		pos: got.Pos,
		msg: fmt.Sprintf("Next token expected to be %s, but found %s instead.", expected, got.Type),
	})
}

func (p *parser) errorNoPrefix(tok Token) {
	p.errors = append(p.errors, &parseError{
		pos: tok.Pos,
		msg: fmt.Sprintf("no prefix parser found for %s", tok.Type),
	})
}
