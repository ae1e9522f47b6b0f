package monkey

import (
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

// NextToken scans and returns the next token. It never fails: characters
// outside the language become ILLEGAL tokens and scanning continues.
func (l *lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Pos: Position{Line: l.line, Column: l.column}}

	switch l.ch {
	case 0:
		tok.Type = tokenEOF
		tok.Literal = ""
	case '=':
		if l.peekRune() == '=' {
			first := l.ch
			l.readRune()
			tok = l.makeToken(tokenEQ, string(first)+string(l.ch))
			l.readRune()
		} else {
			tok = l.makeToken(tokenAssign, "=")
			l.readRune()
		}
	case '!':
		if l.peekRune() == '=' {
			first := l.ch
			l.readRune()
			tok = l.makeToken(tokenNotEQ, string(first)+string(l.ch))
			l.readRune()
		} else {
			tok = l.makeToken(tokenBang, "!")
			l.readRune()
		}
	case '+':
		tok = l.makeToken(tokenPlus, "+")
		l.readRune()
	case '-':
		tok = l.makeToken(tokenMinus, "-")
		l.readRune()
	case '*':
		tok = l.makeToken(tokenAsterisk, "*")
		l.readRune()
	case '/':
		tok = l.makeToken(tokenSlash, "/")
		l.readRune()
	case '<':
		tok = l.makeToken(tokenLT, "<")
		l.readRune()
	case '>':
		tok = l.makeToken(tokenGT, ">")
		l.readRune()
	case ',':
		tok = l.makeToken(tokenComma, ",")
		l.readRune()
	case ';':
		tok = l.makeToken(tokenSemicolon, ";")
		l.readRune()
	case ':':
		tok = l.makeToken(tokenColon, ":")
		l.readRune()
	case '(':
		tok = l.makeToken(tokenLParen, "(")
		l.readRune()
	case ')':
		tok = l.makeToken(tokenRParen, ")")
		l.readRune()
	case '{':
		tok = l.makeToken(tokenLBrace, "{")
		l.readRune()
	case '}':
		tok = l.makeToken(tokenRBrace, "}")
		l.readRune()
	case '[':
		tok = l.makeToken(tokenLBracket, "[")
		l.readRune()
	case ']':
		tok = l.makeToken(tokenRBracket, "]")
		l.readRune()
	case '"':
		literal, terminated := l.readString()
		if !terminated {
			tok.Type = tokenIllegal
			tok.Literal = "unterminated string"
		} else {
			tok.Type = tokenString
			tok.Literal = literal
		}
	default:
		switch {
		case isIdentifierRune(l.ch):
			literal := l.readIdentifier()
			tok.Type = lookupIdent(literal)
			tok.Literal = literal
		case unicode.IsDigit(l.ch):
			tok.Type = tokenInt
			tok.Literal = l.readNumber()
		default:
			tok = l.makeToken(tokenIllegal, string(l.ch))
			l.readRune()
		}
	}

	return tok
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

func (l *lexer) makeToken(tt TokenType, literal string) Token {
	return Token{Type: tt, Literal: literal, Pos: Position{Line: l.line, Column: l.column}}
}

func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readRune()
	}
}

func (l *lexer) readIdentifier() string {
	start := l.currentOffset()
	for isIdentifierRune(l.peekRune()) {
		l.readRune()
	}
	literal := l.input[start:l.offset]
	l.readRune()
	return literal
}

func (l *lexer) readNumber() string {
	start := l.currentOffset()
	for unicode.IsDigit(l.peekRune()) {
		l.readRune()
	}
	literal := l.input[start:l.offset]
	l.readRune()
	return literal
}

// readString consumes raw characters up to the closing quote. The language
// has no escape sequences. The second return is false when the input ends
// before a closing quote is found.
func (l *lexer) readString() (string, bool) {
	start := l.offset
	for {
		l.readRune()
		switch l.ch {
		case 0:
			return "", false
		case '"':
			literal := l.input[start : l.offset-l.width]
			l.readRune()
			return literal, true
		}
	}
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
