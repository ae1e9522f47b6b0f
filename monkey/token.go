package monkey

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenInt    TokenType = "INT"
	tokenString TokenType = "STRING"

	tokenAssign   TokenType = "="
	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenBang     TokenType = "!"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
	tokenLT       TokenType = "<"
	tokenGT       TokenType = ">"
	tokenEQ       TokenType = "=="
	tokenNotEQ    TokenType = "!="

	tokenComma     TokenType = ","
	tokenSemicolon TokenType = ";"
	tokenColon     TokenType = ":"
	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"
	tokenLBracket  TokenType = "["
	tokenRBracket  TokenType = "]"

	tokenFunction TokenType = "FN"
	tokenLet      TokenType = "LET"
	tokenTrue     TokenType = "TRUE"
	tokenFalse    TokenType = "FALSE"
	tokenIf       TokenType = "IF"
	tokenElse     TokenType = "ELSE"
	tokenReturn   TokenType = "RETURN"
)

// Token captures lexical information for the parser. Token identity is
// structural: two tokens with the same type and literal are the same token
// regardless of where they were read.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a line and column in the source text.
type Position struct {
	Line   int
	Column int
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "fn":
		return tokenFunction
	case "let":
		return tokenLet
	case "true":
		return tokenTrue
	case "false":
		return tokenFalse
	case "if":
		return tokenIf
	case "else":
		return tokenElse
	case "return":
		return tokenReturn
	}
	return tokenIdent
}
