package monkey

import (
	"strconv"
	"strings"
)

// Node is implemented by every AST node. String returns the canonical
// source-like rendering; re-parsing a rendering yields a tree that renders
// to the same text.
type Node interface {
	Pos() Position
	String() string
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

// Program is the root of every parse: an ordered sequence of statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() Position {
	if len(p.Statements) == 0 {
		return Position{}
	}
	return p.Statements[0].Pos()
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, stmt := range p.Statements {
		sb.WriteString(stmt.String())
	}
	return sb.String()
}

type LetStatement struct {
	Name  *Identifier
	Value Expression
	token Token
}

func (s *LetStatement) stmtNode()     {}
func (s *LetStatement) Pos() Position { return s.token.Pos }

func (s *LetStatement) String() string {
	var sb strings.Builder
	sb.WriteString("let ")
	sb.WriteString(s.Name.String())
	sb.WriteString(" = ")
	if s.Value != nil {
		sb.WriteString(s.Value.String())
	}
	sb.WriteString(";")
	return sb.String()
}

type ReturnStatement struct {
	Value Expression
	token Token
}

func (s *ReturnStatement) stmtNode()     {}
func (s *ReturnStatement) Pos() Position { return s.token.Pos }

func (s *ReturnStatement) String() string {
	var sb strings.Builder
	sb.WriteString("return ")
	if s.Value != nil {
		sb.WriteString(s.Value.String())
	}
	sb.WriteString(";")
	return sb.String()
}

type ExpressionStatement struct {
	Expr  Expression
	token Token
}

func (s *ExpressionStatement) stmtNode()     {}
func (s *ExpressionStatement) Pos() Position { return s.token.Pos }

func (s *ExpressionStatement) String() string {
	if s.Expr == nil {
		return ""
	}
	return s.Expr.String()
}

type BlockStatement struct {
	Statements []Statement
	token      Token
}

func (s *BlockStatement) stmtNode()     {}
func (s *BlockStatement) Pos() Position { return s.token.Pos }

func (s *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range s.Statements {
		sb.WriteString(stmt.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

type Identifier struct {
	Name  string
	token Token
}

func (e *Identifier) exprNode()      {}
func (e *Identifier) Pos() Position  { return e.token.Pos }
func (e *Identifier) String() string { return e.Name }

type IntegerLiteral struct {
	Value int64
	token Token
}

func (e *IntegerLiteral) exprNode()      {}
func (e *IntegerLiteral) Pos() Position  { return e.token.Pos }
func (e *IntegerLiteral) String() string { return strconv.FormatInt(e.Value, 10) }

type StringLiteral struct {
	Value string
	token Token
}

func (e *StringLiteral) exprNode()     {}
func (e *StringLiteral) Pos() Position { return e.token.Pos }

// String renders the literal quoted so the rendering lexes back to one
// STRING token.
func (e *StringLiteral) String() string { return `"` + e.Value + `"` }

type BooleanLiteral struct {
	Value bool
	token Token
}

func (e *BooleanLiteral) exprNode()      {}
func (e *BooleanLiteral) Pos() Position  { return e.token.Pos }
func (e *BooleanLiteral) String() string { return e.token.Literal }

type PrefixExpression struct {
	Operator string
	Right    Expression
	token    Token
}

func (e *PrefixExpression) exprNode()     {}
func (e *PrefixExpression) Pos() Position { return e.token.Pos }

func (e *PrefixExpression) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(e.Operator)
	if e.Right != nil {
		sb.WriteString(e.Right.String())
	}
	sb.WriteString(")")
	return sb.String()
}

type InfixExpression struct {
	Left     Expression
	Operator string
	Right    Expression
	token    Token
}

func (e *InfixExpression) exprNode()     {}
func (e *InfixExpression) Pos() Position { return e.token.Pos }

func (e *InfixExpression) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(e.Left.String())
	sb.WriteString(" ")
	sb.WriteString(e.Operator)
	sb.WriteString(" ")
	if e.Right != nil {
		sb.WriteString(e.Right.String())
	}
	sb.WriteString(")")
	return sb.String()
}

type IfExpression struct {
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
	token       Token
}

func (e *IfExpression) exprNode()     {}
func (e *IfExpression) Pos() Position { return e.token.Pos }

func (e *IfExpression) String() string {
	var sb strings.Builder
	sb.WriteString("if (")
	sb.WriteString(e.Condition.String())
	sb.WriteString(") ")
	sb.WriteString(e.Consequence.String())
	if e.Alternative != nil {
		sb.WriteString(" else ")
		sb.WriteString(e.Alternative.String())
	}
	return sb.String()
}

type FunctionLiteral struct {
	Parameters []*Identifier
	Body       *BlockStatement
	token      Token
}

func (e *FunctionLiteral) exprNode()     {}
func (e *FunctionLiteral) Pos() Position { return e.token.Pos }

func (e *FunctionLiteral) String() string {
	params := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		params[i] = p.String()
	}

	var sb strings.Builder
	sb.WriteString("fn(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(") ")
	sb.WriteString(e.Body.String())
	return sb.String()
}

type CallExpression struct {
	Callee    Expression
	Arguments []Expression
	token     Token
}

func (e *CallExpression) exprNode()     {}
func (e *CallExpression) Pos() Position { return e.token.Pos }

func (e *CallExpression) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}

	var sb strings.Builder
	sb.WriteString(e.Callee.String())
	sb.WriteString("(")
	sb.WriteString(strings.Join(args, ", "))
	sb.WriteString(")")
	return sb.String()
}

type ArrayLiteral struct {
	Elements []Expression
	token    Token
}

func (e *ArrayLiteral) exprNode()     {}
func (e *ArrayLiteral) Pos() Position { return e.token.Pos }

func (e *ArrayLiteral) String() string {
	elements := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		elements[i] = el.String()
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

type IndexExpression struct {
	Collection Expression
	Index      Expression
	token      Token
}

func (e *IndexExpression) exprNode()     {}
func (e *IndexExpression) Pos() Position { return e.token.Pos }

func (e *IndexExpression) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(e.Collection.String())
	sb.WriteString("[")
	sb.WriteString(e.Index.String())
	sb.WriteString("])")
	return sb.String()
}

// HashPair preserves the written order of a hash literal entry. Duplicate
// keys are resolved at evaluation time, last write wins.
type HashPair struct {
	Key   Expression
	Value Expression
}

type HashLiteral struct {
	Pairs []HashPair
	token Token
}

func (e *HashLiteral) exprNode()     {}
func (e *HashLiteral) Pos() Position { return e.token.Pos }

func (e *HashLiteral) String() string {
	pairs := make([]string, len(e.Pairs))
	for i, pair := range e.Pairs {
		pairs[i] = pair.Key.String() + ": " + pair.Value.String()
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
