// Package parser turns a flat Mini-PL token sequence into an AST of
// Statements, by recursive descent. It trusts the lexer to have already
// folded stray characters into Error tokens; a bare Error token reaching
// the parser is just one more unexpected token, reported like any other.
package parser

import (
	"log/slog"

	"github.com/minipl-lang/minipl/internal/ast"
	"github.com/minipl-lang/minipl/internal/span"
	"github.com/minipl-lang/minipl/internal/token"
)

type parser struct {
	tokens []token.Token
	pos    int
	logger *slog.Logger
}

// Parse consumes a non-verbose token stream (as produced by lexer.Scan with
// verbose=false) and returns the program as a sequence of top-level
// Statements, or the first ParseError encountered. logger may be nil.
func Parse(tokens []token.Token, logger *slog.Logger) ([]ast.Statement, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}
	p := &parser{tokens: tokens, logger: logger}

	if len(tokens) == 1 && tokens[0].Kind == token.EOF {
		return nil, errNothingToParse(tokens[0].Span)
	}

	var stmts []ast.Statement
	for !p.check(token.EOF) {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		p.logger.Debug("parsed statement", "span", stmt.Span.String())
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// --- token stream primitives ---

func (p *parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *parser) advance() (token.Token, error) {
	if p.pos >= len(p.tokens) {
		end := 0
		if n := len(p.tokens); n > 0 {
			end = p.tokens[n-1].Span.End
		}
		return token.Token{}, errOutOfTokens(span.New(end, end))
	}
	t := p.tokens[p.pos]
	p.pos++
	return t, nil
}

// match consumes and returns the next token if it is one of kinds, without
// consuming it otherwise.
func (p *parser) match(kinds ...token.Kind) (token.Token, bool) {
	for _, k := range kinds {
		if p.check(k) {
			t, _ := p.advance()
			return t, true
		}
	}
	return token.Token{}, false
}

// expectSemicolon consumes the `;` ending a statement and returns sp extended
// to cover it; sp alone is reported when the `;` is missing.
func (p *parser) expectSemicolon(sp span.Span) (span.Span, error) {
	if semi, ok := p.match(token.Semicolon); ok {
		return sp.Union(semi.Span), nil
	}
	return sp, errMissingSemicolon(sp)
}

// --- statements ---

func (p *parser) declaration() (ast.Statement, error) {
	if p.check(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) varDeclaration() (ast.Statement, error) {
	varTok, err := p.advance() // consume 'var'
	if err != nil {
		return ast.Statement{}, err
	}

	nameTok, err := p.advance()
	if err != nil {
		return ast.Statement{}, err
	}
	if nameTok.Kind != token.Identifier {
		return ast.Statement{}, errExpectedIdentifier(nameTok.Span, nameTok)
	}
	name := nameTok.Str

	colonTok, err := p.advance()
	if err != nil {
		return ast.Statement{}, err
	}
	if colonTok.Kind != token.Colon {
		return ast.Statement{}, errExpectedTypeAnnotation(colonTok.Span, colonTok)
	}

	typeTok, err := p.advance()
	if err != nil {
		return ast.Statement{}, err
	}
	var vt ast.VarType
	switch typeTok.Kind {
	case token.Bool:
		vt = ast.Boolean
	case token.Int:
		vt = ast.NumberType
	case token.String:
		vt = ast.TextType
	default:
		return ast.Statement{}, errExpectedTypeAnnotation(typeTok.Span, typeTok)
	}

	next, err := p.advance()
	if err != nil {
		return ast.Statement{}, err
	}
	switch next.Kind {
	case token.Assign:
		initializer, err := p.expression()
		if err != nil {
			return ast.Statement{}, err
		}
		sp := span.New(varTok.Span.Start, initializer.Span.End)
		if sp, err = p.expectSemicolon(sp); err != nil {
			return ast.Statement{}, err
		}
		return ast.Statement{
			Stmt: ast.VariableDefinition{Name: name, DeclaredType: vt, Initializer: &initializer},
			Span: sp,
		}, nil
	case token.Semicolon:
		sp := span.New(varTok.Span.Start, next.Span.End)
		return ast.Statement{
			Stmt: ast.VariableDefinition{Name: name, DeclaredType: vt},
			Span: sp,
		}, nil
	case token.Equal:
		return ast.Statement{}, errExpectedAssignFoundEqual(next.Span)
	default:
		return ast.Statement{}, errExpectedAssignFoundToken(next.Span, next)
	}
}

func (p *parser) statement() (ast.Statement, error) {
	switch p.peek().Kind {
	case token.For:
		return p.forStatement()
	case token.Assert:
		return p.assertStatement()
	case token.Print:
		return p.printStatement()
	case token.Read:
		return p.readStatement()
	default:
		return p.exprStatement()
	}
}

func (p *parser) assertStatement() (ast.Statement, error) {
	start, err := p.advance() // consume 'assert'
	if err != nil {
		return ast.Statement{}, err
	}
	expr, err := p.expression()
	if err != nil {
		return ast.Statement{}, err
	}
	sp := span.New(start.Span.Start, expr.Span.End)
	if sp, err = p.expectSemicolon(sp); err != nil {
		return ast.Statement{}, err
	}
	return ast.Statement{Stmt: ast.Assert{Expr: expr}, Span: sp}, nil
}

func (p *parser) printStatement() (ast.Statement, error) {
	start, err := p.advance() // consume 'print'
	if err != nil {
		return ast.Statement{}, err
	}
	expr, err := p.expression()
	if err != nil {
		return ast.Statement{}, err
	}
	sp := span.New(start.Span.Start, expr.Span.End)
	if sp, err = p.expectSemicolon(sp); err != nil {
		return ast.Statement{}, err
	}
	return ast.Statement{Stmt: ast.Print{Expr: expr}, Span: sp}, nil
}

func (p *parser) readStatement() (ast.Statement, error) {
	start, err := p.advance() // consume 'read'
	if err != nil {
		return ast.Statement{}, err
	}
	nameTok, err := p.advance()
	if err != nil {
		return ast.Statement{}, err
	}
	if nameTok.Kind != token.Identifier {
		return ast.Statement{}, errReadToNonVariable(span.New(start.Span.Start, nameTok.Span.End), nameTok)
	}
	sp := span.New(start.Span.Start, nameTok.Span.End)
	if sp, err = p.expectSemicolon(sp); err != nil {
		return ast.Statement{}, err
	}
	return ast.Statement{Stmt: ast.Read{VariableName: nameTok.Str}, Span: sp}, nil
}

func (p *parser) forStatement() (ast.Statement, error) {
	start, err := p.advance() // consume 'for'
	if err != nil {
		return ast.Statement{}, err
	}

	nameTok, err := p.advance()
	if err != nil {
		return ast.Statement{}, err
	}
	if nameTok.Kind != token.Identifier {
		return ast.Statement{}, errForMissingVariable(nameTok.Span, nameTok)
	}

	inTok, err := p.advance()
	if err != nil {
		return ast.Statement{}, err
	}
	if inTok.Kind != token.In {
		return ast.Statement{}, errForMissingIn(inTok.Span, inTok)
	}

	from, err := p.expression()
	if err != nil {
		return ast.Statement{}, err
	}

	rangeTok, err := p.advance()
	if err != nil {
		return ast.Statement{}, err
	}
	if rangeTok.Kind != token.Range {
		return ast.Statement{}, errForMissingRange(rangeTok.Span, rangeTok)
	}

	to, err := p.expression()
	if err != nil {
		return ast.Statement{}, err
	}

	doTok, err := p.advance()
	if err != nil {
		return ast.Statement{}, err
	}
	if doTok.Kind != token.Do {
		return ast.Statement{}, errForMissingDo(doTok.Span, doTok)
	}

	var body []ast.Statement
	for {
		if p.check(token.End) {
			if _, err := p.advance(); err != nil { // consume 'end'
				return ast.Statement{}, err
			}
			forTok, err := p.advance()
			if err != nil {
				return ast.Statement{}, err
			}
			if forTok.Kind != token.For {
				return ast.Statement{}, errEndMissingFor(forTok.Span, forTok)
			}
			sp := span.New(start.Span.Start, forTok.Span.End)
			if sp, err = p.expectSemicolon(sp); err != nil {
				return ast.Statement{}, err
			}
			return ast.Statement{
				Stmt: ast.Forloop{VariableName: nameTok.Str, From: from, To: to, Body: body},
				Span: sp,
			}, nil
		}
		stmt, err := p.statement()
		if err != nil {
			return ast.Statement{}, err
		}
		body = append(body, stmt)
	}
}

func (p *parser) exprStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return ast.Statement{}, err
	}
	sp, err := p.expectSemicolon(expr.Span)
	if err != nil {
		return ast.Statement{}, err
	}
	return ast.Statement{Stmt: ast.ExprStmt{Expr: expr}, Span: sp}, nil
}

// --- expressions, by ascending precedence: assignment, and, equality,
// comparison, term, factor, unary, primary ---

func (p *parser) expression() (ast.Expression, error) {
	return p.assignment()
}

func (p *parser) assignment() (ast.Expression, error) {
	expr, err := p.and()
	if err != nil {
		return ast.Expression{}, err
	}
	start := expr.Span.Start
	for {
		op, ok := p.match(token.Assign)
		if !ok {
			break
		}
		right, err := p.and()
		if err != nil {
			return ast.Expression{}, err
		}
		usage, ok := expr.Expr.(ast.VariableUsage)
		if !ok {
			return ast.Expression{}, errAssignToNonVariable(expr.Span)
		}
		expr = ast.Expression{
			Expr: ast.Assign{Name: usage.Name, Op: op, Value: right},
			Span: span.New(start, right.Span.End),
		}
	}
	return expr, nil
}

func (p *parser) and() (ast.Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return ast.Expression{}, err
	}
	start := expr.Span.Start
	for {
		op, ok := p.match(token.And)
		if !ok {
			break
		}
		right, err := p.equality()
		if err != nil {
			return ast.Expression{}, err
		}
		expr = ast.Expression{
			Expr: ast.Logical{Left: expr, Op: op, Right: right},
			Span: span.New(start, right.Span.End),
		}
	}
	return expr, nil
}

func (p *parser) equality() (ast.Expression, error) {
	expr, err := p.comparison()
	if err != nil {
		return ast.Expression{}, err
	}
	start := expr.Span.Start
	for {
		op, ok := p.match(token.Equal)
		if !ok {
			break
		}
		right, err := p.comparison()
		if err != nil {
			return ast.Expression{}, err
		}
		expr = ast.Expression{
			Expr: ast.Binary{Left: expr, Op: op, Right: right},
			Span: span.New(start, right.Span.End),
		}
	}
	return expr, nil
}

func (p *parser) comparison() (ast.Expression, error) {
	expr, err := p.term()
	if err != nil {
		return ast.Expression{}, err
	}
	start := expr.Span.Start
	for {
		op, ok := p.match(token.Less)
		if !ok {
			break
		}
		right, err := p.term()
		if err != nil {
			return ast.Expression{}, err
		}
		expr = ast.Expression{
			Expr: ast.Binary{Left: expr, Op: op, Right: right},
			Span: span.New(start, right.Span.End),
		}
	}
	return expr, nil
}

func (p *parser) term() (ast.Expression, error) {
	expr, err := p.factor()
	if err != nil {
		return ast.Expression{}, err
	}
	start := expr.Span.Start
	for {
		op, ok := p.match(token.Minus, token.Plus)
		if !ok {
			break
		}
		right, err := p.factor()
		if err != nil {
			return ast.Expression{}, err
		}
		expr = ast.Expression{
			Expr: ast.Binary{Left: expr, Op: op, Right: right},
			Span: span.New(start, right.Span.End),
		}
	}
	return expr, nil
}

func (p *parser) factor() (ast.Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return ast.Expression{}, err
	}
	start := expr.Span.Start
	for {
		op, ok := p.match(token.Slash, token.Star)
		if !ok {
			break
		}
		right, err := p.unary()
		if err != nil {
			return ast.Expression{}, err
		}
		expr = ast.Expression{
			Expr: ast.Binary{Left: expr, Op: op, Right: right},
			Span: span.New(start, right.Span.End),
		}
	}
	return expr, nil
}

func (p *parser) unary() (ast.Expression, error) {
	if op, ok := p.match(token.Bang, token.Minus); ok {
		right, err := p.unary()
		if err != nil {
			return ast.Expression{}, err
		}
		return ast.Expression{
			Expr: ast.Unary{Op: op, Right: right},
			Span: span.New(op.Span.Start, right.Span.End),
		}, nil
	}
	return p.primary()
}

func (p *parser) primary() (ast.Expression, error) {
	t, err := p.advance()
	if err != nil {
		return ast.Expression{}, err
	}
	switch t.Kind {
	case token.False, token.True, token.Number, token.Text:
		return ast.Expression{Expr: ast.Literal{Value: t}, Span: t.Span}, nil
	case token.Identifier:
		return ast.Expression{Expr: ast.VariableUsage{Name: t.Str}, Span: t.Span}, nil
	case token.ParenLeft:
		inner, err := p.expression()
		if err != nil {
			return ast.Expression{}, err
		}
		closing, ok := p.match(token.ParenRight)
		if !ok {
			return ast.Expression{}, errMissingParen(t.Span)
		}
		return ast.Expression{Expr: ast.Grouping{Inner: inner}, Span: span.New(t.Span.Start, closing.Span.End)}, nil
	default:
		return ast.Expression{}, errExpectedExpression(t.Span, t)
	}
}
