// Package parser is a hand-written LL(1) recursive-descent parser: one
// method per grammar non-terminal, each consuming exactly the tokens its
// production needs and returning the ast.Node it builds (spec §4.2). It
// pulls tokens on demand from a scanner.Scanner, so there is no separate
// tokenizing pass.
package parser

import (
	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/diag"
	"github.com/willvillegas/triangle-go/scanner"
	"github.com/willvillegas/triangle-go/token"
)

// syncTokens is the panic-mode recovery set: on an unexpected token, the
// parser discards input up to (but not including) one of these, or
// EndOfText, whichever comes first. This always terminates because
// EndOfText is itself a member and the scanner never regresses past it.
var syncTokens = map[token.Kind]bool{
	token.Semicolon: true,
	token.End:       true,
	token.Then:      true,
	token.Else:      true,
	token.Do:        true,
	token.In:        true,
	token.EndOfText: true,
}

// Parser holds the current lookahead token and the scanner it pulls from.
type Parser struct {
	scan    *scanner.Scanner
	report  diag.Reporter
	current token.Token
}

// New builds a Parser over scan, reading its first lookahead token.
func New(scan *scanner.Scanner, report diag.Reporter) *Parser {
	p := &Parser{scan: scan, report: report}
	p.current = p.scan.NextToken()
	return p
}

// Parse scans and parses text in one call, reporting through report.
func Parse(text string, report diag.Reporter) *ast.Program {
	return New(scanner.New(text, report), report).ParseProgram()
}

func (p *Parser) advance() { p.current = p.scan.NextToken() }

// acceptIt consumes the current token unconditionally and returns it.
func (p *Parser) acceptIt() token.Token {
	tok := p.current
	p.advance()
	return tok
}

// accept consumes the current token if it has the given kind; otherwise it
// reports a SyntaxError and enters panic-mode recovery, returning the
// unexpected token it found (the one current before recovery skipped ahead).
func (p *Parser) accept(kind token.Kind) token.Token {
	if p.current.Kind == kind {
		return p.acceptIt()
	}
	diag.Syntax(p.report, p.current.Span, "expected %s, found %s %q", kind, p.current.Kind, p.current.Spelling)
	tok := p.current
	p.recover()
	return tok
}

func (p *Parser) recover() {
	for !syncTokens[p.current.Kind] {
		p.advance()
	}
}

// emptySpanAt returns a zero-width span at start, the span convention for
// nodes that consume no tokens (EmptyCommand, empty parameter sequences).
func emptySpanAt(span token.Span) token.Span {
	return token.Span{Start: span.Start, Finish: span.Start}
}

// ParseProgram parses an entire source file: a Command followed by
// EndOfText.
func (p *Parser) ParseProgram() *ast.Program {
	cmd := p.parseCommand()
	p.accept(token.EndOfText)
	return ast.NewProgram(cmd)
}

// --- Commands ---

func (p *Parser) parseCommand() ast.Command {
	c := p.parseSingleCommand()
	for p.current.Kind == token.Semicolon {
		p.acceptIt()
		c2 := p.parseSingleCommand()
		c = ast.NewSequentialCommand(c.Span().Cover(c2.Span()), c, c2)
	}
	return c
}

func (p *Parser) parseSingleCommand() ast.Command {
	switch p.current.Kind {
	case token.Identifier:
		id := p.parseIdentifier()
		if p.current.Kind == token.LeftParen {
			p.acceptIt()
			aps := p.parseActualParameterSequence()
			rp := p.accept(token.RightParen)
			return ast.NewCallCommand(id.Span().Cover(rp.Span), id, aps)
		}
		vname := p.parseVnameTail(id)
		p.accept(token.Becomes)
		expr := p.parseExpression()
		return ast.NewAssignCommand(vname.Span().Cover(expr.Span()), vname, expr)

	case token.Begin:
		p.acceptIt()
		c := p.parseCommand()
		p.accept(token.End)
		return c

	case token.Let:
		start := p.acceptIt()
		decl := p.parseDeclaration()
		p.accept(token.In)
		body := p.parseSingleCommand()
		return ast.NewLetCommand(start.Span.Cover(body.Span()), decl, body)

	case token.If:
		start := p.acceptIt()
		cond := p.parseExpression()
		p.accept(token.Then)
		then := p.parseSingleCommand()
		p.accept(token.Else)
		els := p.parseSingleCommand()
		return ast.NewIfCommand(start.Span.Cover(els.Span()), cond, then, els)

	case token.While:
		start := p.acceptIt()
		cond := p.parseExpression()
		p.accept(token.Do)
		body := p.parseSingleCommand()
		return ast.NewWhileCommand(start.Span.Cover(body.Span()), cond, body)

	case token.Semicolon, token.End, token.Then, token.Else, token.Do, token.In, token.EndOfText:
		return ast.NewEmptyCommand(emptySpanAt(p.current.Span))

	default:
		diag.Syntax(p.report, p.current.Span, "expected a command, found %s %q", p.current.Kind, p.current.Spelling)
		span := p.current.Span
		p.recover()
		return ast.NewEmptyCommand(span)
	}
}

// --- Expressions ---

func (p *Parser) parseExpression() ast.Expression {
	e := p.parseSecondaryExpression()
	for p.current.Kind == token.Operator {
		op := p.parseOperator()
		rhs := p.parseSecondaryExpression()
		e = ast.NewBinaryExpression(e.Span().Cover(rhs.Span()), e, op, rhs)
	}
	return e
}

func (p *Parser) parseSecondaryExpression() ast.Expression {
	if p.current.Kind == token.Operator {
		op := p.parseOperator()
		e := p.parsePrimaryExpression()
		return ast.NewUnaryExpression(op.Span().Cover(e.Span()), op, e)
	}
	return p.parsePrimaryExpression()
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	switch p.current.Kind {
	case token.IntegerLiteral:
		lit := p.parseIntegerLiteral()
		return ast.NewIntegerExpression(lit.Span(), lit)

	case token.CharacterLiteral:
		lit := p.parseCharacterLiteral()
		return ast.NewCharacterExpression(lit.Span(), lit)

	case token.Identifier:
		id := p.parseIdentifier()
		if p.current.Kind == token.LeftParen {
			p.acceptIt()
			aps := p.parseActualParameterSequence()
			rp := p.accept(token.RightParen)
			return ast.NewCallExpression(id.Span().Cover(rp.Span), id, aps)
		}
		vname := p.parseVnameTail(id)
		return ast.NewVnameExpression(vname.Span(), vname)

	case token.If:
		start := p.acceptIt()
		cond := p.parseExpression()
		p.accept(token.Then)
		then := p.parseExpression()
		p.accept(token.Else)
		els := p.parseExpression()
		return ast.NewIfExpression(start.Span.Cover(els.Span()), cond, then, els)

	case token.Let:
		start := p.acceptIt()
		decl := p.parseDeclaration()
		p.accept(token.In)
		body := p.parseExpression()
		return ast.NewLetExpression(start.Span.Cover(body.Span()), decl, body)

	case token.LeftParen:
		p.acceptIt()
		e := p.parseExpression()
		p.accept(token.RightParen)
		return e

	case token.LeftBracket:
		start := p.acceptIt()
		agg := p.parseArrayAggregate()
		end := p.accept(token.RightBracket)
		return ast.NewArrayExpression(start.Span.Cover(end.Span), agg)

	case token.LeftCurly:
		start := p.acceptIt()
		agg := p.parseRecordAggregate()
		end := p.accept(token.RightCurly)
		return ast.NewRecordExpression(start.Span.Cover(end.Span), agg)

	default:
		diag.Syntax(p.report, p.current.Span, "expected an expression, found %s %q", p.current.Kind, p.current.Spelling)
		tok := p.current
		p.recover()
		// A zero literal stands in for the broken expression; the
		// SyntaxError already reported is what the caller should act on.
		return ast.NewIntegerExpression(tok.Span, ast.NewIntegerLiteral(tok.Span, "0"))
	}
}

// --- Vnames ---

func (p *Parser) parseVname() ast.Vname {
	return p.parseVnameTail(p.parseIdentifier())
}

// parseVnameTail builds a Vname from an Identifier already consumed by the
// caller (needed because the Identifier/Call and Identifier/Vname
// productions share a one-token prefix).
func (p *Parser) parseVnameTail(id *ast.Identifier) ast.Vname {
	var v ast.Vname = ast.NewSimpleVname(id.Span(), id)
	for {
		switch p.current.Kind {
		case token.Dot:
			p.acceptIt()
			field := p.parseIdentifier()
			v = ast.NewDotVname(v.Span().Cover(field.Span()), v, field)
		case token.LeftBracket:
			p.acceptIt()
			sub := p.parseExpression()
			rb := p.accept(token.RightBracket)
			v = ast.NewSubscriptVname(v.Span().Cover(rb.Span), v, sub)
		default:
			return v
		}
	}
}

// --- Declarations ---

func (p *Parser) parseDeclaration() ast.Declaration {
	d := p.parseSingleDeclaration()
	for p.current.Kind == token.Semicolon {
		p.acceptIt()
		d2 := p.parseSingleDeclaration()
		d = ast.NewSequentialDeclaration(d.Span().Cover(d2.Span()), d, d2)
	}
	return d
}

func (p *Parser) parseSingleDeclaration() ast.Declaration {
	switch p.current.Kind {
	case token.Const:
		start := p.acceptIt()
		name := p.parseIdentifier()
		p.accept(token.Is)
		expr := p.parseExpression()
		return ast.NewConstDeclaration(start.Span.Cover(expr.Span()), name, expr)

	case token.Var:
		start := p.acceptIt()
		name := p.parseIdentifier()
		p.accept(token.Colon)
		typ := p.parseTypeDenoter()
		return ast.NewVarDeclaration(start.Span.Cover(typ.Span()), name, typ)

	case token.Proc:
		start := p.acceptIt()
		name := p.parseIdentifier()
		p.accept(token.LeftParen)
		formals := p.parseFormalParameterSequence()
		p.accept(token.RightParen)
		p.accept(token.Is)
		body := p.parseSingleCommand()
		return ast.NewProcDeclaration(start.Span.Cover(body.Span()), name, formals, body)

	case token.Func:
		start := p.acceptIt()
		name := p.parseIdentifier()
		p.accept(token.LeftParen)
		formals := p.parseFormalParameterSequence()
		p.accept(token.RightParen)
		p.accept(token.Colon)
		retType := p.parseTypeDenoter()
		p.accept(token.Is)
		expr := p.parseExpression()
		return ast.NewFuncDeclaration(start.Span.Cover(expr.Span()), name, formals, retType, expr)

	case token.Type:
		start := p.acceptIt()
		name := p.parseIdentifier()
		p.accept(token.Is)
		typ := p.parseTypeDenoter()
		return ast.NewTypeDeclaration(start.Span.Cover(typ.Span()), name, typ)

	default:
		diag.Syntax(p.report, p.current.Span, "expected a declaration, found %s %q", p.current.Kind, p.current.Spelling)
		span := p.current.Span
		p.recover()
		return ast.NewConstDeclaration(span, ast.NewIdentifier(span, "<error>"), ast.NewIntegerExpression(span, ast.NewIntegerLiteral(span, "0")))
	}
}

// --- Type denoters ---

func (p *Parser) parseTypeDenoter() ast.TypeDenoter {
	switch p.current.Kind {
	case token.Identifier:
		name := p.parseIdentifier()
		return ast.NewSimpleTypeDenoter(name.Span(), name)

	case token.Array:
		start := p.acceptIt()
		size := p.parseIntegerLiteral()
		p.accept(token.Of)
		member := p.parseTypeDenoter()
		return ast.NewArrayTypeDenoter(start.Span.Cover(member.Span()), size, member)

	case token.Record:
		start := p.acceptIt()
		fields := p.parseFieldTypeDenoter()
		end := p.accept(token.End)
		return ast.NewRecordTypeDenoter(start.Span.Cover(end.Span), fields)

	default:
		diag.Syntax(p.report, p.current.Span, "expected a type, found %s %q", p.current.Kind, p.current.Spelling)
		span := p.current.Span
		p.recover()
		return ast.NewErrorTypeDenoter(span)
	}
}

func (p *Parser) parseFieldTypeDenoter() ast.FieldTypeDenoter {
	name := p.parseIdentifier()
	p.accept(token.Colon)
	typ := p.parseTypeDenoter()
	if p.current.Kind == token.Comma {
		p.acceptIt()
		rest := p.parseFieldTypeDenoter()
		return ast.NewMultipleFieldTypeDenoter(name.Span().Cover(rest.Span()), name, typ, rest)
	}
	return ast.NewSingleFieldTypeDenoter(name.Span().Cover(typ.Span()), name, typ)
}

// --- Formal parameters ---

func (p *Parser) parseFormalParameterSequence() ast.FormalParameterSequence {
	if p.current.Kind == token.RightParen {
		return ast.NewEmptyFormalParameterSequence(emptySpanAt(p.current.Span))
	}
	fp := p.parseFormalParameter()
	if p.current.Kind == token.Comma {
		p.acceptIt()
		rest := p.parseFormalParameterSequence()
		return ast.NewMultipleFormalParameterSequence(fp.Span().Cover(rest.Span()), fp, rest)
	}
	return ast.NewSingleFormalParameterSequence(fp.Span(), fp)
}

func (p *Parser) parseFormalParameter() ast.FormalParameter {
	switch p.current.Kind {
	case token.Var:
		start := p.acceptIt()
		name := p.parseIdentifier()
		p.accept(token.Colon)
		typ := p.parseTypeDenoter()
		return ast.NewVarFormalParameter(start.Span.Cover(typ.Span()), name, typ)

	case token.Proc:
		start := p.acceptIt()
		name := p.parseIdentifier()
		p.accept(token.LeftParen)
		formals := p.parseFormalParameterSequence()
		end := p.accept(token.RightParen)
		return ast.NewProcFormalParameter(start.Span.Cover(end.Span), name, formals)

	case token.Func:
		start := p.acceptIt()
		name := p.parseIdentifier()
		p.accept(token.LeftParen)
		formals := p.parseFormalParameterSequence()
		p.accept(token.RightParen)
		p.accept(token.Colon)
		typ := p.parseTypeDenoter()
		return ast.NewFuncFormalParameter(start.Span.Cover(typ.Span()), name, formals, typ)

	case token.Identifier:
		name := p.parseIdentifier()
		p.accept(token.Colon)
		typ := p.parseTypeDenoter()
		return ast.NewConstFormalParameter(name.Span().Cover(typ.Span()), name, typ)

	default:
		diag.Syntax(p.report, p.current.Span, "expected a formal parameter, found %s %q", p.current.Kind, p.current.Spelling)
		span := p.current.Span
		p.recover()
		return ast.NewConstFormalParameter(span, ast.NewIdentifier(span, "<error>"), ast.NewErrorTypeDenoter(span))
	}
}

// --- Actual parameters ---

func (p *Parser) parseActualParameterSequence() ast.ActualParameterSequence {
	if p.current.Kind == token.RightParen {
		return ast.NewEmptyActualParameterSequence(emptySpanAt(p.current.Span))
	}
	ap := p.parseActualParameter()
	if p.current.Kind == token.Comma {
		p.acceptIt()
		rest := p.parseActualParameterSequence()
		return ast.NewMultipleActualParameterSequence(ap.Span().Cover(rest.Span()), ap, rest)
	}
	return ast.NewSingleActualParameterSequence(ap.Span(), ap)
}

func (p *Parser) parseActualParameter() ast.ActualParameter {
	switch p.current.Kind {
	case token.Var:
		start := p.acceptIt()
		vname := p.parseVname()
		return ast.NewVarActualParameter(start.Span.Cover(vname.Span()), vname)

	case token.Proc:
		start := p.acceptIt()
		id := p.parseIdentifier()
		return ast.NewProcActualParameter(start.Span.Cover(id.Span()), id)

	case token.Func:
		start := p.acceptIt()
		id := p.parseIdentifier()
		return ast.NewFuncActualParameter(start.Span.Cover(id.Span()), id)

	default:
		expr := p.parseExpression()
		return ast.NewConstActualParameter(expr.Span(), expr)
	}
}

// --- Aggregates ---

func (p *Parser) parseArrayAggregate() ast.ArrayAggregate {
	expr := p.parseExpression()
	if p.current.Kind == token.Comma {
		p.acceptIt()
		rest := p.parseArrayAggregate()
		return ast.NewMultipleArrayAggregate(expr.Span().Cover(rest.Span()), expr, rest)
	}
	return ast.NewSingleArrayAggregate(expr.Span(), expr)
}

func (p *Parser) parseRecordAggregate() ast.RecordAggregate {
	name := p.parseIdentifier()
	p.accept(token.Is)
	expr := p.parseExpression()
	if p.current.Kind == token.Comma {
		p.acceptIt()
		rest := p.parseRecordAggregate()
		return ast.NewMultipleRecordAggregate(name.Span().Cover(rest.Span()), name, expr, rest)
	}
	return ast.NewSingleRecordAggregate(name.Span().Cover(expr.Span()), name, expr)
}

// --- Leaves ---

func (p *Parser) parseIdentifier() *ast.Identifier {
	tok := p.accept(token.Identifier)
	return ast.NewIdentifier(tok.Span, tok.Spelling)
}

func (p *Parser) parseOperator() *ast.Operator {
	tok := p.accept(token.Operator)
	return ast.NewOperator(tok.Span, tok.Spelling)
}

func (p *Parser) parseIntegerLiteral() *ast.IntegerLiteral {
	tok := p.accept(token.IntegerLiteral)
	return ast.NewIntegerLiteral(tok.Span, tok.Spelling)
}

func (p *Parser) parseCharacterLiteral() *ast.CharacterLiteral {
	tok := p.accept(token.CharacterLiteral)
	return ast.NewCharacterLiteral(tok.Span, tok.Spelling)
}
