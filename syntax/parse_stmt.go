package syntax

import (
	"blinkc/ast"
	"blinkc/report"
)

// parseBlock parses a braced statement sequence.
func (p *Parser) parseBlock() (*ast.Block, error) {
	startTok, err := p.consume(TOK_LBRACE, "{")
	if err != nil {
		return nil, err
	}

	var statements []ast.Stmt
	for !p.check(TOK_RBRACE) && !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		statements = append(statements, stmt)
	}

	endTok, err := p.consume(TOK_RBRACE, "}")
	if err != nil {
		return nil, err
	}

	return &ast.Block{
		Statements: statements,
		Pos:        report.NewSpan(startTok.Span.Start, endTok.Span.End),
	}, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.peek()
	if tok == nil {
		return nil, &UnexpectedEOFError{Expected: "statement"}
	}

	switch tok.Kind {
	case TOK_LET:
		return p.parseLetStmt()
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_FOR:
		return p.parseForStmt()
	case TOK_WHILE:
		return p.parseWhileStmt()
	case TOK_RETURN:
		return p.parseReturnStmt()
	case TOK_SCHEDULE:
		return p.parseScheduleStmt()
	case TOK_CANCEL:
		return p.parseCancelStmt()
	case TOK_CREATE:
		return p.parseCreateStmt()
	case TOK_DELETE:
		return p.parseDeleteStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

// parseExprOrAssignStmt parses an expression and, if an assignment operator
// follows, promotes it to an assignment statement.  Whether the target is a
// valid assignment place is checked later, not here.
func (p *Parser) parseExprOrAssignStmt() (ast.Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	op := -1
	if tok := p.peek(); tok != nil {
		switch tok.Kind {
		case TOK_ASSIGN:
			op = ast.AssignSet
		case TOK_PLUSASSIGN:
			op = ast.AssignAdd
		case TOK_MINUSASSIGN:
			op = ast.AssignSub
		case TOK_STARASSIGN:
			op = ast.AssignMul
		case TOK_SLASHASSIGN:
			op = ast.AssignDiv
		}
	}

	if op < 0 {
		return &ast.ExprStmt{Expr: expr}, nil
	}

	p.advance()

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.AssignStmt{
		Target: expr,
		Op:     op,
		Value:  value,
		Pos:    expr.Span(),
	}, nil
}

// -----------------------------------------------------------------------------

func (p *Parser) parseLetStmt() (ast.Stmt, error) {
	startTok, err := p.consume(TOK_LET, "let")
	if err != nil {
		return nil, err
	}

	nameTok, err := p.consume(TOK_IDENT, "variable name")
	if err != nil {
		return nil, err
	}

	// Optional type annotation.
	var annotation ast.TypeExpr
	if p.check(TOK_COLON) {
		p.advance()

		annotation, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TOK_ASSIGN, "="); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.LetStmt{
		Name:           nameTok.Value,
		TypeAnnotation: annotation,
		Value:          value,
		Pos:            p.spanFrom(startTok.Span.Start),
	}, nil
}

func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	startTok, err := p.consume(TOK_IF, "if")
	if err != nil {
		return nil, err
	}

	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseClause ast.ElseClause
	if p.check(TOK_ELSE) {
		p.advance()

		if p.check(TOK_IF) {
			elseClause, err = p.parseIfStmt()
		} else {
			elseClause, err = p.parseBlock()
		}
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStmt{
		Condition: condition,
		Then:      thenBlock,
		Else:      elseClause,
		Pos:       p.spanFrom(startTok.Span.Start),
	}, nil
}

func (p *Parser) parseForStmt() (ast.Stmt, error) {
	startTok, err := p.consume(TOK_FOR, "for")
	if err != nil {
		return nil, err
	}

	varTok, err := p.consume(TOK_IDENT, "loop variable")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_IN, "in"); err != nil {
		return nil, err
	}

	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ForStmt{
		Variable: varTok.Value,
		Iterable: iterable,
		Body:     body,
		Pos:      p.spanFrom(startTok.Span.Start),
	}, nil
}

func (p *Parser) parseWhileStmt() (ast.Stmt, error) {
	startTok, err := p.consume(TOK_WHILE, "while")
	if err != nil {
		return nil, err
	}

	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{
		Condition: condition,
		Body:      body,
		Pos:       p.spanFrom(startTok.Span.Start),
	}, nil
}

func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	startTok, err := p.consume(TOK_RETURN, "return")
	if err != nil {
		return nil, err
	}

	// A return value is present unless the next token closes the block or
	// starts another statement.
	var value ast.Expr
	if !p.check(TOK_RBRACE) && !p.atEnd() {
		switch p.peek().Kind {
		case TOK_LET, TOK_IF, TOK_FOR, TOK_WHILE, TOK_RETURN,
			TOK_SCHEDULE, TOK_CANCEL, TOK_CREATE, TOK_DELETE:
		default:
			value, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
	}

	return &ast.ReturnStmt{
		Value: value,
		Pos:   p.spanFrom(startTok.Span.Start),
	}, nil
}

func (p *Parser) parseScheduleStmt() (ast.Stmt, error) {
	startTok, err := p.consume(TOK_SCHEDULE, "schedule")
	if err != nil {
		return nil, err
	}

	recurring := false
	if p.check(TOK_RECURRING) {
		p.advance()
		recurring = true
	}

	// Optional `[delay: expr]` or `[interval: expr]` timing annotation.  An
	// annotation with any other name is consumed and discarded.
	var delay, interval ast.Expr
	if p.check(TOK_LBRACKET) {
		p.advance()

		paramTok, err := p.consume(TOK_IDENT, "delay or interval")
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(TOK_COLON, ":"); err != nil {
			return nil, err
		}

		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		switch paramTok.Value {
		case "delay":
			delay = value
		case "interval":
			interval = value
		}

		if _, err := p.consume(TOK_RBRACKET, "]"); err != nil {
			return nil, err
		}
	}

	eventTok, err := p.consume(TOK_IDENT, "event name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_LBRACE, "{"); err != nil {
		return nil, err
	}

	var fields []*ast.FieldInit
	for !p.check(TOK_RBRACE) && !p.atEnd() {
		fieldTok, err := p.consume(TOK_IDENT, "field name")
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(TOK_COLON, ":"); err != nil {
			return nil, err
		}

		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		fields = append(fields, &ast.FieldInit{Name: fieldTok.Value, Value: value})
	}

	endTok, err := p.consume(TOK_RBRACE, "}")
	if err != nil {
		return nil, err
	}

	return &ast.ScheduleStmt{
		Recurring: recurring,
		Delay:     delay,
		Interval:  interval,
		EventName: eventTok.Value,
		Fields:    fields,
		Pos:       report.NewSpan(startTok.Span.Start, endTok.Span.End),
	}, nil
}

func (p *Parser) parseCancelStmt() (ast.Stmt, error) {
	startTok, err := p.consume(TOK_CANCEL, "cancel")
	if err != nil {
		return nil, err
	}

	target, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.CancelStmt{
		Target: target,
		Pos:    p.spanFrom(startTok.Span.Start),
	}, nil
}

func (p *Parser) parseCreateStmt() (ast.Stmt, error) {
	startTok, err := p.consume(TOK_CREATE, "create")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_ENTITY, "entity"); err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_LBRACE, "{"); err != nil {
		return nil, err
	}

	var components []*ast.ComponentInit
	for !p.check(TOK_RBRACE) && !p.atEnd() {
		ci, err := p.parseComponentInit()
		if err != nil {
			return nil, err
		}

		components = append(components, ci)
	}

	endTok, err := p.consume(TOK_RBRACE, "}")
	if err != nil {
		return nil, err
	}

	return &ast.CreateStmt{
		Components: components,
		Pos:        report.NewSpan(startTok.Span.Start, endTok.Span.End),
	}, nil
}

func (p *Parser) parseDeleteStmt() (ast.Stmt, error) {
	startTok, err := p.consume(TOK_DELETE, "delete")
	if err != nil {
		return nil, err
	}

	entity, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.DeleteStmt{
		Entity: entity,
		Pos:    p.spanFrom(startTok.Span.Start),
	}, nil
}
