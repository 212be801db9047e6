package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"blinkc/ast"
	"blinkc/report"
)

// parseItem parses one top-level module item.
func (p *Parser) parseItem() (ast.Item, error) {
	tok := p.peek()
	if tok == nil {
		return nil, &UnexpectedEOFError{Expected: "item"}
	}

	switch tok.Kind {
	case TOK_COMPONENT:
		return p.parseComponent()
	case TOK_RULE:
		return p.parseRule()
	case TOK_FN:
		return p.parseFunction()
	case TOK_IMPORT:
		return p.parseImport()
	case TOK_MODULE:
		return p.parseModuleDef()
	case TOK_TRACKER:
		return p.parseTracker()
	case TOK_ENTITY, TOK_NEW, TOK_ENTITYREF:
		return p.parseEntity()
	case TOK_IDENT:
		// `name = new entity { ... }` is the only item form led by a bare
		// identifier.
		if p.checkAt(1, TOK_ASSIGN) && p.checkAt(2, TOK_NEW) {
			return p.parseEntityAssignment()
		}

		return nil, &UnexpectedTokenError{
			Found:    tok.Value,
			Expected: "component, rule, fn, import, module, entity, or entity assignment",
			Position: tok.Span.Start,
		}
	default:
		return nil, &UnexpectedTokenError{
			Found:    tok.Value,
			Expected: "component, rule, fn, import, module, or entity",
			Position: tok.Span.Start,
		}
	}
}

// -----------------------------------------------------------------------------

func (p *Parser) parseComponent() (*ast.ComponentDef, error) {
	startTok, err := p.consume(TOK_COMPONENT, "component")
	if err != nil {
		return nil, err
	}

	nameTok, err := p.consume(TOK_IDENT, "component name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_LBRACE, "{"); err != nil {
		return nil, err
	}

	var fields []*ast.FieldDef
	for !p.check(TOK_RBRACE) && !p.atEnd() {
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}

		fields = append(fields, field)
	}

	endTok, err := p.consume(TOK_RBRACE, "}")
	if err != nil {
		return nil, err
	}

	return &ast.ComponentDef{
		Name:   nameTok.Value,
		Fields: fields,
		Pos:    report.NewSpan(startTok.Span.Start, endTok.Span.End),
	}, nil
}

func (p *Parser) parseField() (*ast.FieldDef, error) {
	nameTok, err := p.parseFieldName()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_COLON, ":"); err != nil {
		return nil, err
	}

	fieldType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	optional := false
	if p.check(TOK_QUESTION) {
		p.advance()
		optional = true

		fieldType = &ast.OptionalTypeExpr{Element: fieldType}
	}

	return &ast.FieldDef{
		Name:     nameTok.Value,
		Type:     fieldType,
		Optional: optional,
		Pos:      p.spanFrom(nameTok.Span.Start),
	}, nil
}

// parseFieldName consumes a token usable as a field name.  The keywords
// `entity`, `event`, `id`, and `has` are contextually allowed as field names
// since component data commonly uses them (eg. `Target { entity: null }`) and
// `has` appears as a postfix method name.
func (p *Parser) parseFieldName() (*Token, error) {
	if tok := p.peek(); tok != nil {
		switch tok.Kind {
		case TOK_IDENT, TOK_ENTITY, TOK_EVENT, TOK_TYPE_ID, TOK_HAS:
			return p.advance(), nil
		}
	}

	return p.consume(TOK_IDENT, "field name")
}

// parseType parses a type annotation.  Bare `list` is shorthand for
// `list<id>`.
func (p *Parser) parseType() (ast.TypeExpr, error) {
	tok := p.advance()
	if tok == nil {
		return nil, &UnexpectedEOFError{Expected: "type"}
	}

	switch tok.Kind {
	case TOK_TYPE_STRING:
		return &ast.PrimTypeExpr{Kind: ast.TypeString}, nil
	case TOK_TYPE_BOOLEAN:
		return &ast.PrimTypeExpr{Kind: ast.TypeBoolean}, nil
	case TOK_TYPE_INTEGER:
		return &ast.PrimTypeExpr{Kind: ast.TypeInteger}, nil
	case TOK_TYPE_FLOAT:
		return &ast.PrimTypeExpr{Kind: ast.TypeFloat}, nil
	case TOK_TYPE_DECIMAL:
		return &ast.PrimTypeExpr{Kind: ast.TypeDecimal}, nil
	case TOK_TYPE_ID:
		return &ast.PrimTypeExpr{Kind: ast.TypeID}, nil
	case TOK_TYPE_LIST:
		if p.check(TOK_LT) {
			p.advance()

			inner, err := p.parseType()
			if err != nil {
				return nil, err
			}

			if _, err := p.consume(TOK_GT, ">"); err != nil {
				return nil, err
			}

			return &ast.ListTypeExpr{Element: inner}, nil
		}

		return &ast.ListTypeExpr{Element: &ast.PrimTypeExpr{Kind: ast.TypeID}}, nil
	case TOK_IDENT:
		return &ast.ComponentTypeExpr{Name: tok.Value}, nil
	default:
		return nil, &UnexpectedTokenError{
			Found:    tok.Value,
			Expected: "type",
			Position: tok.Span.Start,
		}
	}
}

// -----------------------------------------------------------------------------

func (p *Parser) parseRule() (*ast.RuleDef, error) {
	startTok, err := p.consume(TOK_RULE, "rule")
	if err != nil {
		return nil, err
	}

	// Optional rule name.
	name := ""
	if p.check(TOK_IDENT) {
		name = p.advance().Value
	}

	if _, err := p.consume(TOK_ON, "on"); err != nil {
		return nil, err
	}

	triggerTok, err := p.consume(TOK_IDENT, "event name")
	if err != nil {
		return nil, err
	}

	// Optional `when` guard.
	var condition ast.Expr
	if p.check(TOK_WHEN) {
		p.advance()

		condition, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	// Optional `[priority: N]` annotation.  The annotation keyword is not
	// checked against its spelling; any identifier is accepted there.
	var priority *int
	if p.check(TOK_LBRACKET) {
		p.advance()

		if _, err := p.consume(TOK_IDENT, "priority"); err != nil {
			return nil, err
		}

		if _, err := p.consume(TOK_COLON, ":"); err != nil {
			return nil, err
		}

		valueTok, err := p.consume(TOK_INTLIT, "priority value")
		if err != nil {
			return nil, err
		}

		value, perr := strconv.Atoi(valueTok.Value)
		if perr != nil {
			return nil, &InvalidSyntaxError{
				Message: fmt.Sprintf("Invalid priority value: '%s' is not a valid integer", valueTok.Value),
			}
		}

		if _, err := p.consume(TOK_RBRACKET, "]"); err != nil {
			return nil, err
		}

		priority = &value
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.RuleDef{
		Name:         name,
		TriggerEvent: triggerTok.Value,
		Condition:    condition,
		Priority:     priority,
		Body:         body,
		Pos:          p.spanFrom(startTok.Span.Start),
	}, nil
}

func (p *Parser) parseFunction() (*ast.FuncDef, error) {
	startTok, err := p.consume(TOK_FN, "fn")
	if err != nil {
		return nil, err
	}

	nameTok, err := p.consume(TOK_IDENT, "function name")
	if err != nil {
		return nil, err
	}

	params, err := p.parseParamList(false)
	if err != nil {
		return nil, err
	}

	returnType, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FuncDef{
		Name:       nameTok.Value,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Pos:        p.spanFrom(startTok.Span.Start),
	}, nil
}

// parseParamList parses a parenthesized parameter list.  Choice-function
// parameter lists additionally allow composite `A & B` entity constraints.
func (p *Parser) parseParamList(choice bool) ([]*ast.ParamDef, error) {
	if _, err := p.consume(TOK_LPAREN, "("); err != nil {
		return nil, err
	}

	var params []*ast.ParamDef
	for !p.check(TOK_RPAREN) && !p.atEnd() {
		nameTok, err := p.consume(TOK_IDENT, "parameter name")
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(TOK_COLON, ":"); err != nil {
			return nil, err
		}

		var paramType ast.TypeExpr
		if choice {
			paramType, err = p.parseChoiceParamType()
		} else {
			paramType, err = p.parseType()
		}
		if err != nil {
			return nil, err
		}

		params = append(params, &ast.ParamDef{
			Name: nameTok.Value,
			Type: paramType,
			Pos:  p.spanFrom(nameTok.Span.Start),
		})

		if p.check(TOK_COMMA) {
			p.advance()
		}
	}

	if _, err := p.consume(TOK_RPAREN, ")"); err != nil {
		return nil, err
	}

	return params, nil
}

// parseReturnType parses an optional `: type` return annotation.
func (p *Parser) parseReturnType() (ast.TypeExpr, error) {
	if !p.check(TOK_COLON) {
		return nil, nil
	}

	p.advance()
	return p.parseType()
}

// -----------------------------------------------------------------------------

func (p *Parser) parseImport() (*ast.ImportDef, error) {
	startTok, err := p.consume(TOK_IMPORT, "import")
	if err != nil {
		return nil, err
	}

	first, err := p.consume(TOK_IDENT, "module path")
	if err != nil {
		return nil, err
	}

	path := []string{first.Value}
	for p.check(TOK_DOT) {
		p.advance()

		next, err := p.consume(TOK_IDENT, "module path segment")
		if err != nil {
			return nil, err
		}

		path = append(path, next.Value)
	}

	// Optional `{ a, b }` item list.
	var items []string
	if p.check(TOK_LBRACE) {
		p.advance()

		for !p.check(TOK_RBRACE) && !p.atEnd() {
			item, err := p.consume(TOK_IDENT, "import item")
			if err != nil {
				return nil, err
			}

			items = append(items, item.Value)

			if p.check(TOK_COMMA) {
				p.advance()
			}
		}

		if _, err := p.consume(TOK_RBRACE, "}"); err != nil {
			return nil, err
		}
	}

	return &ast.ImportDef{
		Path:  path,
		Items: items,
		Pos:   p.spanFrom(startTok.Span.Start),
	}, nil
}

func (p *Parser) parseModuleDef() (*ast.ModuleDef, error) {
	startTok, err := p.consume(TOK_MODULE, "module")
	if err != nil {
		return nil, err
	}

	nameTok, err := p.consume(TOK_IDENT, "module name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_LBRACE, "{"); err != nil {
		return nil, err
	}

	var items []ast.Item
	for !p.check(TOK_RBRACE) && !p.atEnd() {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	endTok, err := p.consume(TOK_RBRACE, "}")
	if err != nil {
		return nil, err
	}

	return &ast.ModuleDef{
		Name:  nameTok.Value,
		Items: items,
		Pos:   report.NewSpan(startTok.Span.Start, endTok.Span.End),
	}, nil
}

func (p *Parser) parseTracker() (*ast.TrackerDef, error) {
	startTok, err := p.consume(TOK_TRACKER, "tracker")
	if err != nil {
		return nil, err
	}

	compTok, err := p.consume(TOK_IDENT, "component name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_ON, "on"); err != nil {
		return nil, err
	}

	eventTok, err := p.consume(TOK_IDENT, "event name")
	if err != nil {
		return nil, err
	}

	return &ast.TrackerDef{
		Component: compTok.Value,
		Event:     eventTok.Value,
		Pos:       report.NewSpan(startTok.Span.Start, eventTok.Span.End),
	}, nil
}

// -----------------------------------------------------------------------------

// parseEntity parses an entity declaration.  Three surface forms reach here:
//
//	new entity { ... }           anonymous; used behind `name = new entity`
//	entity [@name|name] { ... }  legacy keyword form
//	@name { ... }                deprecated bare reference form
func (p *Parser) parseEntity() (*ast.EntityDef, error) {
	var start int
	variable := ""

	switch {
	case p.check(TOK_ENTITYREF):
		refTok := p.advance()
		start = refTok.Span.Start
		variable = strings.TrimPrefix(refTok.Value, "@")
	case p.check(TOK_NEW):
		newTok := p.advance()
		start = newTok.Span.Start

		if _, err := p.consume(TOK_ENTITY, "entity"); err != nil {
			return nil, err
		}
	default:
		entTok, err := p.consume(TOK_ENTITY, "entity")
		if err != nil {
			return nil, err
		}

		start = entTok.Span.Start

		if p.check(TOK_ENTITYREF) {
			variable = strings.TrimPrefix(p.advance().Value, "@")
		} else if p.check(TOK_IDENT) && p.checkAt(1, TOK_LBRACE) {
			// `entity warrior { ... }`; a bare identifier followed by
			// anything else is the first component of an anonymous entity.
			variable = p.advance().Value
		}
	}

	components, boundFuncs, endTok, err := p.parseEntityBody()
	if err != nil {
		return nil, err
	}

	return &ast.EntityDef{
		Variable:       variable,
		Components:     components,
		BoundFunctions: boundFuncs,
		Pos:            report.NewSpan(start, endTok.Span.End),
	}, nil
}

// parseEntityAssignment parses `name = new entity { ... }`.
func (p *Parser) parseEntityAssignment() (*ast.EntityDef, error) {
	varTok, err := p.consume(TOK_IDENT, "variable name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_ASSIGN, "="); err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_NEW, "new"); err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_ENTITY, "entity"); err != nil {
		return nil, err
	}

	components, boundFuncs, endTok, err := p.parseEntityBody()
	if err != nil {
		return nil, err
	}

	return &ast.EntityDef{
		Variable:       varTok.Value,
		Components:     components,
		BoundFunctions: boundFuncs,
		Pos:            report.NewSpan(varTok.Span.Start, endTok.Span.End),
	}, nil
}

// parseEntityBody parses the braced body shared by all entity forms: component
// initializers interleaved with `.name = choice(...)` bound functions.
func (p *Parser) parseEntityBody() ([]*ast.ComponentInit, []*ast.BoundFuncDef, *Token, error) {
	if _, err := p.consume(TOK_LBRACE, "{"); err != nil {
		return nil, nil, nil, err
	}

	var components []*ast.ComponentInit
	var boundFuncs []*ast.BoundFuncDef

	for !p.check(TOK_RBRACE) && !p.atEnd() {
		if p.check(TOK_DOT) {
			bf, err := p.parseBoundFunction()
			if err != nil {
				return nil, nil, nil, err
			}

			boundFuncs = append(boundFuncs, bf)
		} else {
			ci, err := p.parseComponentInit()
			if err != nil {
				return nil, nil, nil, err
			}

			components = append(components, ci)
		}
	}

	endTok, err := p.consume(TOK_RBRACE, "}")
	if err != nil {
		return nil, nil, nil, err
	}

	return components, boundFuncs, endTok, nil
}

// parseBoundFunction parses `.name = choice(params): type { ... }`.
func (p *Parser) parseBoundFunction() (*ast.BoundFuncDef, error) {
	startTok, err := p.consume(TOK_DOT, ".")
	if err != nil {
		return nil, err
	}

	nameTok, err := p.consume(TOK_IDENT, "function name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_ASSIGN, "="); err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_CHOICE, "choice"); err != nil {
		return nil, err
	}

	params, err := p.parseParamList(true)
	if err != nil {
		return nil, err
	}

	returnType, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.BoundFuncDef{
		Name:       nameTok.Value,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Pos:        p.spanFrom(startTok.Span.Start),
	}, nil
}

// parseChoiceParamType parses a choice-function parameter type, which may be a
// composite `A & B & C` entity constraint.  Every member of a composite must
// be a component type.
func (p *Parser) parseChoiceParamType() (ast.TypeExpr, error) {
	first, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if !p.check(TOK_AMP) {
		return first, nil
	}

	members := []ast.TypeExpr{first}
	for p.check(TOK_AMP) {
		p.advance()

		next, err := p.parseType()
		if err != nil {
			return nil, err
		}

		members = append(members, next)
	}

	for _, m := range members {
		if _, ok := m.(*ast.ComponentTypeExpr); !ok {
			return nil, &InvalidSyntaxError{
				Message: "Composite types (using &) can only contain component types",
			}
		}
	}

	return &ast.CompositeTypeExpr{Members: members}, nil
}

// parseComponentInit parses a `Name { field: expr ... }` component
// initializer.
func (p *Parser) parseComponentInit() (*ast.ComponentInit, error) {
	nameTok, err := p.consume(TOK_IDENT, "component name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TOK_LBRACE, "{"); err != nil {
		return nil, err
	}

	var fields []*ast.FieldInit
	for !p.check(TOK_RBRACE) && !p.atEnd() {
		fieldTok, err := p.parseFieldName()
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

	return &ast.ComponentInit{
		Name:   nameTok.Value,
		Fields: fields,
		Pos:    report.NewSpan(nameTok.Span.Start, endTok.Span.End),
	}, nil
}
