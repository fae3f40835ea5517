package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/pkg/ast"
	"esfront/pkg/errors"
	"esfront/pkg/lexer"
	"esfront/pkg/scope"
	"esfront/pkg/source"
)

var (
	scriptConfig = Config{}
	moduleConfig = Config{SourceType: SourceModule}
	tsConfig     = Config{SourceType: SourceModule, Plugins: []string{PluginTypeScript}}
	jsxConfig    = Config{SourceType: SourceModule, Plugins: []string{PluginJSX}}
	tsxConfig    = Config{SourceType: SourceModule, Plugins: []string{PluginTypeScript, PluginJSX}}
)

// parse parses input and fails the test on any diagnostic.
func parse(t *testing.T, input string, cfg Config) *ast.Program {
	t.Helper()
	prog, err := NewParser(source.NewInputSource(input), cfg).ParseProgram()
	require.NoError(t, err, "input: %s", input)
	require.NotNil(t, prog)
	return prog
}

// parseErrors parses input, expects it to fail and returns the messages of
// every diagnostic in report order.
func parseErrors(t *testing.T, input string, cfg Config) []string {
	t.Helper()
	prog, err := NewParser(source.NewInputSource(input), cfg).ParseProgram()
	require.Error(t, err, "input: %s", input)
	assert.Nil(t, prog)
	perr, ok := err.(*errors.ParseError)
	require.True(t, ok, "error is %T", err)
	msgs := make([]string, len(perr.Diagnostics))
	for i, d := range perr.Diagnostics {
		msgs[i] = d.Msg
	}
	return msgs
}

func assertError(t *testing.T, input string, cfg Config, want string) {
	t.Helper()
	assert.Contains(t, parseErrors(t, input, cfg), want, "input: %s", input)
}

// expr returns the expression of the only statement of a script.
func expr(t *testing.T, input string, cfg Config) ast.Expression {
	t.Helper()
	prog := parse(t, input, cfg)
	require.Len(t, prog.Body, 1)
	stmt, ok := prog.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok, "statement is %T", prog.Body[0])
	return stmt.Expression
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, tsxConfig.Validate())
	assert.Error(t, Config{SourceType: "commonjs"}.Validate())
	assert.Error(t, Config{Plugins: []string{"flow"}}.Validate())
	assert.True(t, tsxConfig.JSX())
	assert.True(t, tsxConfig.TypeScript())
	assert.False(t, scriptConfig.Module())
}

func TestEmptyProgram(t *testing.T) {
	prog := parse(t, "", scriptConfig)
	assert.Empty(t, prog.Body)
	assert.Equal(t, SourceScript, prog.SourceType)

	prog = parse(t, "// only a comment\n", moduleConfig)
	assert.Empty(t, prog.Body)
	assert.Equal(t, SourceModule, prog.SourceType)
}

func TestVariableDeclarations(t *testing.T) {
	tests := []struct {
		input string
		kind  string
		names []string
	}{
		{"var a = 1;", ast.DeclVar, []string{"a"}},
		{"let a, b = 2;", ast.DeclLet, []string{"a", "b"}},
		{"const {x, y: [z]} = o;", ast.DeclConst, []string{"x", "z"}},
		{"let [a, ...rest] = arr;", ast.DeclLet, []string{"a", "rest"}},
	}
	for _, tt := range tests {
		prog := parse(t, tt.input, scriptConfig)
		require.Len(t, prog.Body, 1)
		decl, ok := prog.Body[0].(*ast.VariableDeclaration)
		require.True(t, ok, "statement is %T", prog.Body[0])
		assert.Equal(t, tt.kind, decl.DeclKind)
		var names []string
		for _, d := range decl.Declarations {
			for _, id := range ast.BoundNames(d.ID, nil) {
				names = append(names, id.Name)
			}
		}
		assert.Equal(t, tt.names, names, tt.input)
	}
}

func TestLetAsIdentifier(t *testing.T) {
	e := expr(t, "let = 1", scriptConfig)
	assign, ok := e.(*ast.AssignmentExpression)
	require.True(t, ok, "expression is %T", e)
	assert.Equal(t, "let", assign.Left.(*ast.Identifier).Name)
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	prog := parse(t, "function f() {\n  return\n  5\n}", scriptConfig)
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	require.Len(t, fn.Body.Body, 2)
	ret, ok := fn.Body.Body[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.Nil(t, ret.Argument)
	assert.IsType(t, &ast.ExpressionStatement{}, fn.Body.Body[1])

	prog = parse(t, "a\n++b", scriptConfig)
	require.Len(t, prog.Body, 2)
	assert.IsType(t, &ast.Identifier{}, prog.Body[0].(*ast.ExpressionStatement).Expression)
	upd, ok := prog.Body[1].(*ast.ExpressionStatement).Expression.(*ast.UpdateExpression)
	require.True(t, ok)
	assert.True(t, upd.Prefix)
	assert.Equal(t, "++", upd.Operator)

	prog = parse(t, "a = b\nc()", scriptConfig)
	assert.Len(t, prog.Body, 2)

	prog = parse(t, "x\n;y", scriptConfig)
	assert.Len(t, prog.Body, 2)

	// no insertion inside a call on the next line
	e := expr(t, "a\n(b)", scriptConfig)
	assert.IsType(t, &ast.CallExpression{}, e)
}

func TestMissingSemicolon(t *testing.T) {
	assertError(t, "a b", scriptConfig, errors.MsgMissingSemicolon)
	assertError(t, "var a = 1 var b = 2", scriptConfig, errors.MsgMissingSemicolon)
}

func TestThrowNewline(t *testing.T) {
	assertError(t, "throw\nerr", scriptConfig, errors.MsgNewlineAfterThrow)
}

func TestDirectives(t *testing.T) {
	prog := parse(t, "'use strict'; 'other'; a;", scriptConfig)
	require.Len(t, prog.Body, 3)
	assert.Equal(t, "use strict", prog.Body[0].(*ast.ExpressionStatement).Directive)
	assert.Equal(t, "other", prog.Body[1].(*ast.ExpressionStatement).Directive)
	assert.Equal(t, "", prog.Body[2].(*ast.ExpressionStatement).Directive)

	prog = parse(t, "('use strict'); with (a) {}", scriptConfig)
	assert.Equal(t, "", prog.Body[0].(*ast.ExpressionStatement).Directive)

	assertError(t, "'use strict'; with (a) {}", scriptConfig, errors.MsgWithStrict)
	assertError(t, "function f(a = 1) { 'use strict' }", scriptConfig, errors.MsgUseStrictNonSimple)
}

func TestDuplicateParameters(t *testing.T) {
	parse(t, "function f(a, a) {}", scriptConfig)

	tests := []string{
		"'use strict'; function f(a, a) {}",
		"function f(a, a) { 'use strict' }",
		"function f(a, [a]) {}",
		"(a, a) => a",
		"({ m(a, a) {} })",
	}
	for _, input := range tests {
		assertError(t, input, scriptConfig, errors.MsgDuplicateParam)
	}
}

func TestLexicalRedeclaration(t *testing.T) {
	dup := fmt.Sprintf(errors.MsgDuplicateDeclaration, "a")
	tests := []string{
		"let a; let a;",
		"let a; var a;",
		"const a = 1; function a() {}",
		"{ function a() {} let a; }",
		"try {} catch (a) { let a; }",
	}
	for _, input := range tests {
		assertError(t, input, scriptConfig, dup)
	}

	parse(t, "var a; var a;", scriptConfig)
	parse(t, "function a() {} function a() {}", scriptConfig)
	parse(t, "let a; { let a; }", scriptConfig)
	parse(t, "try {} catch (a) { var a; }", scriptConfig)
}

func TestCoverGrammar(t *testing.T) {
	e := expr(t, "({a: [b, c]} = obj)", scriptConfig)
	assign, ok := e.(*ast.AssignmentExpression)
	require.True(t, ok, "expression is %T", e)
	obj, ok := assign.Left.(*ast.ObjectPattern)
	require.True(t, ok, "target is %T", assign.Left)
	require.Len(t, obj.Properties, 1)
	prop := obj.Properties[0].(*ast.PatternProperty)
	arr, ok := prop.Value.(*ast.ArrayPattern)
	require.True(t, ok, "value is %T", prop.Value)
	assert.Len(t, arr.Elements, 2)

	e = expr(t, "({a, b = 1}) => a + b", scriptConfig)
	arrow, ok := e.(*ast.ArrowFunctionExpression)
	require.True(t, ok, "expression is %T", e)
	assert.True(t, arrow.ExpressionBody)
	require.Len(t, arrow.Params, 1)
	assert.IsType(t, &ast.ObjectPattern{}, arrow.Params[0])

	e = expr(t, "[a, , ...b] = c", scriptConfig)
	assert.IsType(t, &ast.ArrayPattern{}, e.(*ast.AssignmentExpression).Left)

	parse(t, "({a = 1} = {})", scriptConfig)
	parse(t, "({a = 1}) => a", scriptConfig)
}

func TestCoverGrammarErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"({a: f()} = obj)", errors.MsgInvalidAssignTarget},
		{"({a = 1})", errors.MsgShorthandInit},
		{"f() = 1", errors.MsgInvalidAssignTarget},
		{"([a]) = 1", errors.MsgInvalidParenPattern},
		{"[...a, b] = c", errors.MsgRestNotLast},
		{"a?.b = 1", errors.MsgOptionalChainAssign},
		{"({...{}} = a)", errors.MsgInvalidAssignTarget},
	}
	for _, tt := range tests {
		assertError(t, tt.input, scriptConfig, tt.want)
	}
}

func TestBinaryPrecedence(t *testing.T) {
	e := expr(t, "a + b * c", scriptConfig)
	bin := e.(*ast.BinaryExpression)
	assert.Equal(t, "+", bin.Operator)
	assert.Equal(t, "*", bin.Right.(*ast.BinaryExpression).Operator)

	e = expr(t, "a ** b ** c", scriptConfig)
	bin = e.(*ast.BinaryExpression)
	assert.IsType(t, &ast.Identifier{}, bin.Left)
	assert.Equal(t, "**", bin.Right.(*ast.BinaryExpression).Operator)

	e = expr(t, "a || b && c", scriptConfig)
	logical := e.(*ast.LogicalExpression)
	assert.Equal(t, "||", logical.Operator)
	assert.Equal(t, "&&", logical.Right.(*ast.LogicalExpression).Operator)

	e = expr(t, "(a ?? b) || c", scriptConfig)
	assert.Equal(t, "||", e.(*ast.LogicalExpression).Operator)

	assertError(t, "a ?? b || c", scriptConfig, errors.MsgNullishMixed)
	assertError(t, "-a ** 2", scriptConfig, errors.MsgExponentUnary)
	parse(t, "(-a) ** 2", scriptConfig)
}

func TestRegexVersusDivision(t *testing.T) {
	e := expr(t, "a / b / c", scriptConfig)
	assert.IsType(t, &ast.BinaryExpression{}, e)

	e = expr(t, "x = /ab+c/gi", scriptConfig)
	re, ok := e.(*ast.AssignmentExpression).Right.(*ast.RegExpLiteral)
	require.True(t, ok)
	assert.Equal(t, "ab+c", re.Pattern)
	assert.Equal(t, "gi", re.Flags)

	prog := parse(t, "if (a) /x/.test(b)", scriptConfig)
	stmt := prog.Body[0].(*ast.IfStatement)
	call := stmt.Consequent.(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	member := call.Callee.(*ast.MemberExpression)
	assert.IsType(t, &ast.RegExpLiteral{}, member.Object)

	e = expr(t, "(a) / 2", scriptConfig)
	assert.IsType(t, &ast.BinaryExpression{}, e)
}

func TestRegExpValidation(t *testing.T) {
	cfg := Config{ValidateRegExp: true}
	parse(t, "/[a-z]+(?=x)/", cfg)
	msgs := parseErrors(t, "/(a/", cfg)
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[0], "Invalid regular expression")
}

func TestTemplateNesting(t *testing.T) {
	e := expr(t, "`a${`b${c}d`}e`", scriptConfig)
	outer, ok := e.(*ast.TemplateLiteral)
	require.True(t, ok, "expression is %T", e)
	require.Len(t, outer.Quasis, 2)
	require.Len(t, outer.Expressions, 1)
	assert.Equal(t, "a", outer.Quasis[0].Cooked)
	assert.Equal(t, "e", outer.Quasis[1].Cooked)
	assert.True(t, outer.Quasis[1].Tail)

	inner, ok := outer.Expressions[0].(*ast.TemplateLiteral)
	require.True(t, ok)
	require.Len(t, inner.Quasis, 2)
	assert.Equal(t, "b", inner.Quasis[0].Cooked)
	assert.Equal(t, "d", inner.Quasis[1].Cooked)
	assert.Equal(t, "c", inner.Expressions[0].(*ast.Identifier).Name)

	e = expr(t, "`${{a: 1}.a}`", scriptConfig)
	assert.IsType(t, &ast.MemberExpression{}, e.(*ast.TemplateLiteral).Expressions[0])
}

func TestTaggedTemplateInvalidEscape(t *testing.T) {
	e := expr(t, "tag`\\unicode`", scriptConfig)
	tagged, ok := e.(*ast.TaggedTemplateExpression)
	require.True(t, ok)
	q := tagged.Quasi.Quasis[0]
	assert.True(t, q.Invalid)
	assert.Equal(t, "\\unicode", q.Raw)

	assertError(t, "`\\unicode`", scriptConfig, errors.MsgTemplateEscape)
}

func TestOptionalChaining(t *testing.T) {
	e := expr(t, "a?.b.c()", scriptConfig)
	chain, ok := e.(*ast.ChainExpression)
	require.True(t, ok, "expression is %T", e)
	call := chain.Expression.(*ast.CallExpression)
	assert.False(t, call.Optional)
	member := call.Callee.(*ast.MemberExpression)
	assert.False(t, member.Optional)
	assert.True(t, member.Object.(*ast.MemberExpression).Optional)

	e = expr(t, "a?.[0]", scriptConfig)
	assert.True(t, e.(*ast.ChainExpression).Expression.(*ast.MemberExpression).Computed)

	e = expr(t, "x?.5:1", scriptConfig)
	assert.IsType(t, &ast.ConditionalExpression{}, e)

	assertError(t, "a?.b`t`", scriptConfig, errors.MsgTaggedTemplateChain)
}

func TestArrowFunctions(t *testing.T) {
	tests := []struct {
		input  string
		params int
		async  bool
		exprBd bool
	}{
		{"x => x", 1, false, true},
		{"() => {}", 0, false, false},
		{"(a, b) => a + b", 2, false, true},
		{"async x => await x", 1, true, true},
		{"async (a, ...b) => { await a }", 2, true, false},
		{"([a], {b}) => a", 2, false, true},
	}
	for _, tt := range tests {
		e := expr(t, tt.input, scriptConfig)
		arrow, ok := e.(*ast.ArrowFunctionExpression)
		require.True(t, ok, "%s: expression is %T", tt.input, e)
		assert.Len(t, arrow.Params, tt.params, tt.input)
		assert.Equal(t, tt.async, arrow.Async, tt.input)
		assert.Equal(t, tt.exprBd, arrow.ExpressionBody, tt.input)
	}

	assert.IsType(t, &ast.CallExpression{}, expr(t, "async(a, b)", scriptConfig))
	assertError(t, "(a)\n=> a", scriptConfig, errors.MsgNewlineBeforeArrow)
	assertError(t, "(a, ...b,) => a", scriptConfig, errors.MsgRestTrailingComma)
	assertError(t, "async (await) => 1", scriptConfig, errors.MsgAwaitInAsyncParams)
}

func TestFunctionsAndGenerators(t *testing.T) {
	prog := parse(t, "function* g() { yield 1; yield* h(); }", scriptConfig)
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	assert.True(t, fn.Generator)
	y := fn.Body.Body[1].(*ast.ExpressionStatement).Expression.(*ast.YieldExpression)
	assert.True(t, y.Delegate)

	prog = parse(t, "async function f() { for await (const x of xs) {} }", scriptConfig)
	fn = prog.Body[0].(*ast.FunctionDeclaration)
	assert.True(t, fn.Async)
	loop := fn.Body.Body[0].(*ast.ForOfStatement)
	assert.True(t, loop.Await)

	parse(t, "function f() { var yield; }", scriptConfig)
	assertError(t, "function* g() { var yield; }", scriptConfig, errors.MsgYieldAsIdentifier)
	assertError(t, "function* g(a = yield) {}", scriptConfig, errors.MsgYieldInParams)
	assertError(t, "return 1", scriptConfig, errors.MsgIllegalReturn)
	parse(t, "return 1", Config{AllowReturnOutsideFunction: true})
}

func TestControlFlow(t *testing.T) {
	parse(t, "outer: for (;;) { inner: while (x) { continue outer; } break; }", scriptConfig)
	parse(t, "switch (x) { case 1: break; default: }", scriptConfig)
	parse(t, "do x(); while (y) z()", scriptConfig)
	parse(t, "try { a } catch { b } finally { c }", scriptConfig)

	tests := []struct {
		input string
		want  string
	}{
		{"break;", errors.MsgIllegalBreak},
		{"while (x) { break nope; }", fmt.Sprintf(errors.MsgUndefinedLabel, "nope")},
		{"a: { continue a; }", fmt.Sprintf(errors.MsgIllegalContinueTo, "a")},
		{"continue;", errors.MsgIllegalContinue},
		{"switch (x) { default: default: }", errors.MsgMultipleDefaults},
		{"if (a) let [b] = c;", errors.MsgLexicalInSingleStmt},
		{"while (1) const a = 1;", errors.MsgLexicalInSingleStmt},
		{"const a;", errors.MsgConstWithoutInit},
		{"for (var i = 0 of xs) {}", fmt.Sprintf(errors.MsgForInOfInit, "of")},
	}
	for _, tt := range tests {
		assertError(t, tt.input, scriptConfig, tt.want)
	}

	msgs := parseErrors(t, "try {}", scriptConfig)
	assert.Equal(t, errors.MsgMissingCatchFinally, msgs[len(msgs)-1])
}

func TestForHeads(t *testing.T) {
	prog := parse(t, "for (let [k, v] of m) {}", scriptConfig)
	loop := prog.Body[0].(*ast.ForOfStatement)
	decl := loop.Left.(*ast.VariableDeclaration)
	assert.Equal(t, ast.DeclLet, decl.DeclKind)

	prog = parse(t, "for (a in b) ;", scriptConfig)
	assert.IsType(t, &ast.ForInStatement{}, prog.Body[0])

	prog = parse(t, "for (var i = 0, n = a.length; i < n; i++) {}", scriptConfig)
	f := prog.Body[0].(*ast.ForStatement)
	assert.Len(t, f.Init.(*ast.VariableDeclaration).Declarations, 2)

	// `in` is a relational operator inside a nested group
	prog = parse(t, "for (var x = (a in b); ;) break;", scriptConfig)
	assert.IsType(t, &ast.ForStatement{}, prog.Body[0])

	assertError(t, "for (let.x of xs) {}", scriptConfig, errors.MsgForOfLet)
	assert.Equal(t, []string{errors.MsgForOfAsync}, parseErrors(t, "for (async of xs) {}", scriptConfig))
	parse(t, "for (async of => {};;);", scriptConfig)
	parse(t, "for ((async) of xs) {}", scriptConfig)
	parse(t, "async function f() { for await (async of xs) {} }", scriptConfig)
	prog = parse(t, "for (async.x of xs) {}", scriptConfig)
	assert.IsType(t, &ast.MemberExpression{}, prog.Body[0].(*ast.ForOfStatement).Left)

	prog = parse(t, "for ([a, b] of c);", scriptConfig)
	assert.IsType(t, &ast.ArrayPattern{}, prog.Body[0].(*ast.ForOfStatement).Left)
	prog = parse(t, "for ({a, b: [c]} in d);", scriptConfig)
	assert.IsType(t, &ast.ObjectPattern{}, prog.Body[0].(*ast.ForInStatement).Left)
	prog = parse(t, "for ((a) of c);", scriptConfig)
	assert.IsType(t, &ast.Identifier{}, prog.Body[0].(*ast.ForOfStatement).Left)
	parse(t, "for (a.b in c);", scriptConfig)

	assertError(t, "for (f() in b);", scriptConfig, errors.MsgInvalidForTarget)
	assertError(t, "for ((a + b) of c);", scriptConfig, errors.MsgInvalidForTarget)
	assertError(t, "'use strict'; for (eval in b);", scriptConfig, errors.MsgStrictEvalArguments)
}

func TestForHeadRestoresInContext(t *testing.T) {
	p := NewParser(source.NewInputSource("for (a + ; ;) ;"), scriptConfig)
	_, err := p.ParseProgram()
	require.Error(t, err)
	assert.Empty(t, p.ctx.noIn)
}

func TestSpeculationLeavesNoResidue(t *testing.T) {
	// Each of these is first tried as an arrow function or generic call
	// and rolled back.
	inputs := []struct {
		input string
		cfg   Config
	}{
		{"(a, b);", scriptConfig},
		{"(a = 1, b);", scriptConfig},
		{"a < b;", tsConfig},
		{"a < b > c;", tsConfig},
		{"(a) ? b : c;", tsConfig},
		{"f<T>(x);", tsConfig},
		{"let v = (x: number) => x;", tsConfig},
	}
	for _, tt := range inputs {
		p := NewParser(source.NewInputSource(tt.input), tt.cfg)
		_, err := p.ParseProgram()
		require.NoError(t, err, tt.input)
		assert.Empty(t, p.Errors(), tt.input)
	}

	// Diagnostics raised while reading the rejected arrow parameters are
	// reported once, by the parse that is kept.
	for _, input := range []string{"(a ?? b || c);", "(a = b ?? c || d);"} {
		msgs := parseErrors(t, input, tsConfig)
		assert.Equal(t, []string{errors.MsgNullishMixed}, msgs, input)
	}
}

func TestTryParseRestoresState(t *testing.T) {
	p := NewParser(source.NewInputSource("a ?? b || c;"), scriptConfig)
	p.enterProgram()
	require.Equal(t, lexer.IDENT, p.cur())
	errsBefore, offsetBefore := p.errs.Len(), p.l.Offset()

	v, ok := tryParse(p, func() (ast.Expression, error) {
		require.True(t, p.symbols.DeclareLexical("x", scope.SymLet))
		if _, err := p.parseExpression(); err != nil {
			return nil, err
		}
		require.Equal(t, errsBefore+1, p.errs.Len())
		return nil, p.unexpected()
	})
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, errsBefore, p.errs.Len())
	assert.Equal(t, offsetBefore, p.l.Offset())
	assert.Equal(t, "a", p.l.Value())
	assert.False(t, p.symbols.Declared("x"))

	e, err := p.parseExpression()
	require.NoError(t, err)
	assert.IsType(t, &ast.LogicalExpression{}, e)
	assert.Equal(t, errsBefore+1, p.errs.Len())
}

func TestDiagnosticsOrderAndFatal(t *testing.T) {
	msgs := parseErrors(t, "'use strict'; with (a) {} break; var x = ;", scriptConfig)
	require.Len(t, msgs, 3)
	assert.Equal(t, errors.MsgWithStrict, msgs[0])
	assert.Equal(t, errors.MsgIllegalBreak, msgs[1])
	assert.Equal(t, fmt.Sprintf(errors.MsgUnexpectedTokenValue, ";"), msgs[2])
}

func TestMaxErrors(t *testing.T) {
	input := "break; break; break; break;"
	msgs := parseErrors(t, input, Config{MaxErrors: 2})
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[2], "too many parse errors")
}

func TestLocations(t *testing.T) {
	prog := parse(t, "let a = 1;\nfoo(bar)", scriptConfig)
	require.Len(t, prog.Body, 2)
	decl := prog.Body[0]
	assert.Equal(t, source.Position{Line: 1, Column: 1, Offset: 0}, decl.Start())
	assert.Equal(t, 10, decl.End().Offset)

	call := prog.Body[1].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	assert.Equal(t, 2, call.Start().Line)
	assert.Equal(t, 11, call.Start().Offset)
	assert.Equal(t, 19, call.End().Offset)
	arg := call.Arguments[0].(*ast.Identifier)
	assert.Equal(t, 15, arg.Start().Offset)
}

func TestObjectLiterals(t *testing.T) {
	e := expr(t, "({a, b: 1, [c]: 2, get d() { return 1 }, set d(v) {}, *e() {}, async f() {}, ...g})", scriptConfig)
	obj := e.(*ast.ObjectExpression)
	require.Len(t, obj.Properties, 8)
	assert.True(t, obj.Properties[0].(*ast.Property).Shorthand)
	assert.True(t, obj.Properties[2].(*ast.Property).Computed)
	assert.Equal(t, ast.PropertyGet, obj.Properties[3].(*ast.Property).PropKind)
	assert.Equal(t, ast.PropertySet, obj.Properties[4].(*ast.Property).PropKind)
	assert.True(t, obj.Properties[5].(*ast.Property).Method)
	assert.IsType(t, &ast.SpreadElement{}, obj.Properties[7])

	assertError(t, "({__proto__: a, __proto__: b})", scriptConfig, errors.MsgDuplicateProto)
	parse(t, "({__proto__: a, __proto__: b} = c)", scriptConfig)
	parse(t, "({__proto__: a, ['__proto__']: b})", scriptConfig)
	assertError(t, "({get a(x) {}})", scriptConfig, errors.MsgGetterParams)
	assertError(t, "({ m() { super(); } })", scriptConfig, errors.MsgSuperCall)
}

func TestNewAndMetaProperties(t *testing.T) {
	e := expr(t, "new Foo", scriptConfig)
	assert.Nil(t, e.(*ast.NewExpression).Arguments, "no argument list")

	e = expr(t, "new Foo()", scriptConfig)
	args := e.(*ast.NewExpression).Arguments
	assert.NotNil(t, args)
	assert.Empty(t, args)

	e = expr(t, "new a.b.C(1)", scriptConfig)
	assert.IsType(t, &ast.MemberExpression{}, e.(*ast.NewExpression).Callee)

	prog := parse(t, "function f() { return new.target }", scriptConfig)
	ret := prog.Body[0].(*ast.FunctionDeclaration).Body.Body[0].(*ast.ReturnStatement)
	meta := ret.Argument.(*ast.MetaProperty)
	assert.Equal(t, "new", meta.Meta.Name)
	assert.Equal(t, "target", meta.Property.Name)

	assertError(t, "new.target", scriptConfig, errors.MsgNewTargetOutside)
	parse(t, "new.target", Config{AllowNewTargetOutsideFunction: true})
	assertError(t, "new a?.b()", scriptConfig, errors.MsgOptionalChainNew)
}

func TestWalkVisitsEveryNode(t *testing.T) {
	prog := parse(t, "function f(a) { return [a, {b: a}] }", scriptConfig)
	var idents []string
	ast.Inspect(prog, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok {
			idents = append(idents, id.Name)
		}
		return true
	})
	assert.Equal(t, []string{"f", "a", "a", "b", "a"}, idents)
}
