package printer

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/pkg/ast"
	"esfront/pkg/parser"
	"esfront/pkg/source"
)

var (
	scriptConfig = parser.Config{}
	moduleConfig = parser.Config{SourceType: parser.SourceModule}
	tsConfig     = parser.Config{SourceType: parser.SourceModule, Plugins: []string{parser.PluginTypeScript}}
	jsxConfig    = parser.Config{SourceType: parser.SourceModule, Plugins: []string{parser.PluginJSX}}
	tsxConfig    = parser.Config{SourceType: parser.SourceModule, Plugins: []string{parser.PluginTypeScript, parser.PluginJSX}}
)

func parse(t *testing.T, input string, cfg parser.Config) *ast.Program {
	t.Helper()
	prog, err := parser.NewParser(source.NewInputSource(input), cfg).ParseProgram()
	require.NoError(t, err, "input:\n%s", input)
	return prog
}

// assertRoundTrip prints input, parses the output again and checks that
// printing is stable from there on.
func assertRoundTrip(t *testing.T, input string, cfg parser.Config) string {
	t.Helper()
	prog := parse(t, input, cfg)
	first := Print(prog)
	again := parse(t, first, cfg)
	second := Print(again)
	if first != second {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(first, second, false)
		t.Errorf("printing is not stable for:\n%s\ndiff:\n%s", input, dmp.DiffPrettyText(diffs))
	}
	assert.Equal(t, len(prog.Body), len(again.Body))
	return first
}

func id(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func num(raw string) *ast.NumericLiteral { return &ast.NumericLiteral{Raw: raw} }

func TestPrintStatements(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"let a = 1, b;", "let a = 1, b;\n"},
		{"'use strict'; x", "'use strict';\nx;\n"},
		{"if (a) b(); else { c; }", "if (a) b(); else {\n  c;\n}\n"},
		{"while (x) {}", "while (x) {}\n"},
		{"do x++; while (x < 3)", "do x++; while (x < 3);\n"},
		{"for (var i = 0; i < n; i++) f(i);", "for (var i = 0; i < n; i++) f(i);\n"},
		{"for (;;) {}", "for (;;) {}\n"},
		{"for (const k in o) ;", "for (const k in o) ;\n"},
		{"a: for (x of y) break a;", "a: for (x of y) break a;\n"},
		{"switch (x) { case 1: y(); default: }", "switch (x) {\n  case 1:\n    y();\n  default:\n}\n"},
		{"try { a } catch { b } finally { c }", "try {\n  a;\n} catch {\n  b;\n} finally {\n  c;\n}\n"},
		{"try {} catch ({ message }) {}", "try {} catch ({message}) {}\n"},
		{"function* g(a, b = 1, ...c) { yield* a; }", "function* g(a, b = 1, ...c) {\n  yield* a;\n}\n"},
		{"async function f() { await x; }", "async function f() {\n  await x;\n}\n"},
		{"throw new Error('x')", "throw new Error('x');\n"},
		{"debugger", "debugger;\n"},
	}
	for _, tt := range tests {
		got := Print(parse(t, tt.input, scriptConfig))
		assert.Equal(t, tt.want, got, "input: %s", tt.input)
	}
}

func TestPrintExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x = (a + b) * c", "x = (a + b) * c;\n"},
		{"a ? b : c ? d : e", "a ? b : c ? d : e;\n"},
		{"a?.b?.[c]?.(d)", "a?.b?.[c]?.(d);\n"},
		{"({ a, b: 1, [c]: 2, ...d, get e() { return 1; }, m() {} })",
			"({a, b: 1, [c]: 2, ...d, get e() {\n  return 1;\n}, m() {}});\n"},
		{"[a, , b, ...c]", "[a, , b, ...c];\n"},
		{"[a, ,]", "[a, ,];\n"},
		{"({ a, b: [c] } = d)", "({a, b: [c]} = d);\n"},
		{"async (x) => ({ x })", "async (x) => ({x});\n"},
		{"x => { return x; }", "(x) => {\n  return x;\n};\n"},
		{"`a${b}c${`d`}`", "`a${b}c${`d`}`;\n"},
		{"tag`x`", "tag`x`;\n"},
		{"new Foo", "new Foo;\n"},
		{"new a.b.C(1)", "new a.b.C(1);\n"},
		{"typeof a, void 0, delete a.b", "typeof a, void 0, delete a.b;\n"},
		{"/ab+c/gi.test(s)", "/ab+c/gi.test(s);\n"},
		{"(function () {})()", "(function() {})();\n"},
		{"(class {})", "(class {});\n"},
		{"a ??= b || c", "a ??= b || c;\n"},
		{"1..toString()", "1..toString();\n"},
	}
	for _, tt := range tests {
		got := Print(parse(t, tt.input, scriptConfig))
		assert.Equal(t, tt.want, got, "input: %s", tt.input)
	}
}

// Trees built by hand carry no parentheses; the printer has to add the
// ones the grammar needs.
func TestPrintAddsParentheses(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{
			"precedence",
			&ast.BinaryExpression{Operator: "*",
				Left:  &ast.BinaryExpression{Operator: "+", Left: id("a"), Right: id("b")},
				Right: id("c")},
			"(a + b) * c",
		},
		{
			"left associativity",
			&ast.BinaryExpression{Operator: "-",
				Left:  id("a"),
				Right: &ast.BinaryExpression{Operator: "-", Left: id("b"), Right: id("c")}},
			"a - (b - c)",
		},
		{
			"exponent base",
			&ast.BinaryExpression{Operator: "**",
				Left:  &ast.UnaryExpression{Operator: "-", Argument: id("a")},
				Right: num("2")},
			"(-a) ** 2",
		},
		{
			"nullish mixing",
			&ast.LogicalExpression{Operator: "??",
				Left:  &ast.LogicalExpression{Operator: "||", Left: id("a"), Right: id("b")},
				Right: id("c")},
			"(a || b) ?? c",
		},
		{
			"double negation",
			&ast.UnaryExpression{Operator: "-", Argument: &ast.UnaryExpression{Operator: "-", Argument: id("a")}},
			"- -a",
		},
		{
			"call inside new",
			&ast.NewExpression{Callee: &ast.CallExpression{Callee: id("f"), Arguments: []ast.Expression{}},
				Arguments: []ast.Expression{}},
			"new (f())()",
		},
		{
			"new without arguments as callee",
			&ast.CallExpression{Callee: &ast.NewExpression{Callee: id("A")}, Arguments: []ast.Expression{}},
			"(new A)()",
		},
		{
			"integer member",
			&ast.MemberExpression{Object: num("1"), Property: id("x")},
			"(1).x",
		},
		{
			"arrow in binary",
			&ast.LogicalExpression{Operator: "||",
				Left: &ast.ArrowFunctionExpression{Body: num("1"), ExpressionBody: true},
				Right: id("b")},
			"(() => 1) || b",
		},
		{
			"sequence argument",
			&ast.CallExpression{Callee: id("f"), Arguments: []ast.Expression{
				&ast.SequenceExpression{Expressions: []ast.Expression{id("a"), id("b")}}}},
			"f((a, b))",
		},
		{
			"object statement",
			&ast.ExpressionStatement{Expression: &ast.MemberExpression{Object: &ast.ObjectExpression{}, Property: id("x")}},
			"({}.x);\n",
		},
		{
			"dangling else",
			&ast.IfStatement{
				Test:       id("a"),
				Consequent: &ast.IfStatement{Test: id("b"), Consequent: &ast.ExpressionStatement{Expression: id("x")}},
				Alternate:  &ast.ExpressionStatement{Expression: id("y")},
			},
			"if (a) {\n  if (b) x;\n} else y;\n",
		},
		{
			"in inside for init",
			&ast.ForStatement{
				Init: &ast.VariableDeclaration{DeclKind: ast.DeclVar, Declarations: []*ast.VariableDeclarator{{
					ID:   id("x"),
					Init: &ast.BinaryExpression{Operator: "in", Left: id("a"), Right: id("b")},
				}}},
				Body: &ast.EmptyStatement{},
			},
			"for (var x = (a in b);;) ;\n",
		},
		{
			"union in array type",
			&ast.TSArrayType{ElementType: &ast.TSUnionType{Types: []ast.TSType{
				&ast.TSKeywordType{Name: "string"}, &ast.TSKeywordType{Name: "number"}}}},
			"(string | number)[]",
		},
		{
			"function type in union",
			&ast.TSUnionType{Types: []ast.TSType{
				&ast.TSFunctionType{Params: []ast.Pattern{}, ReturnType: &ast.TSKeywordType{Name: "void"}},
				&ast.TSKeywordType{Name: "null"}}},
			"(() => void) | null",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New().PrintNode(tt.node))
		})
	}
}

func TestRoundTripScript(t *testing.T) {
	inputs := []string{
		`var a = 1, b = a + 2 * 3;
function f(x, { y, z = 1 }, [w], ...rest) {
  if (x) return y; else if (z) { return w; }
  for (let i = 0, j = 1; i < j; i++) continue;
  for (var k in rest) break;
  for (const [m, n] of rest) ;
  label: while (true) break label;
  do { x--; } while (x > 0);
  switch (x) { case 1: case 2: y(); break; default: z(); }
  try { throw x; } catch (e) { x = e; } finally { y = null; }
  return function* () { yield; yield x; yield* rest; };
}`,
		`a = b ? c : d;
a += b -= c **= 2;
x = a && b || c;
y = (a, b);
z = (-x) ** 2 === -(x ** 2);
w = !a instanceof B;
v = "x" in o && !("y" in o);
u = a ?? (b || c);
t = (a ?? b) ?? c;
s = typeof typeof x;
r = void (0, 1);
q = new new A()();
o = a.b.c(d)[e]?.f?.(g);
n = ++a + +b - -c - --d;
m = x++ + ++y;
l = /[/]+\//g;
k = { "a": 1, 2: b, [c + d]: e, async *f() {}, get g() { return 1; }, set g(v) {} };
j = async function () { await (a, b); };
i = class A extends (B || C) { static x = 1; #y; static { this.z = 1; } get #w() { return this.#y; } };
h = async (a, b) => a + b;
g = (a = 1, { b }) => ({ a, b });
f = a;
`,
		`(function () {})();
(async () => {})();
({} = x);
[a, b] = [b, a];
({ a: { b: [c = 1] } } = d);
new (f())();
(new A).b;
new (a.b().c);
a?.b.c;
(a?.b).c;
if (a) { if (b) c(); } else d();
for (var x = (a in b); x; ) ;
`,
	}
	for _, in := range inputs {
		assertRoundTrip(t, in, scriptConfig)
	}
}

func TestRoundTripModule(t *testing.T) {
	out := assertRoundTrip(t, `import a, * as ns from "m";
import b, { c, d as e, "f" as g } from "n";
import "side-effect";
export { a, c as default2, e as "quoted" };
export * from "m";
export * as all from "m";
export { x as y } from "n";
export const h = 1;
export function fn() {}
export class K {}
export default function () {}
const meta = import.meta.url;
const mod = await import("./x.js");
`, moduleConfig)
	assert.Contains(t, out, `import b, {c, d as e, "f" as g} from "n";`)
	assert.Contains(t, out, `export {a, c as default2, e as "quoted"};`)
	assert.Contains(t, out, "export default function() {}\n")

	out = assertRoundTrip(t, "export default (function () {});\nexport { a as b };\nlet a;", moduleConfig)
	assert.Contains(t, out, "export default (function() {});")

	withAttrs := parser.Config{SourceType: parser.SourceModule, Plugins: []string{parser.PluginImportAttributes}}
	out = assertRoundTrip(t, `import data from "./d.json" with { type: "json" };`, withAttrs)
	assert.Equal(t, "import data from \"./d.json\" with {type: \"json\"};\n", out)
}

func TestRoundTripTypeScript(t *testing.T) {
	out := assertRoundTrip(t, `type A<T extends object = {}> = { readonly [K in keyof T]?: T[K] };
type B = T extends (infer U)[] ? U : never;
type C = [a: string, b?: number, ...rest: boolean[]];
type D = (string | number)[] | (() => void);
type E = keyof typeof obj;
type F = `+"`pre${string}`"+`;
type G = new (x: number) => A;
type H = { -readonly [K in keyof T]-?: T[K] };
interface I<T> extends J, K<T> {
  a: string;
  b?(): void;
  readonly c: number;
  [key: string]: unknown;
  new (x: T): I<T>;
  (y: T): T;
}
enum Color { Red, Green = "g", Blue = 4 }
declare const enum Flags { None = 0 }
namespace NS.Inner { export const x = 1; }
declare module "mod" { export function f(): void; }
declare global { interface Window { a: string } }
declare function df(x: number): string;
function over(x: string): string;
function over(x: any) { return x; }
abstract class Base<T> implements I<T> {
  private readonly x: number = 1;
  protected abstract m(): void;
  static y?: string;
  z!: number;
  constructor(public a: string, private b = 2) {}
  [key: string]: any;
}
let v = <number>w;
let u = x as const;
let s = y satisfies Z;
let n = a!.b!;
const id = <T,>(x: T): T => x;
function guard(x: unknown): x is string { return true; }
function assertIt(x: unknown): asserts x is number {}
import type { T1 } from "./t";
export type { T2 } from "./t";
import fs = require("fs");
let inst = f<string>;
let call = f<string>(x);
let created = new Map<string, number>();
`, tsConfig)
	assert.Contains(t, out, "type D = (string | number)[] | (() => void);")
	assert.Contains(t, out, "const id = <T,>(x: T): T => x;")
	assert.Contains(t, out, "import fs = require(\"fs\");")
	assert.Contains(t, out, "enum Color {Red, Green = \"g\", Blue = 4}")
}

func TestRoundTripJSX(t *testing.T) {
	out := assertRoundTrip(t, `const el = <div className="a" id={x} {...rest} data-x>
  Hello {name}! &amp; bye
  <br />
  <ns:tag />
  <A.B.C prop={<span />}>{/* comment */}</A.B.C>
  <>frag {...children}</>
</div>;
`, jsxConfig)
	assert.Contains(t, out, `<div className="a" id={x} {...rest} data-x>`)
	assert.Contains(t, out, "Hello {name}! &amp; bye")
	assert.Contains(t, out, "<A.B.C prop={<span />}>{}</A.B.C>")

	out = assertRoundTrip(t, "const f = <T,>(x: T) => <Select<string> value={x} />;", tsxConfig)
	assert.Contains(t, out, "<T,>(x: T) => <Select<string> value={x} />")
}

func TestPrintNodeKinds(t *testing.T) {
	prog := parse(t, "let { a, b: [c] }: T = d;", tsConfig)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	assert.Equal(t, "{a, b: [c]}: T", New().PrintNode(decl.Declarations[0].ID))
	assert.Equal(t, "let {a, b: [c]}: T = d;\n", New().PrintNode(decl))
	assert.Equal(t, "T", New().PrintNode(decl.Declarations[0].ID.(*ast.ObjectPattern).TypeAnnotation))
	assert.Equal(t, Print(prog), New().PrintNode(prog))
}
