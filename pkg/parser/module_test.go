package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esfront/pkg/ast"
	"esfront/pkg/errors"
)

func TestImportDeclarations(t *testing.T) {
	tests := []struct {
		input      string
		specifiers []string
		source     string
	}{
		{`import "side-effect";`, nil, "side-effect"},
		{`import a from "m";`, []string{"default:a"}, "m"},
		{`import * as ns from "m";`, []string{"ns:ns"}, "m"},
		{`import a, {b, c as d, "e f" as g} from "m";`, []string{"default:a", "b:b", "c:d", "e f:g"}, "m"},
		{`import {default as x} from "m";`, []string{"default:x"}, "m"},
	}
	for _, tt := range tests {
		prog := parse(t, tt.input, moduleConfig)
		decl, ok := prog.Body[0].(*ast.ImportDeclaration)
		require.True(t, ok, "%s: statement is %T", tt.input, prog.Body[0])
		assert.Equal(t, tt.source, decl.Source.Value)
		var got []string
		for _, s := range decl.Specifiers {
			switch s := s.(type) {
			case *ast.ImportDefaultSpecifier:
				got = append(got, "default:"+s.Local.Name)
			case *ast.ImportNamespaceSpecifier:
				got = append(got, "ns:"+s.Local.Name)
			case *ast.ImportSpecifier:
				got = append(got, ast.ModuleExportName(s.Imported)+":"+s.Local.Name)
			}
		}
		assert.Equal(t, tt.specifiers, got, tt.input)
	}
}

func TestImportAttributes(t *testing.T) {
	cfg := Config{SourceType: SourceModule, Plugins: []string{PluginImportAttributes}}
	prog := parse(t, `import data from "./data.json" with { type: "json" };`, cfg)
	decl := prog.Body[0].(*ast.ImportDeclaration)
	require.Len(t, decl.Attributes, 1)
	assert.Equal(t, "type", ast.ModuleExportName(decl.Attributes[0].Key))
	assert.Equal(t, "json", decl.Attributes[0].Value.Value)

	assertError(t, `import a from "m" with { type: "json" };`, moduleConfig, errors.MsgImportAttributesDisabled)
	assertError(t, `import a from "m" with { type: "json", type: "css" };`, cfg,
		fmt.Sprintf(errors.MsgDuplicateImportAttribute, "type"))
}

func TestExportDeclarations(t *testing.T) {
	prog := parse(t, `
export const a = 1, b = 2;
export function f() {}
export class C {}
export { a as aa, f as g };
export * from "m";
export * as ns from "n";
export { x as y } from "o";
export default a + b;
`, moduleConfig)
	require.Len(t, prog.Body, 8)

	named := prog.Body[0].(*ast.ExportNamedDeclaration)
	assert.IsType(t, &ast.VariableDeclaration{}, named.Declaration)

	specs := prog.Body[3].(*ast.ExportNamedDeclaration)
	require.Len(t, specs.Specifiers, 2)
	assert.Equal(t, "aa", ast.ModuleExportName(specs.Specifiers[0].Exported))
	assert.Equal(t, "g", ast.ModuleExportName(specs.Specifiers[1].Exported))
	assert.Nil(t, specs.Source)

	all := prog.Body[4].(*ast.ExportAllDeclaration)
	assert.Nil(t, all.Exported)
	nsAll := prog.Body[5].(*ast.ExportAllDeclaration)
	assert.Equal(t, "ns", ast.ModuleExportName(nsAll.Exported))

	reexport := prog.Body[6].(*ast.ExportNamedDeclaration)
	assert.Equal(t, "o", reexport.Source.Value)

	def := prog.Body[7].(*ast.ExportDefaultDeclaration)
	assert.IsType(t, &ast.BinaryExpression{}, def.Declaration)
}

func TestExportDefaultDeclarations(t *testing.T) {
	tests := []struct {
		input string
		want  interface{}
	}{
		{"export default function () {}", &ast.FunctionDeclaration{}},
		{"export default async function named() {}", &ast.FunctionDeclaration{}},
		{"export default class {}", &ast.ClassDeclaration{}},
		{"export default (function () {});", &ast.FunctionExpression{}},
	}
	for _, tt := range tests {
		prog := parse(t, tt.input, moduleConfig)
		def := prog.Body[0].(*ast.ExportDefaultDeclaration)
		assert.IsType(t, tt.want, def.Declaration, tt.input)
	}
}

func TestExportErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"export { missing };", fmt.Sprintf(errors.MsgExportNotDefined, "missing")},
		{"export const a = 1; export { a };", fmt.Sprintf(errors.MsgDuplicateExport, "a")},
		{"export default 1; export default 2;", fmt.Sprintf(errors.MsgDuplicateExport, "default")},
		{`export { "a b" };`, errors.MsgStringExportNoFrom},
		{"import a from 'm'; import a from 'n';", fmt.Sprintf(errors.MsgDuplicateDeclaration, "a")},
	}
	for _, tt := range tests {
		assertError(t, tt.input, moduleConfig, tt.want)
	}

	// exports may precede their declaration
	parse(t, "export { later }; let later = 1;", moduleConfig)
	parse(t, "export { missing };", Config{SourceType: SourceModule, AllowUndeclaredExports: true})
}

func TestModuleItemPlacement(t *testing.T) {
	msgs := parseErrors(t, "import a from 'm';", scriptConfig)
	assert.Equal(t, errors.MsgImportExportOutsideModule, msgs[len(msgs)-1])

	msgs = parseErrors(t, "{ export const a = 1; }", moduleConfig)
	assert.Equal(t, errors.MsgImportExportNotTopLevel, msgs[len(msgs)-1])

	msgs = parseErrors(t, "if (x) import a from 'm';", moduleConfig)
	assert.Equal(t, errors.MsgImportExportNotTopLevel, msgs[len(msgs)-1])
}

func TestModuleCode(t *testing.T) {
	// module code is strict
	assertError(t, "with (a) {}", moduleConfig, errors.MsgWithStrict)
	assertError(t, "var await;", moduleConfig, errors.MsgAwaitAsIdentifier)
	parse(t, "var await;", scriptConfig)

	// top-level await
	e := expr(t, "await fetch(url)", moduleConfig)
	assert.IsType(t, &ast.AwaitExpression{}, e)

	e = expr(t, "import.meta.url", moduleConfig)
	member := e.(*ast.MemberExpression)
	meta := member.Object.(*ast.MetaProperty)
	assert.Equal(t, "import", meta.Meta.Name)
	assertError(t, "import.meta", scriptConfig, errors.MsgImportMetaOutside)
}

func TestDynamicImport(t *testing.T) {
	e := expr(t, "import('./m.js')", scriptConfig)
	imp, ok := e.(*ast.ImportExpression)
	require.True(t, ok, "expression is %T", e)
	assert.Equal(t, "./m.js", imp.Source.(*ast.StringLiteral).Value)
	assert.Nil(t, imp.Options)

	e = expr(t, "import(name, { with: { type: 'json' } })", scriptConfig)
	assert.NotNil(t, e.(*ast.ImportExpression).Options)

	msgs := parseErrors(t, "import()", scriptConfig)
	assert.Equal(t, errors.MsgImportCallArity, msgs[len(msgs)-1])
}
