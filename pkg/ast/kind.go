package ast

// Kind identifies the concrete type of a node.
type Kind uint16

const (
	KindInvalid Kind = iota
	KindProgram

	// statements
	KindExpressionStatement
	KindBlockStatement
	KindEmptyStatement
	KindDebuggerStatement
	KindWithStatement
	KindReturnStatement
	KindLabeledStatement
	KindBreakStatement
	KindContinueStatement
	KindIfStatement
	KindSwitchStatement
	KindSwitchCase
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindClassDeclaration

	// modules
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindImportAttribute
	KindExportNamedDeclaration
	KindExportSpecifier
	KindExportDefaultDeclaration
	KindExportAllDeclaration

	// expressions
	KindIdentifier
	KindPrivateName
	KindThisExpression
	KindSuper
	KindNullLiteral
	KindBooleanLiteral
	KindNumericLiteral
	KindBigIntLiteral
	KindStringLiteral
	KindRegExpLiteral
	KindTemplateLiteral
	KindTemplateElement
	KindTaggedTemplateExpression
	KindArrayExpression
	KindObjectExpression
	KindProperty
	KindCoverInitializedName
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition
	KindStaticBlock
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindChainExpression
	KindSequenceExpression
	KindYieldExpression
	KindAwaitExpression
	KindSpreadElement
	KindMetaProperty
	KindImportExpression

	// patterns
	KindObjectPattern
	KindPatternProperty
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement

	// JSX
	KindJSXElement
	KindJSXFragment
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXAttribute
	KindJSXSpreadAttribute
	KindJSXIdentifier
	KindJSXNamespacedName
	KindJSXMemberExpression
	KindJSXExpressionContainer
	KindJSXEmptyExpression
	KindJSXSpreadChild
	KindJSXText

	// TypeScript
	KindTSKeywordType
	KindTSThisType
	KindTSTypeReference
	KindTSQualifiedName
	KindTSArrayType
	KindTSIndexedAccessType
	KindTSTupleType
	KindTSNamedTupleMember
	KindTSOptionalType
	KindTSRestType
	KindTSUnionType
	KindTSIntersectionType
	KindTSConditionalType
	KindTSInferType
	KindTSFunctionType
	KindTSConstructorType
	KindTSTypeLiteral
	KindTSPropertySignature
	KindTSMethodSignature
	KindTSCallSignatureDeclaration
	KindTSConstructSignatureDeclaration
	KindTSIndexSignature
	KindTSTypeOperator
	KindTSTypeQuery
	KindTSLiteralType
	KindTSTemplateLiteralType
	KindTSMappedType
	KindTSTypePredicate
	KindTSTypeParameter
	KindTSExpressionWithTypeArguments
	KindTSTypeAliasDeclaration
	KindTSInterfaceDeclaration
	KindTSInterfaceBody
	KindTSEnumDeclaration
	KindTSEnumMember
	KindTSModuleDeclaration
	KindTSModuleBlock
	KindTSDeclareFunction
	KindTSAsExpression
	KindTSSatisfiesExpression
	KindTSNonNullExpression
	KindTSTypeAssertion
	KindTSInstantiationExpression
	KindTSParameterProperty
	KindTSExportAssignment
	KindTSImportEqualsDeclaration
	KindTSExternalModuleReference

	kindCount
)

var kindNames = [...]string{
	KindInvalid: "Invalid",
	KindProgram: "Program",

	KindExpressionStatement: "ExpressionStatement",
	KindBlockStatement:      "BlockStatement",
	KindEmptyStatement:      "EmptyStatement",
	KindDebuggerStatement:   "DebuggerStatement",
	KindWithStatement:       "WithStatement",
	KindReturnStatement:     "ReturnStatement",
	KindLabeledStatement:    "LabeledStatement",
	KindBreakStatement:      "BreakStatement",
	KindContinueStatement:   "ContinueStatement",
	KindIfStatement:         "IfStatement",
	KindSwitchStatement:     "SwitchStatement",
	KindSwitchCase:          "SwitchCase",
	KindThrowStatement:      "ThrowStatement",
	KindTryStatement:        "TryStatement",
	KindCatchClause:         "CatchClause",
	KindWhileStatement:      "WhileStatement",
	KindDoWhileStatement:    "DoWhileStatement",
	KindForStatement:        "ForStatement",
	KindForInStatement:      "ForInStatement",
	KindForOfStatement:      "ForOfStatement",
	KindVariableDeclaration: "VariableDeclaration",
	KindVariableDeclarator:  "VariableDeclarator",
	KindFunctionDeclaration: "FunctionDeclaration",
	KindClassDeclaration:    "ClassDeclaration",

	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindImportDefaultSpecifier:   "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier: "ImportNamespaceSpecifier",
	KindImportAttribute:          "ImportAttribute",
	KindExportNamedDeclaration:   "ExportNamedDeclaration",
	KindExportSpecifier:          "ExportSpecifier",
	KindExportDefaultDeclaration: "ExportDefaultDeclaration",
	KindExportAllDeclaration:     "ExportAllDeclaration",

	KindIdentifier:               "Identifier",
	KindPrivateName:              "PrivateName",
	KindThisExpression:           "ThisExpression",
	KindSuper:                    "Super",
	KindNullLiteral:              "NullLiteral",
	KindBooleanLiteral:           "BooleanLiteral",
	KindNumericLiteral:           "NumericLiteral",
	KindBigIntLiteral:            "BigIntLiteral",
	KindStringLiteral:            "StringLiteral",
	KindRegExpLiteral:            "RegExpLiteral",
	KindTemplateLiteral:          "TemplateLiteral",
	KindTemplateElement:          "TemplateElement",
	KindTaggedTemplateExpression: "TaggedTemplateExpression",
	KindArrayExpression:          "ArrayExpression",
	KindObjectExpression:         "ObjectExpression",
	KindProperty:                 "Property",
	KindCoverInitializedName:     "CoverInitializedName",
	KindFunctionExpression:       "FunctionExpression",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindClassExpression:          "ClassExpression",
	KindClassBody:                "ClassBody",
	KindMethodDefinition:         "MethodDefinition",
	KindPropertyDefinition:       "PropertyDefinition",
	KindStaticBlock:              "StaticBlock",
	KindUnaryExpression:          "UnaryExpression",
	KindUpdateExpression:         "UpdateExpression",
	KindBinaryExpression:         "BinaryExpression",
	KindLogicalExpression:        "LogicalExpression",
	KindAssignmentExpression:     "AssignmentExpression",
	KindConditionalExpression:    "ConditionalExpression",
	KindCallExpression:           "CallExpression",
	KindNewExpression:            "NewExpression",
	KindMemberExpression:         "MemberExpression",
	KindChainExpression:          "ChainExpression",
	KindSequenceExpression:       "SequenceExpression",
	KindYieldExpression:          "YieldExpression",
	KindAwaitExpression:          "AwaitExpression",
	KindSpreadElement:            "SpreadElement",
	KindMetaProperty:             "MetaProperty",
	KindImportExpression:         "ImportExpression",

	KindObjectPattern:     "ObjectPattern",
	KindPatternProperty:   "PatternProperty",
	KindArrayPattern:      "ArrayPattern",
	KindAssignmentPattern: "AssignmentPattern",
	KindRestElement:       "RestElement",

	KindJSXElement:             "JSXElement",
	KindJSXFragment:            "JSXFragment",
	KindJSXOpeningElement:      "JSXOpeningElement",
	KindJSXClosingElement:      "JSXClosingElement",
	KindJSXAttribute:           "JSXAttribute",
	KindJSXSpreadAttribute:     "JSXSpreadAttribute",
	KindJSXIdentifier:          "JSXIdentifier",
	KindJSXNamespacedName:      "JSXNamespacedName",
	KindJSXMemberExpression:    "JSXMemberExpression",
	KindJSXExpressionContainer: "JSXExpressionContainer",
	KindJSXEmptyExpression:     "JSXEmptyExpression",
	KindJSXSpreadChild:         "JSXSpreadChild",
	KindJSXText:                "JSXText",

	KindTSKeywordType:                   "TSKeywordType",
	KindTSThisType:                      "TSThisType",
	KindTSTypeReference:                 "TSTypeReference",
	KindTSQualifiedName:                 "TSQualifiedName",
	KindTSArrayType:                     "TSArrayType",
	KindTSIndexedAccessType:             "TSIndexedAccessType",
	KindTSTupleType:                     "TSTupleType",
	KindTSNamedTupleMember:              "TSNamedTupleMember",
	KindTSOptionalType:                  "TSOptionalType",
	KindTSRestType:                      "TSRestType",
	KindTSUnionType:                     "TSUnionType",
	KindTSIntersectionType:              "TSIntersectionType",
	KindTSConditionalType:               "TSConditionalType",
	KindTSInferType:                     "TSInferType",
	KindTSFunctionType:                  "TSFunctionType",
	KindTSConstructorType:               "TSConstructorType",
	KindTSTypeLiteral:                   "TSTypeLiteral",
	KindTSPropertySignature:             "TSPropertySignature",
	KindTSMethodSignature:               "TSMethodSignature",
	KindTSCallSignatureDeclaration:      "TSCallSignatureDeclaration",
	KindTSConstructSignatureDeclaration: "TSConstructSignatureDeclaration",
	KindTSIndexSignature:                "TSIndexSignature",
	KindTSTypeOperator:                  "TSTypeOperator",
	KindTSTypeQuery:                     "TSTypeQuery",
	KindTSLiteralType:                   "TSLiteralType",
	KindTSTemplateLiteralType:           "TSTemplateLiteralType",
	KindTSMappedType:                    "TSMappedType",
	KindTSTypePredicate:                 "TSTypePredicate",
	KindTSTypeParameter:                 "TSTypeParameter",
	KindTSExpressionWithTypeArguments:   "TSExpressionWithTypeArguments",
	KindTSTypeAliasDeclaration:          "TSTypeAliasDeclaration",
	KindTSInterfaceDeclaration:          "TSInterfaceDeclaration",
	KindTSInterfaceBody:                 "TSInterfaceBody",
	KindTSEnumDeclaration:               "TSEnumDeclaration",
	KindTSEnumMember:                    "TSEnumMember",
	KindTSModuleDeclaration:             "TSModuleDeclaration",
	KindTSModuleBlock:                   "TSModuleBlock",
	KindTSDeclareFunction:               "TSDeclareFunction",
	KindTSAsExpression:                  "TSAsExpression",
	KindTSSatisfiesExpression:           "TSSatisfiesExpression",
	KindTSNonNullExpression:             "TSNonNullExpression",
	KindTSTypeAssertion:                 "TSTypeAssertion",
	KindTSInstantiationExpression:       "TSInstantiationExpression",
	KindTSParameterProperty:             "TSParameterProperty",
	KindTSExportAssignment:              "TSExportAssignment",
	KindTSImportEqualsDeclaration:       "TSImportEqualsDeclaration",
	KindTSExternalModuleReference:       "TSExternalModuleReference",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Invalid"
}
