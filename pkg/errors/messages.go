package errors

// Diagnostic texts shared by the lexer and parser. Messages taking
// arguments are fmt formats.
const (
	// lexical
	MsgUnexpectedChar          = "Unexpected character '%s'"
	MsgUnterminatedString      = "Unterminated string constant"
	MsgUnterminatedTemplate    = "Unterminated template"
	MsgUnterminatedComment     = "Unterminated comment"
	MsgUnterminatedRegExp      = "Unterminated regular expression"
	MsgInvalidRegExpFlags      = "Invalid regular expression flags"
	MsgInvalidRegExp           = "Invalid regular expression: /%s/: %s"
	MsgInvalidHexEscape        = "Invalid hexadecimal escape sequence"
	MsgInvalidUnicodeEscape    = "Invalid Unicode escape sequence"
	MsgInvalidCodePoint        = "Code point out of bounds"
	MsgEscapedKeyword          = "Keyword must not contain escaped characters"
	MsgNumericSeparator        = "A numeric separator is only allowed between two digits"
	MsgNumericSeparatorLeading = "Numeric separator can not be used after leading 0"
	MsgIdentAfterNumber        = "Identifier directly after number"
	MsgExpectedNumberInRadix   = "Expected number in radix %d"
	MsgInvalidBigInt           = "Invalid BigIntLiteral"
	MsgLegacyOctalStrict       = "Legacy octal literals are not allowed in strict mode"
	MsgOctalEscapeStrict       = "Octal escape sequences are not allowed in strict mode"
	MsgOctalEscapeTemplate     = "Octal escape sequences are not allowed in template strings"

	// structural
	MsgUnexpectedToken      = "Unexpected token"
	MsgUnexpectedTokenValue = "Unexpected token '%s'"
	MsgExpectedToken        = "expected next token to be %s, got %s instead"
	MsgMissingSemicolon     = "Missing semicolon"
	MsgUnexpectedEOF        = "Unexpected end of input"

	// identifiers and strict mode
	MsgUnexpectedReserved     = "Unexpected reserved word"
	MsgUnexpectedStrictWord   = "Unexpected keyword or identifier in strict mode"
	MsgStrictEvalArguments    = "Assigning to 'eval' or 'arguments' is not allowed in strict mode"
	MsgYieldAsIdentifier      = "'yield' is a reserved word within generator functions and strict mode"
	MsgAwaitAsIdentifier      = "'await' is not a valid identifier inside an async function or module"
	MsgAwaitInAsyncParams     = "Can not use 'await' as identifier inside an async function"
	MsgLetInLexicalBinding    = "'let' is not allowed to be used as a name in 'let' or 'const' declarations"
	MsgArgumentsInField       = "'arguments' is not allowed in class field initializer or static initialization block"
	MsgDeleteIdentifierStrict = "Deleting local variable in strict mode"
	MsgWithStrict             = "'with' in strict mode"
	MsgUseStrictNonSimple     = "Illegal 'use strict' directive in function with non-simple parameter list"

	// bindings
	MsgDuplicateDeclaration   = "Identifier '%s' has already been declared"
	MsgDuplicateParam         = "Duplicate parameter name not allowed in this context"
	MsgDuplicateExport        = "Duplicate export of '%s'"
	MsgExportNotDefined       = "Export '%s' is not defined"
	MsgDuplicatePrivateName   = "Identifier '#%s' has already been declared"
	MsgUndefinedPrivateName   = "Private field '#%s' must be declared in an enclosing class"
	MsgDuplicateConstructor   = "A class may only have one constructor"
	MsgDuplicateLabel         = "Label '%s' has already been declared"
	MsgUndefinedLabel         = "Undefined label '%s'"
	MsgConstWithoutInit       = "Missing initializer in const declaration"
	MsgDestructuringNoInit    = "Missing initializer in destructuring declaration"
	MsgLexicalInSingleStmt    = "Lexical declaration cannot appear in a single-statement context"
	MsgFunctionInSingleStmt   = "In strict mode code, functions can only be declared at top level or inside a block"
	MsgAsyncOrGenInSingleStmt = "Async functions and generators can only be declared at the top level or inside a block"
	MsgClassInSingleStmt      = "Class declaration can not appear in a single-statement context"

	// control flow
	MsgIllegalReturn        = "'return' outside of function"
	MsgIllegalBreak         = "Illegal break statement"
	MsgIllegalContinue      = "Illegal continue statement: no surrounding iteration statement"
	MsgIllegalContinueTo    = "Illegal continue statement: '%s' does not denote an iteration statement"
	MsgNewlineAfterThrow    = "Illegal newline after throw"
	MsgMultipleDefaults     = "More than one default clause in switch statement"
	MsgMissingCatchFinally  = "Missing catch or finally after try"
	MsgForInOfInit          = "for-%s loop variable declaration may not have an initializer"
	MsgForInOfMultiple      = "Invalid left-hand side in for-%s loop: Must have a single binding"
	MsgForOfLet             = "The left-hand side of a for-of loop may not be 'let'"
	MsgForOfAsync           = "The left-hand side of a for-of loop may not be 'async'"
	MsgForAwaitNotOf        = "for await can only be used with for-of loops"
	MsgForAwaitOutsideAsync = "for await is only valid in async functions and the top level bodies of modules"

	// expressions
	MsgInvalidAssignTarget = "Invalid left-hand side in assignment"
	MsgInvalidUpdateTarget = "Invalid left-hand side expression in %s operation"
	MsgInvalidForTarget    = "Invalid left-hand side in for-loop"
	MsgBindingMember       = "Binding member expression"
	MsgInvalidParenPattern = "Invalid parenthesized assignment pattern"
	MsgRestNotLast         = "Rest element must be last element"
	MsgRestTrailingComma   = "Unexpected trailing comma after rest element"
	MsgRestInit            = "Rest elements cannot have a default value"
	MsgObjectRestBinding   = "Object rest element must be an identifier in binding patterns"
	MsgShorthandInit       = "Invalid shorthand property initializer"
	MsgExponentUnary       = "Illegal expression. Wrap left hand side or entire exponentiation in parentheses"
	MsgNullishMixed        = "Nullish coalescing operator(??) requires parens when mixing with logical operators"
	MsgPrivateNameAlone    = "Private names are only allowed in property accesses (`obj.#%s`) or in `in` expressions (`#%s in obj`)"
	MsgTaggedTemplateChain = "Tagged template cannot be used in optional chain"
	MsgOptionalChainNew    = "Constructors in/after an Optional Chain are not allowed"
	MsgOptionalChainAssign = "Invalid left-hand side in assignment: optional chain"
	MsgNewlineBeforeArrow  = "No line break is allowed before '=>'"
	MsgEmptyParens         = "Unexpected token ')': empty parenthesized expression"
	MsgSpreadInParens      = "Unexpected spread element in parenthesized expression"
	MsgTrailingCommaParens = "Unexpected trailing comma in parenthesized expression"
	MsgLeadingComma        = "Unexpected leading comma"
	MsgYieldInParams       = "Yield expression not allowed in formal parameter"
	MsgAwaitInParams       = "Await expression not allowed in formal parameter"
	MsgSuperCall           = "'super' keyword unexpected here: super() call outside constructor of a subclass"
	MsgSuperProperty       = "'super' is only allowed in object methods and classes"
	MsgSuperAlone          = "'super' can only be used with function calls or in property accesses"
	MsgNewTargetOutside    = "new.target can only be used in functions or class properties"
	MsgImportMetaOutside   = "import.meta may appear only with 'sourceType: \"module\"'"
	MsgInvalidMetaProperty = "The only valid meta property for %s is %s.%s"
	MsgImportCallArity     = "import() requires exactly one or two arguments"
	MsgImportCallSpread    = "... is not allowed in import()"
	MsgInvalidOctalStrict  = "Octal literal in strict mode"
	MsgTemplateEscape      = "Invalid escape sequence in template"
	MsgGetterParams        = "A 'get' accessor must not have any formal parameters"
	MsgSetterParams        = "A 'set' accessor must have exactly one formal parameter"
	MsgSetterRest          = "A 'set' accessor function argument must not be a rest parameter"
	MsgRegExpAsCallee      = "Invalid regular expression"
	MsgDuplicateProto      = "Redefinition of __proto__ property"

	// classes
	MsgConstructorKind        = "Class constructor may not be a%s"
	MsgStaticPrototype        = "Classes may not have static property named prototype"
	MsgFieldConstructor       = "Classes may not have a field named 'constructor'"
	MsgPrivateConstructor     = "Classes may not have a private field named '#constructor'"
	MsgPrivateDelete          = "Deleting a private field is not allowed"
	MsgOptionalChainPrivateIn = "Private names can only be used as the left side of an `in` expression"

	// modules
	MsgImportExportOutsideModule = "'import' and 'export' may appear only with 'sourceType: module'"
	MsgImportExportNotTopLevel   = "'import' and 'export' may only appear at the top level"
	MsgStringExportNoFrom        = "A string literal cannot be used as an exported binding without `from`"
	MsgDuplicateImportAttribute  = "Duplicate key '%s' is not allowed in import attributes"
	MsgImportAttributesDisabled  = "Import attributes require the 'importAttributes' plugin"

	// JSX
	MsgJSXUnclosed       = "Expected corresponding JSX closing tag for <%s>"
	MsgJSXEmptyAttribute = "JSX attributes must only be assigned a non-empty expression"
	MsgJSXAdjacent       = "Adjacent JSX elements must be wrapped in an enclosing tag"
	MsgJSXUnterminated   = "Unterminated JSX contents"

	// TypeScript
	MsgTSTypeExpected         = "Type expected"
	MsgTSOptionalAfterRest    = "A rest element cannot be optional"
	MsgTSAccessibilityHere    = "'%s' modifier cannot appear here"
	MsgTSAbstractWithBody     = "Method '%s' cannot have an implementation because it is marked abstract"
	MsgTSParamPropertyPattern = "A parameter property may not be declared using a binding pattern"
	MsgTSDuplicateModifier    = "Duplicate modifier '%s'"
	MsgTSEmptyTypeParameters  = "Type parameter list cannot be empty"
	MsgTSEmptyTypeArguments   = "Type argument list cannot be empty"
	MsgTSAmbientBody          = "An implementation cannot be declared in ambient contexts"
	MsgTSIndexSignatureParams = "An index signature must have exactly one parameter"
	MsgTSEnumMemberName       = "An enum member name must be followed by ',', '=' or '}'"
	MsgTSDeclareHere          = "'declare' modifier cannot be used in an already ambient context"
)
