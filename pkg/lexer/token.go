package lexer

import "esfront/pkg/source"

// TokenType represents the type of a token.
type TokenType string

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Literal string // The raw source text of the token
	// Value is the decoded form: identifier names with escapes resolved,
	// cooked string and template contents, private names without '#'.
	Value string
	Start source.Position
	End   source.Position
	// NewlineBefore is set when a line terminator separates this token
	// from the previous one.
	NewlineBefore bool
}

// --- Token Types ---
const (
	// Special
	ILLEGAL TokenType = "ILLEGAL" // Produced once a fatal lexical error is latched
	EOF     TokenType = "EOF"

	// Identifiers + Literals
	IDENT            TokenType = "IDENT"
	PRIVATE_NAME     TokenType = "PRIVATE_NAME" // #field
	NUMBER           TokenType = "NUMBER"
	BIGINT           TokenType = "BIGINT"
	STRING           TokenType = "STRING"
	REGEX_LITERAL    TokenType = "REGEX_LITERAL"
	TEMPLATE_STRING  TokenType = "TEMPLATE_STRING" // `no substitutions`
	TEMPLATE_HEAD    TokenType = "TEMPLATE_HEAD"   // `text${
	TEMPLATE_MIDDLE  TokenType = "TEMPLATE_MIDDLE" // }text${
	TEMPLATE_TAIL    TokenType = "TEMPLATE_TAIL"   // }text`
	JSX_TEXT         TokenType = "JSX_TEXT"
	JSX_CLOSE_START  TokenType = "</"
	JSX_SELF_CLOSING TokenType = "/>"

	// Operators
	ASSIGN     TokenType = "="
	PLUS       TokenType = "+"
	MINUS      TokenType = "-"
	BANG       TokenType = "!"
	ASTERISK   TokenType = "*"
	SLASH      TokenType = "/"
	REMAINDER  TokenType = "%"
	EXPONENT   TokenType = "**"
	LT         TokenType = "<"
	GT         TokenType = ">"
	EQ         TokenType = "=="
	NOT_EQ     TokenType = "!="
	LE         TokenType = "<="
	GE         TokenType = ">="
	DOT        TokenType = "."
	SPREAD     TokenType = "..."
	QUESTION   TokenType = "?"
	OPTIONAL   TokenType = "?."
	INC        TokenType = "++"
	DEC        TokenType = "--"

	STRICT_EQ     TokenType = "==="
	STRICT_NOT_EQ TokenType = "!=="

	LOGICAL_AND TokenType = "&&"
	LOGICAL_OR  TokenType = "||"
	COALESCE    TokenType = "??"

	BITWISE_NOT          TokenType = "~"
	BITWISE_AND          TokenType = "&"
	PIPE                 TokenType = "|"
	BITWISE_XOR          TokenType = "^"
	LEFT_SHIFT           TokenType = "<<"
	RIGHT_SHIFT          TokenType = ">>"
	UNSIGNED_RIGHT_SHIFT TokenType = ">>>"

	// Compound Assignment
	PLUS_ASSIGN                 TokenType = "+="
	MINUS_ASSIGN                TokenType = "-="
	ASTERISK_ASSIGN             TokenType = "*="
	SLASH_ASSIGN                TokenType = "/="
	REMAINDER_ASSIGN            TokenType = "%="
	EXPONENT_ASSIGN             TokenType = "**="
	LEFT_SHIFT_ASSIGN           TokenType = "<<="
	RIGHT_SHIFT_ASSIGN          TokenType = ">>="
	UNSIGNED_RIGHT_SHIFT_ASSIGN TokenType = ">>>="
	BITWISE_AND_ASSIGN          TokenType = "&="
	BITWISE_OR_ASSIGN           TokenType = "|="
	BITWISE_XOR_ASSIGN          TokenType = "^="
	LOGICAL_AND_ASSIGN          TokenType = "&&="
	LOGICAL_OR_ASSIGN           TokenType = "||="
	COALESCE_ASSIGN             TokenType = "??="

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"
	ARROW     TokenType = "=>"
	AT        TokenType = "@"

	// Keywords
	AWAIT      TokenType = "AWAIT"
	BREAK      TokenType = "BREAK"
	CASE       TokenType = "CASE"
	CATCH      TokenType = "CATCH"
	CLASS      TokenType = "CLASS"
	CONST      TokenType = "CONST"
	CONTINUE   TokenType = "CONTINUE"
	DEBUGGER   TokenType = "DEBUGGER"
	DEFAULT    TokenType = "DEFAULT"
	DELETE     TokenType = "DELETE"
	DO         TokenType = "DO"
	ELSE       TokenType = "ELSE"
	ENUM       TokenType = "ENUM"
	EXPORT     TokenType = "EXPORT"
	EXTENDS    TokenType = "EXTENDS"
	FALSE      TokenType = "FALSE"
	FINALLY    TokenType = "FINALLY"
	FOR        TokenType = "FOR"
	FUNCTION   TokenType = "FUNCTION"
	IF         TokenType = "IF"
	IMPORT     TokenType = "IMPORT"
	IN         TokenType = "IN"
	INSTANCEOF TokenType = "INSTANCEOF"
	LET        TokenType = "LET"
	NEW        TokenType = "NEW"
	NULL       TokenType = "NULL"
	RETURN     TokenType = "RETURN"
	SUPER      TokenType = "SUPER"
	SWITCH     TokenType = "SWITCH"
	THIS       TokenType = "THIS"
	THROW      TokenType = "THROW"
	TRUE       TokenType = "TRUE"
	TRY        TokenType = "TRY"
	TYPEOF     TokenType = "TYPEOF"
	VAR        TokenType = "VAR"
	VOID       TokenType = "VOID"
	WHILE      TokenType = "WHILE"
	WITH       TokenType = "WITH"
	YIELD      TokenType = "YIELD"
)

var keywords = map[string]TokenType{
	"await":      AWAIT,
	"break":      BREAK,
	"case":       CASE,
	"catch":      CATCH,
	"class":      CLASS,
	"const":      CONST,
	"continue":   CONTINUE,
	"debugger":   DEBUGGER,
	"default":    DEFAULT,
	"delete":     DELETE,
	"do":         DO,
	"else":       ELSE,
	"enum":       ENUM,
	"export":     EXPORT,
	"extends":    EXTENDS,
	"false":      FALSE,
	"finally":    FINALLY,
	"for":        FOR,
	"function":   FUNCTION,
	"if":         IF,
	"import":     IMPORT,
	"in":         IN,
	"instanceof": INSTANCEOF,
	"let":        LET,
	"new":        NEW,
	"null":       NULL,
	"return":     RETURN,
	"super":      SUPER,
	"switch":     SWITCH,
	"this":       THIS,
	"throw":      THROW,
	"true":       TRUE,
	"try":        TRY,
	"typeof":     TYPEOF,
	"var":        VAR,
	"void":       VOID,
	"while":      WHILE,
	"with":       WITH,
	"yield":      YIELD,
}

// contextual keywords that stay usable as identifiers when written with
// unicode escapes
var softKeywords = map[TokenType]bool{
	LET:   true,
	YIELD: true,
	AWAIT: true,
}

// LookupIdent checks the keywords table for an identifier.
func LookupIdent(ident string) TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return IDENT
}

var keywordNames = func() map[TokenType]string {
	names := make(map[TokenType]string, len(keywords))
	for k, v := range keywords {
		names[v] = k
	}
	return names
}()

// IsKeyword reports whether t is a reserved or contextual keyword token.
func IsKeyword(t TokenType) bool {
	_, ok := keywordNames[t]
	return ok
}

// KeywordName returns the source spelling of a keyword token type.
func KeywordName(t TokenType) string {
	return keywordNames[t]
}

// IsIdentifierName reports whether a token of type t can be used where
// the grammar accepts any IdentifierName, such as after '.'.
func IsIdentifierName(t TokenType) bool {
	return t == IDENT || IsKeyword(t)
}

// IsAssignOp reports whether t is '=' or a compound assignment operator.
func IsAssignOp(t TokenType) bool {
	switch t {
	case ASSIGN, PLUS_ASSIGN, MINUS_ASSIGN, ASTERISK_ASSIGN, SLASH_ASSIGN,
		REMAINDER_ASSIGN, EXPONENT_ASSIGN, LEFT_SHIFT_ASSIGN, RIGHT_SHIFT_ASSIGN,
		UNSIGNED_RIGHT_SHIFT_ASSIGN, BITWISE_AND_ASSIGN, BITWISE_OR_ASSIGN,
		BITWISE_XOR_ASSIGN, LOGICAL_AND_ASSIGN, LOGICAL_OR_ASSIGN, COALESCE_ASSIGN:
		return true
	}
	return false
}

// IsTemplate reports whether t is one of the template literal pieces.
func IsTemplate(t TokenType) bool {
	switch t {
	case TEMPLATE_STRING, TEMPLATE_HEAD, TEMPLATE_MIDDLE, TEMPLATE_TAIL:
		return true
	}
	return false
}
