package lexer

// Tokenize drains the lexer without a parser. Whether a '/' starts a
// regular expression is predicted from the preceding tokens with a small
// brace/paren context stack, which is accurate for everything except a
// few contrived inputs (keywords used as property names, for one).
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	t := newRegexPredictor()
	var toks []Token
	for {
		typ := l.Kind()
		if (typ == SLASH || typ == SLASH_ASSIGN) && t.exprAllowed {
			if _, _, err := l.ReadRegex(); err != nil {
				return toks, err
			}
			typ = l.Kind()
		}
		if typ == ILLEGAL {
			return toks, l.Err()
		}
		tok := l.Token()
		toks = append(toks, tok)
		if typ == EOF {
			return toks, nil
		}
		t.update(tok)
		l.Next()
	}
}

type tokContext struct {
	token  string
	isExpr bool
}

var (
	ctxBraceStat = &tokContext{"{", false}
	ctxBraceExpr = &tokContext{"{", true}
	ctxTemplate  = &tokContext{"${", false}
	ctxParenStat = &tokContext{"(", false}
	ctxParenExpr = &tokContext{"(", true}
	ctxFuncStat  = &tokContext{"function", false}
	ctxFuncExpr  = &tokContext{"function", true}
)

// tokens after which an expression, and so a regular expression, may start
var beforeExpr = map[TokenType]bool{
	LBRACKET: true, LBRACE: true, LPAREN: true, COMMA: true, SEMICOLON: true,
	COLON: true, QUESTION: true, ARROW: true, SPREAD: true, TEMPLATE_HEAD: true,
	TEMPLATE_MIDDLE: true, BANG: true, BITWISE_NOT: true, PLUS: true, MINUS: true,

	ASSIGN: true, PLUS_ASSIGN: true, MINUS_ASSIGN: true, ASTERISK_ASSIGN: true,
	SLASH_ASSIGN: true, REMAINDER_ASSIGN: true, EXPONENT_ASSIGN: true,
	LEFT_SHIFT_ASSIGN: true, RIGHT_SHIFT_ASSIGN: true, UNSIGNED_RIGHT_SHIFT_ASSIGN: true,
	BITWISE_AND_ASSIGN: true, BITWISE_OR_ASSIGN: true, BITWISE_XOR_ASSIGN: true,
	LOGICAL_AND_ASSIGN: true, LOGICAL_OR_ASSIGN: true, COALESCE_ASSIGN: true,

	LOGICAL_OR: true, LOGICAL_AND: true, COALESCE: true, PIPE: true, BITWISE_XOR: true,
	BITWISE_AND: true, EQ: true, NOT_EQ: true, STRICT_EQ: true, STRICT_NOT_EQ: true,
	LT: true, GT: true, LE: true, GE: true, LEFT_SHIFT: true, RIGHT_SHIFT: true,
	UNSIGNED_RIGHT_SHIFT: true, ASTERISK: true, SLASH: true, REMAINDER: true, EXPONENT: true,

	CASE: true, DEFAULT: true, DO: true, ELSE: true, RETURN: true, THROW: true,
	NEW: true, IN: true, INSTANCEOF: true, TYPEOF: true, VOID: true, DELETE: true,
	EXTENDS: true, YIELD: true, AWAIT: true,
}

type regexPredictor struct {
	stack       []*tokContext
	exprAllowed bool
	prev        TokenType
}

func newRegexPredictor() *regexPredictor {
	return &regexPredictor{
		stack:       []*tokContext{ctxBraceStat},
		exprAllowed: true,
		prev:        EOF,
	}
}

func (t *regexPredictor) cur() *tokContext { return t.stack[len(t.stack)-1] }

func (t *regexPredictor) pop() *tokContext {
	out := t.cur()
	if len(t.stack) > 1 {
		t.stack = t.stack[:len(t.stack)-1]
	}
	return out
}

func (t *regexPredictor) push(c *tokContext) { t.stack = append(t.stack, c) }

func (t *regexPredictor) update(tok Token) {
	prev := t.prev
	switch tok.Type {
	case RPAREN, RBRACE:
		if len(t.stack) == 1 {
			t.exprAllowed = true
			break
		}
		out := t.pop()
		if out == ctxBraceStat && t.cur().token == "function" {
			out = t.pop()
		}
		t.exprAllowed = !out.isExpr
	case LBRACE:
		if t.braceIsBlock(prev, tok.NewlineBefore) {
			t.push(ctxBraceStat)
		} else {
			t.push(ctxBraceExpr)
		}
		t.exprAllowed = true
	case TEMPLATE_HEAD:
		t.push(ctxTemplate)
		t.exprAllowed = true
	case TEMPLATE_MIDDLE:
		t.exprAllowed = true
	case TEMPLATE_TAIL:
		t.pop()
		t.exprAllowed = false
	case LPAREN:
		if prev == IF || prev == FOR || prev == WITH || prev == WHILE {
			t.push(ctxParenStat)
		} else {
			t.push(ctxParenExpr)
		}
		t.exprAllowed = true
	case INC, DEC:
	case FUNCTION, CLASS:
		if beforeExpr[prev] && prev != ELSE &&
			!(prev == SEMICOLON && t.cur() != ctxParenStat) &&
			!(prev == RETURN && tok.NewlineBefore) &&
			!((prev == COLON || prev == LBRACE) && t.cur() == ctxBraceStat) {
			t.push(ctxFuncExpr)
		} else {
			t.push(ctxFuncStat)
		}
		t.exprAllowed = false
	default:
		t.exprAllowed = beforeExpr[tok.Type]
	}
	t.prev = tok.Type
}

// braceIsBlock decides whether a '{' opens a block or an object literal.
func (t *regexPredictor) braceIsBlock(prev TokenType, newline bool) bool {
	parent := t.cur()
	if parent == ctxFuncExpr || parent == ctxFuncStat {
		return true
	}
	if prev == COLON && (parent == ctxBraceStat || parent == ctxBraceExpr) {
		return !parent.isExpr
	}
	if prev == RETURN || (prev == IDENT && t.exprAllowed) {
		return newline
	}
	switch prev {
	case ELSE, SEMICOLON, EOF, RPAREN, ARROW:
		return true
	case LBRACE:
		return parent == ctxBraceStat
	case VAR, CONST, LET, IDENT:
		return false
	}
	return !t.exprAllowed
}
