package mini

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenEOF TokenType = "EOF"

	tokenNewline TokenType = "NEWLINE"
	tokenIndent  TokenType = "INDENT"
	tokenDedent  TokenType = "DEDENT"

	tokenIdent   TokenType = "IDENT"
	tokenInt     TokenType = "INT"
	tokenFloat   TokenType = "FLOAT"
	tokenString  TokenType = "STRING"
	tokenBool    TokenType = "BOOL"
	tokenComment TokenType = "COMMENT"

	tokenLParen   TokenType = "("
	tokenRParen   TokenType = ")"
	tokenColon    TokenType = ":"
	tokenComma    TokenType = ","
	tokenAssign   TokenType = "="
	tokenEQ       TokenType = "=="
	tokenNotEQ    TokenType = "!="
	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
	tokenLT       TokenType = "<"
	tokenGT       TokenType = ">"
	tokenLTE      TokenType = "<="
	tokenGTE      TokenType = ">="
	tokenArrow    TokenType = "->"

	tokenIf     TokenType = "IF"
	tokenElse   TokenType = "ELSE"
	tokenDef    TokenType = "DEF"
	tokenReturn TokenType = "RETURN"
	tokenPrint  TokenType = "PRINT"
	tokenAnd    TokenType = "AND"
	tokenOr     TokenType = "OR"
	tokenIs     TokenType = "IS"
	tokenNot    TokenType = "NOT"
	tokenNone   TokenType = "NONE"

	tokenIntType   TokenType = "int"
	tokenFloatType TokenType = "float"
	tokenStrType   TokenType = "str"
	tokenBoolType  TokenType = "bool"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a location in the source text.
type Position struct {
	Line   int
	Column int
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "if":
		return tokenIf
	case "else":
		return tokenElse
	case "def":
		return tokenDef
	case "return":
		return tokenReturn
	case "print":
		return tokenPrint
	case "and":
		return tokenAnd
	case "or":
		return tokenOr
	case "is":
		return tokenIs
	case "not":
		return tokenNot
	case "None":
		return tokenNone
	case "True", "False":
		return tokenBool
	case "int":
		return tokenIntType
	case "float":
		return tokenFloatType
	case "str":
		return tokenStrType
	case "bool":
		return tokenBoolType
	}
	return tokenIdent
}

func isTypeKeyword(tt TokenType) bool {
	switch tt {
	case tokenIntType, tokenFloatType, tokenStrType, tokenBoolType:
		return true
	default:
		return false
	}
}

func tokenLabel(tt TokenType) string {
	switch tt {
	case tokenEOF:
		return "end of input"
	case tokenNewline:
		return "newline"
	case tokenIndent:
		return "indent"
	case tokenDedent:
		return "dedent"
	case tokenIdent:
		return "identifier"
	case tokenInt:
		return "integer"
	case tokenFloat:
		return "float"
	case tokenString:
		return "string"
	case tokenBool:
		return "boolean"
	case tokenComment:
		return "comment"
	case tokenIf:
		return "'if'"
	case tokenElse:
		return "'else'"
	case tokenDef:
		return "'def'"
	case tokenReturn:
		return "'return'"
	case tokenPrint:
		return "'print'"
	case tokenAnd:
		return "'and'"
	case tokenOr:
		return "'or'"
	case tokenIs:
		return "'is'"
	case tokenNot:
		return "'not'"
	case tokenNone:
		return "'None'"
	case tokenIntType, tokenFloatType, tokenStrType, tokenBoolType:
		return "type name '" + string(tt) + "'"
	default:
		return "'" + string(tt) + "'"
	}
}
