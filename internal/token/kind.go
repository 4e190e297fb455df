package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token. Raw lexing leaves keywords as
	// Ident; the preprocessor reclassifies them.
	Ident
	// Comment represents a line or block comment kept as a real token.
	Comment
	// Num represents a preprocessing number (integer or floating).
	Num
	// Str represents a string literal.
	Str
	// CharConst represents a character constant.
	CharConst

	// KwAuto represents the 'auto' keyword.
	KwAuto // auto
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwChar represents the 'char' keyword.
	KwChar // char
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwDouble represents the 'double' keyword.
	KwDouble // double
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwFloat represents the 'float' keyword.
	KwFloat // float
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwGoto represents the 'goto' keyword.
	KwGoto // goto
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwInline represents the 'inline' keyword.
	KwInline // inline
	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwLong represents the 'long' keyword.
	KwLong // long
	// KwRegister represents the 'register' keyword.
	KwRegister // register
	// KwRestrict represents the 'restrict' keyword.
	KwRestrict // restrict
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwShort represents the 'short' keyword.
	KwShort // short
	// KwSigned represents the 'signed' keyword.
	KwSigned // signed
	// KwSizeof represents the 'sizeof' keyword.
	KwSizeof // sizeof
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwTypedef represents the 'typedef' keyword.
	KwTypedef // typedef
	// KwUnion represents the 'union' keyword.
	KwUnion // union
	// KwUnsigned represents the 'unsigned' keyword.
	KwUnsigned // unsigned
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwVolatile represents the 'volatile' keyword.
	KwVolatile // volatile
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// Hash represents the '#' token.
	Hash // #
	// HashHash represents the '##' paste operator.
	HashHash // ##

	// Plus represents the plus operator token.
	Plus // +
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// Minus represents the minus operator token.
	Minus // -
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// Arrow represents the member access operator token.
	Arrow // ->
	// Star represents the star operator token.
	Star // *
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// Slash represents the slash operator token.
	Slash // /
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// Percent represents the percent operator token.
	Percent // %
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// Amp represents the amp operator token.
	Amp // &
	// AmpAmp represents the logical and operator token.
	AmpAmp // &&
	// AmpAssign represents the amp assign operator token.
	AmpAssign // &=
	// Pipe represents the pipe operator token.
	Pipe // |
	// PipePipe represents the logical or operator token.
	PipePipe // ||
	// PipeAssign represents the pipe assign operator token.
	PipeAssign // |=
	// Caret represents the caret operator token.
	Caret // ^
	// CaretAssign represents the caret assign operator token.
	CaretAssign // ^=
	// Tilde represents the bitwise not operator token.
	Tilde // ~
	// Bang represents the logical not operator token.
	Bang // !
	// BangEq represents the not equal operator token.
	BangEq // !=
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// Lt represents the less than operator token.
	Lt // <
	// LtEq represents the less or equal operator token.
	LtEq // <=
	// Shl represents the shift left operator token.
	Shl // <<
	// ShlAssign represents the shift left assign operator token.
	ShlAssign // <<=
	// Gt represents the greater than operator token.
	Gt // >
	// GtEq represents the greater or equal operator token.
	GtEq // >=
	// Shr represents the shift right operator token.
	Shr // >>
	// ShrAssign represents the shift right assign operator token.
	ShrAssign // >>=
	// Question represents the question operator token.
	Question // ?
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Ellipsis represents the '...' token.
	Ellipsis // ...
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
)

var kindNames = map[Kind]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	Comment:       "Comment",
	Num:           "Num",
	Str:           "Str",
	CharConst:     "CharConst",
	KwAuto:        "KwAuto",
	KwBreak:       "KwBreak",
	KwCase:        "KwCase",
	KwChar:        "KwChar",
	KwConst:       "KwConst",
	KwContinue:    "KwContinue",
	KwDefault:     "KwDefault",
	KwDo:          "KwDo",
	KwDouble:      "KwDouble",
	KwElse:        "KwElse",
	KwEnum:        "KwEnum",
	KwExtern:      "KwExtern",
	KwFloat:       "KwFloat",
	KwFor:         "KwFor",
	KwGoto:        "KwGoto",
	KwIf:          "KwIf",
	KwInline:      "KwInline",
	KwInt:         "KwInt",
	KwLong:        "KwLong",
	KwRegister:    "KwRegister",
	KwRestrict:    "KwRestrict",
	KwReturn:      "KwReturn",
	KwShort:       "KwShort",
	KwSigned:      "KwSigned",
	KwSizeof:      "KwSizeof",
	KwStatic:      "KwStatic",
	KwStruct:      "KwStruct",
	KwSwitch:      "KwSwitch",
	KwTypedef:     "KwTypedef",
	KwUnion:       "KwUnion",
	KwUnsigned:    "KwUnsigned",
	KwVoid:        "KwVoid",
	KwVolatile:    "KwVolatile",
	KwWhile:       "KwWhile",
	Hash:          "Hash",
	HashHash:      "HashHash",
	Plus:          "Plus",
	PlusPlus:      "PlusPlus",
	PlusAssign:    "PlusAssign",
	Minus:         "Minus",
	MinusMinus:    "MinusMinus",
	MinusAssign:   "MinusAssign",
	Arrow:         "Arrow",
	Star:          "Star",
	StarAssign:    "StarAssign",
	Slash:         "Slash",
	SlashAssign:   "SlashAssign",
	Percent:       "Percent",
	PercentAssign: "PercentAssign",
	Amp:           "Amp",
	AmpAmp:        "AmpAmp",
	AmpAssign:     "AmpAssign",
	Pipe:          "Pipe",
	PipePipe:      "PipePipe",
	PipeAssign:    "PipeAssign",
	Caret:         "Caret",
	CaretAssign:   "CaretAssign",
	Tilde:         "Tilde",
	Bang:          "Bang",
	BangEq:        "BangEq",
	Assign:        "Assign",
	EqEq:          "EqEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Shl:           "Shl",
	ShlAssign:     "ShlAssign",
	Gt:            "Gt",
	GtEq:          "GtEq",
	Shr:           "Shr",
	ShrAssign:     "ShrAssign",
	Question:      "Question",
	Colon:         "Colon",
	Semicolon:     "Semicolon",
	Comma:         "Comma",
	Dot:           "Dot",
	Ellipsis:      "Ellipsis",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
