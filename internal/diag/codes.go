package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedChar         Code = 1004

	// Preprocessor
	PPInfo                    Code = 4000
	PPMissingDirectiveName    Code = 4001
	PPUnknownDirective        Code = 4002
	PPMissingMacroName        Code = 4003
	PPMacroRedefined          Code = 4004
	PPBadMacroParams          Code = 4005
	PPArgCountMismatch        Code = 4006
	PPUnterminatedArgs        Code = 4007
	PPUnterminatedConditional Code = 4008
	PPDanglingConditional     Code = 4009
	PPBadIfExpr               Code = 4010
	PPBadInclude              Code = 4011
	PPIncludeNotFound         Code = 4012
	PPIncludeTooDeep          Code = 4013
	PPBadPaste                Code = 4014
	PPErrorDirective          Code = 4015
	PPWarningDirective        Code = 4016

	// I/O
	IOLoadFileError  Code = 7001
	IOWriteFileError Code = 7002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:                     "lexer note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexUnterminatedChar:         "unterminated character constant",

	PPInfo:                    "preprocessor note",
	PPMissingDirectiveName:    "missing directive name",
	PPUnknownDirective:        "unknown preprocessor directive",
	PPMissingMacroName:        "missing macro name",
	PPMacroRedefined:          "macro redefined",
	PPBadMacroParams:          "malformed macro parameter list",
	PPArgCountMismatch:        "wrong number of macro arguments",
	PPUnterminatedArgs:        "unterminated macro argument list",
	PPUnterminatedConditional: "unterminated conditional directive",
	PPDanglingConditional:     "conditional directive without matching #if",
	PPBadIfExpr:               "invalid #if expression",
	PPBadInclude:              "malformed #include directive",
	PPIncludeNotFound:         "include file not found",
	PPIncludeTooDeep:          "includes nested too deeply",
	PPBadPaste:                "token pasting produced an invalid token",
	PPErrorDirective:          "#error directive",
	PPWarningDirective:        "#warning directive",

	IOLoadFileError:  "failed to load file",
	IOWriteFileError: "failed to write file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("PP%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
