package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexUnterminatedHeredoc Code = 1004
	LexUnbalancedBracket   Code = 1005

	// Array declaration
	ArrInfo                          Code = 2000
	ArrFoundLongArray                Code = 2001
	ArrSpaceInEmptyArray             Code = 2002
	ArrCommaAfterLast                Code = 2003
	ArrNoSpaceBeforeDoubleArrow      Code = 2004
	ArrSpaceBeforeDoubleArrow        Code = 2005
	ArrNoSpaceAfterDoubleArrow       Code = 2006
	ArrSpaceAfterDoubleArrow         Code = 2007
	ArrSingleLineNotAllowed          Code = 2008
	ArrNoSpaceAfterComma             Code = 2009
	ArrSpaceAfterComma               Code = 2010
	ArrSpaceBeforeComma              Code = 2011
	ArrShortArrayOpenWrongLine       Code = 2012
	ArrCloseBracketAfterArrayBracket Code = 2013
	ArrCloseArrayBraceNewLine        Code = 2014
	ArrCloseArrayBraceNotAligned     Code = 2015
	ArrNoKeySpecified                Code = 2016
	ArrKeySpecified                  Code = 2017
	ArrNoCommaAfterLast              Code = 2018
	ArrFirstValueNoNewline           Code = 2019
	ArrValueNoNewline                Code = 2020
	ArrValueNotAligned               Code = 2021
	ArrFirstIndexNoNewline           Code = 2022
	ArrIndexNoNewline                Code = 2023
	ArrKeyNotAligned                 Code = 2024
	ArrDoubleArrowNotAligned         Code = 2025
	ArrNoComma                       Code = 2026
	ArrEmptyLine                     Code = 2027

	// I/O
	IOInfo           Code = 4000
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Fix runtime
	FixInfo          Code = 5000
	FixNoConvergence Code = 5001
)

type codeInfo struct {
	name     string
	template string
}

var codeInfos = map[Code]codeInfo{
	UnknownCode:            {"Unknown", "Unknown error"},
	LexInfo:                {"LexInfo", "Lexical information"},
	LexUnknownChar:         {"UnknownChar", "unknown character %q"},
	LexUnterminatedString:  {"UnterminatedString", "unterminated string literal"},
	LexUnterminatedComment: {"UnterminatedComment", "unterminated block comment"},
	LexUnterminatedHeredoc: {"UnterminatedHeredoc", "unterminated heredoc, expected closing %q"},
	LexUnbalancedBracket:   {"UnbalancedBracket", "unbalanced %q"},

	ArrInfo:                          {"ArrayInfo", "Array declaration information"},
	ArrFoundLongArray:                {"FoundLongArray", "Short array syntax must be used to define arrays"},
	ArrSpaceInEmptyArray:             {"SpaceInEmptyArray", "Empty array declaration must have no space between the parentheses"},
	ArrCommaAfterLast:                {"CommaAfterLast", "Comma not allowed after last value in single-line array declaration"},
	ArrNoSpaceBeforeDoubleArrow:      {"NoSpaceBeforeDoubleArrow", `Expected 1 space between "%v" and double arrow; 0 found`},
	ArrSpaceBeforeDoubleArrow:        {"SpaceBeforeDoubleArrow", `Expected 1 space between "%v" and double arrow; %v found`},
	ArrNoSpaceAfterDoubleArrow:       {"NoSpaceAfterDoubleArrow", `Expected 1 space between double arrow and "%v"; 0 found`},
	ArrSpaceAfterDoubleArrow:         {"SpaceAfterDoubleArrow", `Expected 1 space between double arrow and "%v"; %v found`},
	ArrSingleLineNotAllowed:          {"SingleLineNotAllowed", "Array with multiple values cannot be declared on a single line"},
	ArrNoSpaceAfterComma:             {"NoSpaceAfterComma", `Expected 1 space between comma and "%v"; 0 found`},
	ArrSpaceAfterComma:               {"SpaceAfterComma", `Expected 1 space between comma and "%v"; %v found`},
	ArrSpaceBeforeComma:              {"SpaceBeforeComma", `Expected 0 spaces between "%v" and comma; %v found`},
	ArrShortArrayOpenWrongLine:       {"ShortArrayOpenWrongLine", `Array opening bracket should be after function open parenthesis "(["`},
	ArrCloseBracketAfterArrayBracket: {"CloseBracketAfterArrayBracket", `Closing parenthesis should be after array closing bracket "])"`},
	ArrCloseArrayBraceNewLine:        {"CloseArrayBraceNewLine", "Closing parenthesis of array declaration must be on a new line"},
	ArrCloseArrayBraceNotAligned:     {"CloseArrayBraceNotAligned", "Closing parenthesis not aligned correctly; expected %v %v but found %v"},
	ArrNoKeySpecified:                {"NoKeySpecified", "No key specified for array entry; first entry specifies key"},
	ArrKeySpecified:                  {"KeySpecified", "Key specified for array entry; first entry has no key"},
	ArrNoCommaAfterLast:              {"NoCommaAfterLast", "Comma required after last value in array declaration"},
	ArrFirstValueNoNewline:           {"FirstValueNoNewline", "The first value in a multi-value array must be on a new line"},
	ArrValueNoNewline:                {"ValueNoNewline", "Each value in a multi-line array must be on a new line"},
	ArrValueNotAligned:               {"ValueNotAligned", "Array value not aligned correctly; expected %v %v but found %v"},
	ArrFirstIndexNoNewline:           {"FirstIndexNoNewline", "The first index in a multi-value array must be on a new line"},
	ArrIndexNoNewline:                {"IndexNoNewline", "Each index in a multi-line array must be on a new line"},
	ArrKeyNotAligned:                 {"KeyNotAligned", "Array key not aligned correctly; expected %v %v but found %v"},
	ArrDoubleArrowNotAligned:         {"DoubleArrowNotAligned", "Array double arrow not aligned correctly; expected %v %v but found %v"},
	ArrNoComma:                       {"NoComma", "Each line in an array declaration must end in a comma"},
	ArrEmptyLine:                     {"EmptyLine", "Blank lines are not allowed in an array declaration"},

	IOInfo:           {"IOInfo", "I/O information"},
	IOLoadFileError:  {"LoadFileError", "cannot load file: %v"},
	IOWriteFileError: {"WriteFileError", "cannot write file: %v"},

	FixInfo:          {"FixInfo", "Fix information"},
	FixNoConvergence: {"NoConvergence", "fixes did not converge after %v passes"},
}

// ID renders the stable numeric identifier, e.g. ARR2002.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("ARR%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("FIX%04d", ic)
	}
	return "E0000"
}

// Lexical reports whether the code comes from the tokenizer.
func (c Code) Lexical() bool {
	return c >= LexInfo && c < ArrInfo
}

// Name returns the sniff-style identifier used for suppression and tracking,
// e.g. SpaceInEmptyArray.
func (c Code) Name() string {
	info, ok := codeInfos[c]
	if !ok {
		return codeInfos[UnknownCode].name
	}
	return info.name
}

// Title returns the raw message template.
func (c Code) Title() string {
	info, ok := codeInfos[c]
	if !ok {
		return codeInfos[UnknownCode].template
	}
	return info.template
}

// Format renders the message template with args.
func (c Code) Format(args ...any) string {
	if len(args) == 0 {
		return c.Title()
	}
	return fmt.Sprintf(c.Title(), args...)
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Name())
}
