package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// OpenTag represents the '<?php' / '<?=' tag.
	OpenTag
	// CloseTag represents the '?>' tag.
	CloseTag
	// InlineHTML represents text outside of PHP tags, one token per line.
	InlineHTML
	// Whitespace represents spaces and tabs, optionally ending with a newline.
	Whitespace
	// Comment represents '//', '#' and '/* */' comments.
	Comment
	// DocComment represents '/** */' comments.
	DocComment

	// Variable represents '$name'.
	Variable
	// Ident represents identifiers, function names and qualified names.
	Ident
	// Number represents integer and float literals.
	Number
	// ConstString represents a string literal without interpolation.
	ConstString
	// DoubleQuotedString represents a double-quoted string with interpolation.
	DoubleQuotedString
	// Heredoc represents one line of a heredoc or nowdoc.
	Heredoc

	// KwArray represents the 'array' keyword of the long array syntax.
	KwArray // array(
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwConst represents the 'const' keyword.
	KwConst // const
	// Keyword represents any other reserved word (echo, yield, new, ...).
	Keyword
	// Closure represents 'function' opening an anonymous function.
	Closure // function (
	// KwFn represents 'fn' opening an arrow function.
	KwFn // fn (

	// ArrayCast represents the '(array)' cast.
	ArrayCast
	// ObjectCast represents the '(object)' cast.
	ObjectCast
	// UnsetCast represents the '(unset)' cast.
	UnsetCast
	// Cast represents every other cast ('(int)', '(string)', ...).
	Cast

	// Equal represents '='.
	Equal // =
	// AssignOp represents compound assignments ('.=', '+=', '??=', ...).
	AssignOp
	// DoubleArrow represents '=>'.
	DoubleArrow // =>
	// ObjectOperator represents '->' and '?->'.
	ObjectOperator // ->
	// DoubleColon represents '::'.
	DoubleColon // ::
	// Comma represents ','.
	Comma // ,
	// Semicolon represents ';'.
	Semicolon // ;
	// Operator represents every other operator.
	Operator

	// OpenParen represents '('.
	OpenParen // (
	// CloseParen represents ')'.
	CloseParen // )
	// OpenBracket represents '[' used for index access.
	OpenBracket // [
	// CloseBracket represents ']' closing an index access.
	CloseBracket // ]
	// OpenShortArray represents '[' opening an array literal.
	OpenShortArray // [
	// CloseShortArray represents ']' closing an array literal.
	CloseShortArray // ]
	// OpenBrace represents '{'.
	OpenBrace // {
	// CloseBrace represents '}'.
	CloseBrace // }
)

var kindNames = [...]string{
	Invalid:            "Invalid",
	EOF:                "EOF",
	OpenTag:            "OpenTag",
	CloseTag:           "CloseTag",
	InlineHTML:         "InlineHTML",
	Whitespace:         "Whitespace",
	Comment:            "Comment",
	DocComment:         "DocComment",
	Variable:           "Variable",
	Ident:              "Ident",
	Number:             "Number",
	ConstString:        "ConstString",
	DoubleQuotedString: "DoubleQuotedString",
	Heredoc:            "Heredoc",
	KwArray:            "KwArray",
	KwReturn:           "KwReturn",
	KwVar:              "KwVar",
	KwPublic:           "KwPublic",
	KwPrivate:          "KwPrivate",
	KwProtected:        "KwProtected",
	KwStatic:           "KwStatic",
	KwConst:            "KwConst",
	Keyword:            "Keyword",
	Closure:            "Closure",
	KwFn:               "KwFn",
	ArrayCast:          "ArrayCast",
	ObjectCast:         "ObjectCast",
	UnsetCast:          "UnsetCast",
	Cast:               "Cast",
	Equal:              "Equal",
	AssignOp:           "AssignOp",
	DoubleArrow:        "DoubleArrow",
	ObjectOperator:     "ObjectOperator",
	DoubleColon:        "DoubleColon",
	Comma:              "Comma",
	Semicolon:          "Semicolon",
	Operator:           "Operator",
	OpenParen:          "OpenParen",
	CloseParen:         "CloseParen",
	OpenBracket:        "OpenBracket",
	CloseBracket:       "CloseBracket",
	OpenShortArray:     "OpenShortArray",
	CloseShortArray:    "CloseShortArray",
	OpenBrace:          "OpenBrace",
	CloseBrace:         "CloseBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEmpty reports whether the kind carries no code (whitespace or comments).
func (k Kind) IsEmpty() bool {
	return k == Whitespace || k == Comment || k == DocComment
}

// IsString reports whether the kind is one of the string kinds that may be
// split across several lines.
func (k Kind) IsString() bool {
	return k == ConstString || k == DoubleQuotedString || k == Heredoc
}

// IsOpener reports whether the kind opens a bracket pair.
func (k Kind) IsOpener() bool {
	switch k {
	case OpenParen, OpenBracket, OpenShortArray, OpenBrace:
		return true
	default:
		return false
	}
}

// IsCloser reports whether the kind closes a bracket pair.
func (k Kind) IsCloser() bool {
	switch k {
	case CloseParen, CloseBracket, CloseShortArray, CloseBrace:
		return true
	default:
		return false
	}
}

// IsAssignment reports whether the kind assigns a value.
func (k Kind) IsAssignment() bool {
	return k == Equal || k == AssignOp
}

// KindSet is a small membership set over Kind.
type KindSet uint64

// NewKindSet builds a set from kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// Has reports whether k belongs to the set.
func (s KindSet) Has(k Kind) bool {
	return k < 64 && s&(1<<k) != 0
}

// With returns a copy of s extended with kinds.
func (s KindSet) With(kinds ...Kind) KindSet {
	return s | NewKindSet(kinds...)
}
