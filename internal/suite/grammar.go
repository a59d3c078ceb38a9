package suite

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Suite is a parsed .req file: a list of expected (non-)equivalences.
//
//	# comment
//	commutes: "a|b" == "b|a";
//	"a*b" != "ab*";
type Suite struct {
	Cases []*Case `parser:"@@*"`
}

// Case compares two quoted regexes. Strings use Go escape rules, so a
// backslash is written \\ and any code point may be given as \uXXXX.
type Case struct {
	Pos lexer.Position

	Name  string `parser:"(@Ident ':')?"`
	Left  string `parser:"@String"`
	Op    string `parser:"@('==' | '!=')"`
	Right string `parser:"@String ';'"`
}

// ExpectEquivalent reports whether the case asserts equal languages.
func (c *Case) ExpectEquivalent() bool { return c.Op == "==" }

var suiteLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},
	{Name: "Op", Pattern: `==|!=`},
	{Name: "Punct", Pattern: `[:;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Suite](
	participle.Lexer(suiteLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)
