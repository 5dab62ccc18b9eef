package codec

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// exprGrammar is the participle grammar for quantity expressions.
// Examples: "10 m", "1.5 kcal", "[1, 2, 3] kg m/s^2", "9.81 m s**-2", "J/(mol K)"
//
//nolint:govet // participle grammar tags are not standard struct tags
type exprGrammar struct {
	Magnitude *magnitudePart `@@?`
	Unit      *unitPart      `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type magnitudePart struct {
	Scalar *float64  `  @Number`
	Array  []float64 `| "[" @Number ( "," @Number )* "]"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type unitPart struct {
	Tokens  []lexer.Token
	Inverse bool      `@"/"?`
	Head    *termPart `@@`
	Tail    []*opTerm `@@*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type opTerm struct {
	Op   string    `@( "*" | "/" )?`
	Term *termPart `@@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type termPart struct {
	Factor   *factorPart `@@`
	Exponent *int        `( Pow ( @Number | "(" @Number ")" ) )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type factorPart struct {
	Symbol string    `  @Ident`
	Group  *unitPart `| "(" @@ ")"`
}

// exprLexer tokenizes quantity expressions.
// Pow must precede Punct so "**" is not read as two multiplications, and
// Number carries its own sign so "s^-2" lexes as Pow followed by "-2".
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+\.\d*|\.\d+|\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z°µμΩÅ_]+`},
	{Name: "Pow", Pattern: `\*\*|\^`},
	{Name: "Punct", Pattern: `[*/(),\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var exprParser = participle.MustBuild[exprGrammar](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)
