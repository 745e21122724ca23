package source

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// specLexer tokenises "name;type:param:param" and "name;type:https://host:port/path|param".
// URL parameters swallow colons up to the next '|'.
var specLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "URL", Pattern: `[a-zA-Z][a-zA-Z0-9+.-]*://[^|;]+`},
	{Name: "Punct", Pattern: `[;:|]`},
	{Name: "Word", Pattern: `[^;:|]+`},
})

type specAST struct {
	Name   string   `@Word ";"`
	Type   string   `@Word`
	Params []string `( ":" @(URL | Word) ( (":" | "|") @(URL | Word) )* )?`
}

var specParser = participle.MustBuild[specAST](
	participle.Lexer(specLexer),
)

// Spec is a parsed source config string.
type Spec struct {
	Name   string
	Type   string
	Params []string
	Raw    string
}

// ParseSpec parses a source config string such as "AVO;wws:pubavo1.wr.usgs.gov:16022:10000".
func ParseSpec(raw string) (Spec, error) {
	ast, err := specParser.ParseString("", strings.TrimSpace(raw))
	if err != nil {
		return Spec{}, fmt.Errorf("invalid source %q: %w", raw, err)
	}

	spec := Spec{
		Name: strings.TrimSpace(ast.Name),
		Type: strings.ToLower(strings.TrimSpace(ast.Type)),
		Raw:  strings.TrimSpace(raw),
	}
	if spec.Name == "" {
		return Spec{}, fmt.Errorf("invalid source %q: empty name", raw)
	}
	for _, p := range ast.Params {
		spec.Params = append(spec.Params, strings.TrimSpace(p))
	}
	return spec, nil
}

// Param returns the i-th parameter or def when it is absent or empty.
func (s Spec) Param(i int, def string) string {
	if i < len(s.Params) && s.Params[i] != "" {
		return s.Params[i]
	}
	return def
}
