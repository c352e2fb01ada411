package shell

import (
	"fmt"
	"regexp"
)

// Redirection operators. Each must be preceded by whitespace so that words
// like "a>b" stay intact.
const (
	inPattern  = `[ \t\f\v]<`
	outPattern = `[ \t\f\v]1?>>?`
	errPattern = `[ \t\f\v]2>>?`
)

// Patterns holds the compiled redirection matchers.
type Patterns struct {
	In  *regexp.Regexp
	Out *regexp.Regexp
	Err *regexp.Regexp
}

// CompilePatterns compiles the redirection matchers.
func CompilePatterns() (*Patterns, error) {
	p := &Patterns{}
	for _, target := range []struct {
		dst  **regexp.Regexp
		expr string
	}{
		{&p.In, inPattern},
		{&p.Out, outPattern},
		{&p.Err, errPattern},
	} {
		re, err := regexp.Compile(target.expr)
		if err != nil {
			return nil, fmt.Errorf("couldn't compile %q: %w", target.expr, err)
		}
		*target.dst = re
	}
	return p, nil
}

func (p *Patterns) all() []*regexp.Regexp {
	return []*regexp.Regexp{p.Err, p.Out, p.In}
}
