package shell

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/josephlewis42/dcshell/core/command"
)

// Parser turns a command line into a program, arguments and redirections.
type Parser struct {
	Patterns *Patterns
	Expander Expander
}

// redirect is a clause removed from the line.
type redirect struct {
	op     string
	target string
}

func (r *redirect) appends() bool {
	return strings.Contains(r.op, ">>")
}

// Parse fills in cmd from cmd.Line. A trailing comment is dropped, then
// redirections are extracted in the order stderr, stdout, stdin, each from
// the line left by the one before. The command is only modified if parsing
// succeeds.
func (p *Parser) Parse(cmd *command.Command) error {
	line := stripComment(cmd.Line)
	parsed := command.Command{Line: cmd.Line}

	for _, stream := range []struct {
		name   string
		re     *regexp.Regexp
		target *string
		append *bool
	}{
		{"stderr", p.Patterns.Err, &parsed.StderrFile, &parsed.StderrAppend},
		{"stdout", p.Patterns.Out, &parsed.StdoutFile, &parsed.StdoutAppend},
		{"stdin", p.Patterns.In, &parsed.StdinFile, nil},
	} {
		rest, clause, err := p.cut(line, stream.re)
		if err != nil {
			return fmt.Errorf("%s redirection: %w", stream.name, err)
		}
		line = rest
		if clause == nil {
			continue
		}

		*stream.target = clause.target
		if stream.append != nil {
			*stream.append = clause.appends()
		}
	}

	fields, err := p.Expander.Fields(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return ErrNoProgram
	}

	parsed.Program = fields[0]
	if len(fields) > 1 {
		parsed.Args = fields[1:]
	}

	*cmd = parsed
	return nil
}

// ParseLine is a convenience wrapper around Parse for a new command.
func (p *Parser) ParseLine(line string) (*command.Command, error) {
	cmd := command.New(line)
	if err := p.Parse(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

// cut removes the first unquoted clause matching re from line. A clause runs
// from the operator up to the next unquoted redirection operator or the end
// of the line.
func (p *Parser) cut(line string, re *regexp.Regexp) (string, *redirect, error) {
	unquoted := unquotedMask(line)
	start, end, ok := findUnquoted(re, line, unquoted, 0)
	if !ok {
		return line, nil, nil
	}

	clauseEnd := len(line)
	for _, other := range p.Patterns.all() {
		if next, _, ok := findUnquoted(other, line, unquoted, end); ok && next < clauseEnd {
			clauseEnd = next
		}
	}

	clause := &redirect{op: strings.TrimSpace(line[start:end])}
	rest := line[:start] + line[clauseEnd:]

	if _, _, dup := findUnquoted(re, rest, unquotedMask(rest), 0); dup {
		return "", nil, fmt.Errorf("%w: %q", ErrDuplicateRedirect, clause.op)
	}

	target, err := p.expandTarget(line[end:clauseEnd])
	if err != nil {
		return "", nil, fmt.Errorf("%q: %w", clause.op, err)
	}
	clause.target = target

	return rest, clause, nil
}

// expandTarget expands a redirection operand which must be exactly one word.
func (p *Parser) expandTarget(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrMissingRedirectTarget
	}

	fields, err := p.Expander.Fields(raw)
	switch {
	case err != nil:
		return "", err
	case len(fields) == 0:
		return "", ErrMissingRedirectTarget
	case len(fields) > 1:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousRedirect, strings.TrimSpace(raw))
	}
	return fields[0], nil
}

// stripComment removes an unquoted # that starts a word and everything after
// it.
func stripComment(line string) string {
	unquoted := unquotedMask(line)
	for i := 0; i < len(line); i++ {
		if line[i] != '#' || !unquoted[i] {
			continue
		}
		if i == 0 || (unquoted[i-1] && isBlank(line[i-1])) {
			return line[:i]
		}
	}
	return line
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f' || c == '\v'
}

// findUnquoted finds the first match of re at or after from whose leading
// whitespace isn't quoted or escaped.
func findUnquoted(re *regexp.Regexp, line string, unquoted []bool, from int) (int, int, bool) {
	for from < len(line) {
		loc := re.FindStringIndex(line[from:])
		if loc == nil {
			return 0, 0, false
		}

		start, end := from+loc[0], from+loc[1]
		if unquoted[start] {
			return start, end, true
		}
		from = start + 1
	}
	return 0, 0, false
}

// unquotedMask reports, for every byte of line, whether it sits outside of
// single quotes, double quotes and backslash escapes.
func unquotedMask(line string) []bool {
	mask := make([]bool, len(line))

	var single, double, escaped bool
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
		case single:
			single = c != '\''
		case c == '\\':
			escaped = true
		case double:
			double = c != '"'
		case c == '\'':
			single = true
		case c == '"':
			double = true
		default:
			mask[i] = true
		}
	}
	return mask
}
