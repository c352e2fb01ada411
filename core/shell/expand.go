package shell

import (
	"fmt"

	sh "mvdan.cc/sh/v3/shell"

	"github.com/josephlewis42/dcshell/core/vos"
)

// Expander splits text into fields after quote removal and expansion.
type Expander interface {
	Fields(s string) ([]string, error)
}

// WordExpander expands words with quote removal, tilde expansion using HOME
// and parameter expansion. Globs are left untouched and command substitution
// is an error.
type WordExpander struct {
	Env vos.VEnv
}

var _ Expander = (*WordExpander)(nil)

func (w *WordExpander) Fields(s string) ([]string, error) {
	fields, err := sh.Fields(s, w.Env.Getenv)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExpansion, err)
	}
	return fields, nil
}
