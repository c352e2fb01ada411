package vos

import (
	"path/filepath"
	"strings"
)

// DontSearch determines whether the program name should be taken literally
// and not searched for in the PATH.
func DontSearch(program string) bool {
	return strings.ContainsRune(program, '/')
}

// SearchPath breaks the PATH of the environment into the directories probed
// for unqualified program names.
//
// An unset or empty PATH yields no directories. Each entry has a leading ~
// replaced by the user's home directory. Following Unix shell semantics the
// empty entry means ".".
func SearchPath(env VEnv) []string {
	path := env.Getenv(EnvPath)
	if path == "" {
		return nil
	}

	home, _ := env.UserHomeDir()

	var dirs []string
	for _, dir := range filepath.SplitList(path) {
		switch {
		case dir == "":
			dir = "."
		case home != "" && (dir == "~" || strings.HasPrefix(dir, "~/")):
			dir = home + dir[1:]
		}
		dirs = append(dirs, dir)
	}
	return dirs
}
