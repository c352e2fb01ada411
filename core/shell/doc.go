// Package shell implements an interactive shell that runs one simple command
// per line as a finite state machine.
//
// Each line goes through a reduced version of the steps in
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html
//
//  1. The shell reads a line from its input. A # that starts an unquoted word
//     begins a comment running to the end of the line. Lines that are blank
//     or only a comment are skipped.
//
//  2. Redirection operators and their operands are found outside of quotes
//     and removed from the line, stderr first, then stdout, then stdin. An
//     operator must follow an unquoted, unescaped blank: in "a\ >out" or
//     "a>out" the > stays in the word, and an unquoted > inside a word is an
//     expansion error.
//
//  3. The rest of the line is split into fields with quote removal, tilde
//     expansion and parameter expansion. Pathname expansion and command
//     substitution are not performed.
//
//  4. The first field names a builtin or an executable file, found by
//     searching the PATH captured at startup if it doesn't contain a slash.
//
//  5. The shell waits for the command to complete and prints its exit status.
//
// There are no pipelines, lists, compound commands or job control.
package shell
