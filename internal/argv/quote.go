package argv

import "strings"

// Quote renders s as a single shell word. Tokens without shell
// metacharacters pass through unchanged; anything else is single-quoted
// with embedded quotes escaped so re-parsing reproduces the original
// token exactly.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"`$&|;<>*?[]{}()!") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}

// QuoteJoin renders args as a space-separated shell command line.
func QuoteJoin(args []string) string {
	if len(args) == 0 {
		return ""
	}
	q := make([]string, 0, len(args))
	for _, a := range args {
		q = append(q, Quote(a))
	}
	return strings.Join(q, " ")
}
