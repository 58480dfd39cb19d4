package plan

import (
	"path/filepath"
	"strings"
)

// Protocol tokens for the remote send-keys channel.
const (
	// foregroundSeq drops the remote server back to normal mode and
	// raises its window, whatever state it was left in.
	foregroundSeq = `<C-\><C-N>`

	// spaceToken stands in for a literal space inside an embedded
	// colon-command; the send channel cannot carry one raw.
	spaceToken = "<Space>"

	// crToken terminates a colon-command.
	crToken = "<CR>"
)

// SendKeys builds a remote send-keys payload from an explicit token
// list, serialized once at the end. Centralizing the placeholder and
// termination rules here keeps them testable apart from launch logic.
type SendKeys struct {
	tokens []string
}

// NewSendKeys returns an empty payload builder.
func NewSendKeys() *SendKeys {
	return &SendKeys{tokens: make([]string, 0, 4)}
}

// Foreground appends the window-to-front control sequence.
func (s *SendKeys) Foreground() *SendKeys {
	s.tokens = append(s.tokens, foregroundSeq)
	return s
}

// Command appends a colon-command with the given verb and argument,
// terminated by a carriage return. Spaces inside arg are replaced with
// the protocol's space placeholder.
func (s *SendKeys) Command(verb, arg string) *SendKeys {
	escaped := strings.ReplaceAll(arg, " ", spaceToken)
	s.tokens = append(s.tokens, ":"+verb+" "+escaped+crToken)
	return s
}

// String serializes the token list into the wire payload.
func (s *SendKeys) String() string {
	return strings.Join(s.tokens, "")
}

// AbsPath resolves path against workdir when it is not already
// absolute. The result is cleaned but not resolved through symlinks;
// the remote server interprets it as-is.
func AbsPath(workdir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workdir, path)
}
