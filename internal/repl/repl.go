// Package repl implements an interactive front-end session: source is
// accumulated line by line, and a blank line compiles the buffer and
// prints either the diagnostics or the lowered IR.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/gracepriest/BasicLangvb-sub002/internal/compiler"
	"github.com/gracepriest/BasicLangvb-sub002/internal/ir"
)

const prompt = ">> "
const continuationPrompt = ".. "

// Session holds the REPL state between inputs.
type Session struct {
	out     io.Writer
	buffer  []string
	showAST bool
}

func NewSession(out io.Writer) *Session {
	return &Session{out: out}
}

// Start runs the read-compile-print loop until EOF or :quit.
func Start(in io.Reader, out io.Writer) {
	session := NewSession(out)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Type a program, then a blank line to compile it. :help lists commands.")
	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		if !session.HandleLine(scanner.Text()) {
			return
		}
		if len(session.buffer) > 0 {
			fmt.Fprint(out, continuationPrompt)
		} else {
			fmt.Fprint(out, prompt)
		}
	}
}

// HandleLine consumes one input line and reports whether the session
// should continue.
func (s *Session) HandleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ":") {
		return s.command(trimmed)
	}
	if trimmed == "" {
		if len(s.buffer) > 0 {
			s.compile()
		}
		return true
	}
	s.buffer = append(s.buffer, line)
	return true
}

func (s *Session) command(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return false
	case ":reset":
		s.buffer = nil
		fmt.Fprintln(s.out, "buffer cleared")
	case ":ast":
		s.showAST = !s.showAST
		fmt.Fprintf(s.out, "ast output %s\n", onOff(s.showAST))
	case ":help":
		fmt.Fprintln(s.out, ":quit  exit the session")
		fmt.Fprintln(s.out, ":reset discard the current buffer")
		fmt.Fprintln(s.out, ":ast   toggle printing the parsed tree")
	default:
		fmt.Fprintf(s.out, "unknown command %s\n", cmd)
	}
	return true
}

// compile runs the buffered program through the full pipeline and
// resets the buffer for the next one.
func (s *Session) compile() {
	source := strings.Join(s.buffer, "\n") + "\n"
	s.buffer = nil

	result := compiler.Compile("repl", source)
	if !result.Success() {
		fmt.Fprint(s.out, result.Format())
		return
	}
	if s.showAST {
		fmt.Fprintln(s.out, result.File.String())
	}
	fmt.Fprint(s.out, ir.Print(result.Module))
	color.New(color.FgGreen).Fprintln(s.out, "ok")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
