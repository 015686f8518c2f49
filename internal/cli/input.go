package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter gathers interactive input. Commands depend on this interface
// rather than on a terminal, so flows like confirm-before-delete can be
// tested with a scripted implementation.
type Prompter interface {
	Text(prompt string) (string, error)
	TextDefault(prompt, def string) (string, error)
	Password(prompt string) (string, error)
	Confirm(prompt string, def bool) (bool, error)
}

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// TerminalPrompter reads answers from an input stream and writes prompts to
// an output stream, normally stdin/stdout.
type TerminalPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewTerminalPrompter(r io.Reader, w io.Writer) *TerminalPrompter {
	return &TerminalPrompter{reader: bufio.NewReader(r), out: w}
}

// Text prints a prompt and reads a single line. The trailing newline is
// trimmed. If EOF occurs after some input was read, the partial line is
// returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func (p *TerminalPrompter) Text(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt+"\n> "); err != nil {
		return "", err
	}
	return p.readLine()
}

// TextDefault is Text with a default shown in brackets; an empty answer
// yields the default.
func (p *TerminalPrompter) TextDefault(prompt, def string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s [%s]\n> ", prompt, def); err != nil {
		return "", err
	}
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Password prints a prompt and reads a password from the terminal without
// echo. A newline is printed after the read to keep the UI tidy.
func (p *TerminalPrompter) Password(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// Confirm asks a yes/no question. An empty answer yields def; anything
// starting with y or Y is yes, everything else is no.
func (p *TerminalPrompter) Confirm(prompt string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	if _, err := fmt.Fprintf(p.out, "%s %s ", prompt, hint); err != nil {
		return false, err
	}
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	if line == "" {
		return def, nil
	}
	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}

func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
