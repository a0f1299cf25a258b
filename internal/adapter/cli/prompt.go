package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/wspjoy2011/sql-repository-example/pkg/errors"
)

// Prompter reads operator input line by line and echoes prompts.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a new Prompter over the given reader and writer.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints the prompt and reads a single trimmed line.
// io.EOF is returned once the input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if err == io.EOF && line != "" {
			// Last line without a trailing newline still counts
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// Int prints the prompt and parses the answer as an integer.
// A non-numeric answer yields a field-scoped validation error.
func (p *Prompter) Int(prompt, field string) (int, error) {
	raw, err := p.Line(prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(field, fmt.Sprintf("%s must be an integer", field))
	}
	return value, nil
}

// Confirm prints the prompt and insists on a yes/no answer.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Invalid input. Please enter 'yes' or 'no'.")
		}
	}
}
