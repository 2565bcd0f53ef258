package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads validated interactive input. Read errors (including io.EOF
// when stdin closes) propagate to the caller so loops can end cleanly.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line prints the prompt and returns one trimmed line of input.
func (p *prompter) line(text string) (string, error) {
	promptColor.Fprint(p.out, text) //nolint:errcheck

	input, err := p.in.ReadString('\n')
	if err != nil {
		// accept a final line with no trailing newline
		if err == io.EOF && strings.TrimSpace(input) != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// intInRange prompts until the user enters an integer in [min, max].
// With allowZero, 0 is accepted as a sentinel regardless of range. Custom
// out-of-range messages replace the defaults when non-empty.
func (p *prompter) intInRange(text string, min, max int, allowZero bool, minMsg, maxMsg string) (int, error) {
	for {
		input, err := p.line(text)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(input)
		if err != nil {
			printError(p.out, "Invalid input. Please enter a valid number.")
			continue
		}

		if allowZero && value == 0 {
			return 0, nil
		}
		if value < min {
			if minMsg == "" {
				minMsg = fmt.Sprintf("Please enter a number greater than or equal to %d.", min)
			}
			printError(p.out, minMsg)
			continue
		}
		if value > max {
			if maxMsg == "" {
				maxMsg = fmt.Sprintf("Please enter a number less than or equal to %d.", max)
			}
			printError(p.out, maxMsg)
			continue
		}
		return value, nil
	}
}

// yes reports whether the answer starts with "y".
func (p *prompter) yes(text string) (bool, error) {
	input, err := p.line(text)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(input), "y"), nil
}

// another reports whether to keep going: anything not starting with "n".
func (p *prompter) another(text string) (bool, error) {
	input, err := p.line(text)
	if err != nil {
		return false, err
	}
	return !strings.HasPrefix(strings.ToLower(input), "n"), nil
}
