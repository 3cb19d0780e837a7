// Package prompt asks the first-time setup questions on a line-oriented
// terminal. Answers are parsed leniently: unknown entries are dropped rather
// than rejected.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bianoble/ai-tao/internal/source"
	"github.com/bianoble/ai-tao/internal/target"
)

// Prompter asks questions on Out and reads one line per answer from In.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// SelectTools lists the tools and returns the chosen ones. An answer that
// yields no valid tool selects target.DefaultTool.
func (p *Prompter) SelectTools(ctx context.Context, defs []target.Definition) ([]target.Tool, error) {
	fmt.Fprintln(p.out, "Which AI assistants do you use?")
	for i, d := range defs {
		fmt.Fprintf(p.out, "  %d) %s (%s)\n", i+1, d.DisplayName, d.SharedFile)
	}
	fmt.Fprintf(p.out, "Enter numbers separated by commas [1]: ")

	line, err := p.readLine(ctx)
	if err != nil {
		return nil, err
	}
	return ParseTools(line, defs), nil
}

// SelectLocal asks whether to keep the configuration out of version control.
func (p *Prompter) SelectLocal(ctx context.Context) (bool, error) {
	fmt.Fprintf(p.out, "Keep the configuration local (added to .gitignore)? [y/N]: ")
	line, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}
	return ParseYes(line), nil
}

// SelectFlavors lists the flavors and returns the chosen ones, possibly none.
func (p *Prompter) SelectFlavors(ctx context.Context, flavors []source.Flavor) ([]source.Flavor, error) {
	fmt.Fprintln(p.out, "Add framework flavors?")
	for i, f := range flavors {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, f.Label())
	}
	fmt.Fprintf(p.out, "Enter numbers separated by commas, or leave empty for none: ")

	line, err := p.readLine(ctx)
	if err != nil {
		return nil, err
	}
	return ParseFlavors(line, flavors), nil
}

// readLine returns the next input line. End of input reads as an empty line.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.in.Scan() {
		return strings.TrimSpace(p.in.Text()), nil
	}
	if err := p.in.Err(); err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	fmt.Fprintln(p.out)
	return "", nil
}

// ParseTools turns an answer such as "1, 3" or "claude cursor" into tools.
// Invalid entries are skipped and repeats collapse.
func ParseTools(answer string, defs []target.Definition) []target.Tool {
	var tools []target.Tool
	seen := make(map[target.Tool]bool)
	for _, field := range splitAnswer(answer) {
		tool, ok := pickTool(field, defs)
		if !ok || seen[tool] {
			continue
		}
		seen[tool] = true
		tools = append(tools, tool)
	}
	if len(tools) == 0 {
		return []target.Tool{target.DefaultTool}
	}
	return tools
}

func pickTool(field string, defs []target.Definition) (target.Tool, bool) {
	if n, err := strconv.Atoi(field); err == nil {
		if n < 1 || n > len(defs) {
			return "", false
		}
		return defs[n-1].Tool, true
	}
	for _, d := range defs {
		if strings.EqualFold(field, string(d.Tool)) {
			return d.Tool, true
		}
	}
	return "", false
}

// ParseFlavors turns an answer into flavors. Invalid entries are skipped; an
// empty result is valid.
func ParseFlavors(answer string, flavors []source.Flavor) []source.Flavor {
	var picked []source.Flavor
	seen := make(map[source.Flavor]bool)
	for _, field := range splitAnswer(answer) {
		var f source.Flavor
		if n, err := strconv.Atoi(field); err == nil {
			if n < 1 || n > len(flavors) {
				continue
			}
			f = flavors[n-1]
		} else if parsed, err := source.ParseFlavor(field); err == nil {
			f = parsed
		} else {
			continue
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		picked = append(picked, f)
	}
	return picked
}

// ParseYes reports whether answer is an affirmative "y" or "yes".
func ParseYes(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "y" || a == "yes"
}

func splitAnswer(answer string) []string {
	return strings.FieldsFunc(answer, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
