// Package prompt collects the two answers the launcher needs (project name
// and project kind) over plain line-delimited I/O. It performs no
// validation beyond menu-index bounds; name rules are the project package's
// concern.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mintapp-labs/mintapp/internal/project"
)

// Answers holds the raw, not-yet-validated replies from the user.
type Answers struct {
	Name string
	Kind project.Kind
}

// Asker reads answers from r and writes questions to w.
type Asker struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewAsker creates an Asker over the given streams.
func NewAsker(r io.Reader, w io.Writer) *Asker {
	return &Asker{reader: bufio.NewReader(r), w: w}
}

// Ask walks the user through both questions and returns the raw answers.
func (a *Asker) Ask() (*Answers, error) {
	name, err := a.askName()
	if err != nil {
		return nil, err
	}

	kind, err := a.askKind()
	if err != nil {
		return nil, err
	}

	return &Answers{Name: name, Kind: kind}, nil
}

func (a *Asker) askName() (string, error) {
	fmt.Fprint(a.w, "? What's your project named? ")
	line, err := a.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading project name: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (a *Asker) askKind() (project.Kind, error) {
	kinds := project.Kinds()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = k.String()
	}

	idx, err := a.selectFromList("What kind of project is it?", labels)
	if err != nil {
		return 0, err
	}
	return kinds[idx], nil
}

// selectFromList presents a numbered menu and returns the chosen index.
// An empty reply selects the first entry.
func (a *Asker) selectFromList(title string, options []string) (int, error) {
	fmt.Fprintf(a.w, "\n%s\n", title)
	for i, opt := range options {
		fmt.Fprintf(a.w, "  %d) %s\n", i+1, opt)
	}
	fmt.Fprintf(a.w, "Select [1-%d] (default 1): ", len(options))

	line, err := a.reader.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return 0, fmt.Errorf("invalid selection %q: enter a number between 1 and %d", line, len(options))
	}
	return n - 1, nil
}
