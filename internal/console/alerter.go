// Package console prints form alerts on a terminal for the headless commands.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Alerter writes each alert on its own block. Messages starting with
// "Erro" are printed as failures.
type Alerter struct {
	mu       sync.Mutex
	out      io.Writer
	ok       *color.Color
	bad      *color.Color
	failures int
}

func NewAlerter(out io.Writer) *Alerter {
	return &Alerter{
		out: out,
		ok:  color.New(color.FgGreen, color.Bold),
		bad: color.New(color.FgRed, color.Bold),
	}
}

func (a *Alerter) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	style := a.ok
	if isFailure(message) {
		style = a.bad
		a.failures++
	}
	_, _ = style.Fprintln(a.out, message)
}

// Failures counts failure alerts printed so far.
func (a *Alerter) Failures() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failures
}

func isFailure(message string) bool {
	return strings.HasPrefix(message, "Erro")
}

// PrintFields writes "label: value" lines, one per id.
func PrintFields(out io.Writer, labels, values map[string]string, ids []string) {
	for _, id := range ids {
		label := labels[id]
		if label == "" {
			label = id
		}
		fmt.Fprintf(out, "%-12s %s\n", label+":", values[id])
	}
}
