package ui

import (
	"context"
	"fmt"
	"io"
	"os"
)

type terminalUI struct {
	out io.Writer
	err io.Writer
}

// NewTerminal écrit les infos sur stdout, warnings et erreurs sur stderr.
func NewTerminal() Interface {
	return NewTerminalWithWriters(os.Stdout, os.Stderr)
}

// NewTerminalWithWriters : idem avec des writers fournis (cobra, tests).
func NewTerminalWithWriters(out, errw io.Writer) Interface {
	return &terminalUI{out: out, err: errw}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintWarning(ctx context.Context, s string) {
	fmt.Fprintln(t.err, "⚠️  "+s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.err, "❌ "+s)
}
