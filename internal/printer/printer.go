// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package printer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/mia-platform/cols/internal/record"
)

// Printer receives the output of print stages and the failures of a pipeline.
type Printer interface {
	// Println writes one line of output.
	Println(line string) error
	// Dump writes an indented structured representation of value. Non-finite numbers
	// are written as strings.
	Dump(value any) error
	// PrintError writes err, including its stack trace when the error carries one.
	PrintError(err error)
}

var _ Printer = &writerPrinter{}

type writerPrinter struct {
	out    io.Writer
	errOut io.Writer

	lock sync.Mutex
}

// New returns a Printer writing output to out and errors to errOut.
func New(out, errOut io.Writer) Printer {
	return &writerPrinter{
		out:    out,
		errOut: errOut,
	}
}

func (p *writerPrinter) Println(line string) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	_, err := fmt.Fprintln(p.out, line)
	return err
}

func (p *writerPrinter) Dump(value any) error {
	builder := new(strings.Builder)
	encoder := json.NewEncoder(builder)
	encoder.SetIndent("", "\t")
	if err := encoder.Encode(printable(value)); err != nil {
		return err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	_, err := io.WriteString(p.out, builder.String())
	return err
}

// printable replaces NaN and infinities, which JSON cannot represent, with their textual form.
func printable(value any) any {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return record.Format(v)
		}
		return v
	case record.Sequence:
		out := make([]any, len(v))
		for i, r := range v {
			out[i] = printable(r)
		}
		return out
	case []record.Record:
		return printable(record.Sequence(v))
	case record.Record:
		return printable(map[string]any(v))
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = printable(m)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = printable(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = printable(item)
		}
		return out
	default:
		return value
	}
}

func (p *writerPrinter) PrintError(err error) {
	if err == nil {
		return
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	fmt.Fprintf(p.errOut, "%+v\n", err)
}

// Unexported new type so that our context key never collides with another.
type contextKeyType struct{}

var contextKey = contextKeyType{}

// defaultPrinter writes to the process standard output and error.
var defaultPrinter = New(os.Stdout, os.Stderr)

// WithContext returns a new context carrying printer.
func WithContext(ctx context.Context, printer Printer) context.Context {
	return context.WithValue(ctx, contextKey, printer)
}

// FromContext returns the printer stored in ctx, or one writing to stdout and stderr.
func FromContext(ctx context.Context) Printer {
	if ctx != nil {
		if printer, ok := ctx.Value(contextKey).(Printer); ok {
			return printer
		}
	}

	return defaultPrinter
}
