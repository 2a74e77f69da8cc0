package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/rosed"

	"github.com/dekarrin/cel-lite"
)

// commandReader is the minimal input abstraction celi needs, mirroring the
// teacher's internal/input package: a direct bufio-backed reader for
// non-interactive use and a readline-backed reader for interactive terminals.
type commandReader interface {
	ReadCommand() (string, error)
	Close() error
}

type directReader struct {
	r *bufio.Reader
}

func newDirectReader(r io.Reader) *directReader {
	return &directReader{r: bufio.NewReader(r)}
}

func (dr *directReader) ReadCommand() (string, error) {
	line, err := dr.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (dr *directReader) Close() error { return nil }

type interactiveReader struct {
	rl *readline.Instance
}

func newInteractiveReader() (*interactiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "cel> "})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &interactiveReader{rl: rl}, nil
}

func (ir *interactiveReader) ReadCommand() (string, error) {
	line, err := ir.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (ir *interactiveReader) Close() error { return ir.rl.Close() }

// session runs an interactive read-compile-eval-print loop against a fixed
// policy-supplied context.
type session struct {
	reader commandReader
	pol    *policy
	trace  bool
}

func newSession(pol *policy, forceDirect, trace bool) (*session, error) {
	var reader commandReader
	if forceDirect {
		reader = newDirectReader(os.Stdin)
	} else {
		ir, err := newInteractiveReader()
		if err != nil {
			return nil, err
		}
		reader = ir
	}

	return &session{reader: reader, pol: pol, trace: trace}, nil
}

func (s *session) Close() error {
	return s.reader.Close()
}

// RunUntilQuit reads expressions until EOF or a line consisting solely of
// "QUIT", compiling and evaluating each one against the session's context.
func (s *session) RunUntilQuit() error {
	for {
		line, err := s.reader.ReadCommand()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "QUIT") {
			return nil
		}

		prog, err := cellite.Compile(line, s.pol.options())
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			continue
		}

		if s.trace {
			val, entries, err := prog.Explain(s.pol.context())
			fmt.Print(renderTrace(entries))
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
				continue
			}
			fmt.Println(formatResult(val))
			continue
		}

		val, err := prog.Eval(s.pol.context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			continue
		}
		fmt.Println(formatResult(val))
	}
}

// renderTrace formats a trace as a wrapped table, the same way the teacher's
// debug commands render tabular state (internal/game/debug.go).
func renderTrace(entries []cellite.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	data := [][]string{{"#", "kind", "expr", "value"}}
	for _, e := range entries {
		data = append(data, []string{
			fmt.Sprintf("%d", e.ID),
			e.Kind,
			e.Expr,
			formatResult(e.Value),
		})
	}
	tableOpts := rosed.Options{TableHeaders: true, NoTrailingLineSeparators: true}
	return rosed.Edit("").InsertTableOpts(0, data, 100, tableOpts).String() + "\n"
}
