/*
Celi is an interactive cel-lite session: a REPL for compiling and evaluating
expressions against a context loaded from a policy file, and a one-shot mode
for running a single expression from the command line.

Usage:

	celi [flags]

The flags are:

	-v, --version
		Give the current version of cel-lite and then exit.

	-p, --policy FILE
		Load evaluation context and resource limits from the given TOML
		policy file. If omitted, the built-in option defaults apply and the
		context starts empty.

	-d, --direct
		Read directly from stdin instead of through the readline line
		editor. Without this flag, readline is used whether or not stdin
		is a terminal.

	-e, --expr EXPRESSION
		Compile and evaluate the given expression immediately, print the
		result (and, with --trace, the evaluation trace), and exit without
		starting an interactive session.

	-t, --trace
		Use Explain instead of Eval and print the step-by-step trace
		alongside the result.

Once a session has started, each line read is compiled and evaluated against
the loaded context and the result is printed. Type "QUIT" to exit.
*/
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/dekarrin/cel-lite"
	"github.com/dekarrin/cel-lite/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitEvalError indicates an unsuccessful program execution due to a
	// compile or evaluation error.
	ExitEvalError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the session (bad policy file, bad readline setup).
	ExitInitError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	policyFile  *string = pflag.StringP("policy", "p", "", "TOML policy file supplying context and resource limits")
	forceDirect *bool   = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	oneShotExpr *string = pflag.StringP("expr", "e", "", "Evaluate the given expression and exit instead of starting a session")
	traceMode   *bool   = pflag.BoolP("trace", "t", false, "Use Explain and print the evaluation trace alongside the result")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	pol, err := loadPolicy(*policyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if *oneShotExpr != "" {
		if err := runOne(pol, *oneShotExpr, *traceMode); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitEvalError
		}
		return
	}

	sess, err := newSession(pol, *forceDirect, *traceMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer sess.Close()

	if err := sess.RunUntilQuit(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitEvalError
	}
}

// runOne compiles and evaluates a single expression against pol's context,
// printing the result (and trace, if requested) to stdout.
func runOne(pol *policy, expr string, trace bool) error {
	prog, err := cellite.Compile(expr, pol.options())
	if err != nil {
		return err
	}

	if trace {
		val, entries, err := prog.Explain(pol.context())
		printTrace(entries)
		if err != nil {
			return err
		}
		fmt.Println(formatResult(val))
		return nil
	}

	val, err := prog.Eval(pol.context())
	if err != nil {
		return err
	}
	fmt.Println(formatResult(val))
	return nil
}

func printTrace(entries []cellite.Entry) {
	for _, e := range entries {
		fmt.Printf("  #%d %-10s %-40s => %s\n", e.ID, e.Kind, e.Expr, formatResult(e.Value))
	}
}

func formatResult(v cellite.Value) string {
	switch {
	case v.IsUndefined():
		return "undefined"
	case v.Kind() == cellite.KindString:
		return strconv.Quote(v.StringValue())
	default:
		return v.ToStringValue()
	}
}
