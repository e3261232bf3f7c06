// Command parsekit-demo exercises the arithmetic fixture grammar end to
// end: it scans and parses an expression and prints the resulting parse
// tree, colorizing diagnostics the way the teacher's CLI adapter
// delegates argument handling to cobra-style flag parsing (grounded on
// lang/in/cli/cli.go's Config/Run shape, generalized from a hand-rolled
// argument loop to github.com/spf13/cobra since this demo exposes real
// subcommands and flags rather than one positional file argument).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/grammarkit/parsekit/analyzer"
	"github.com/grammarkit/parsekit/errs"
	"github.com/grammarkit/parsekit/fixtures"
	"github.com/grammarkit/parsekit/grammar"
	"github.com/grammarkit/parsekit/parser"
	"github.com/grammarkit/parsekit/scanner"
	"github.com/grammarkit/parsekit/tree"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:   "parsekit-demo",
		Short: "Parses an arithmetic expression using the parsekit runtime and prints the parse tree.",
	}

	var showLookAhead bool
	parseCmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Scan and parse an arithmetic expression.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0], showLookAhead)
		},
	}
	parseCmd.Flags().BoolVar(&showLookAhead, "look-ahead", false, "dump resolved look-ahead sets before parsing")
	root.AddCommand(parseCmd)

	if err := root.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func runParse(expr string, showLookAhead bool) error {
	g, err := fixtures.NewArithmeticGrammar()
	if err != nil {
		return fmt.Errorf("building grammar: %w", err)
	}
	if cerrs := analyzer.Prepare(g); len(cerrs) > 0 {
		for _, e := range cerrs {
			printConstructionError(e)
		}
		return fmt.Errorf("%d construction error(s)", len(cerrs))
	}
	for _, w := range g.Warnings() {
		color.Yellow("warning: %s", w)
	}
	if showLookAhead {
		analyzer.Dump(g, os.Stdout)
	}

	sc, err := scanner.New(g, false)
	if err != nil {
		return fmt.Errorf("building scanner: %w", err)
	}
	sc.ResetString(expr)

	hooks := parser.Hooks{
		Enter: func(p *grammar.ProductionPattern) {
			slog.Debug("enter", "production", p.Name)
		},
	}
	driver, cerrs := parser.New(g, sc, hooks)
	if len(cerrs) > 0 {
		for _, e := range cerrs {
			printConstructionError(e)
		}
		return fmt.Errorf("%d construction error(s)", len(cerrs))
	}

	node, errLog := driver.Parse()
	if !errLog.Empty() {
		color.Red("%s", errLog.Error())
		return fmt.Errorf("parse failed")
	}
	if node != nil {
		color.Green("parsed successfully:")
		fmt.Print(tree.Dump(node))
	}
	return nil
}

func printConstructionError(e *errs.ConstructionError) {
	color.Red("construction error [%s] %s: %s", e.Kind, e.Name, e.Message)
}
