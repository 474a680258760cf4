package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonlawlor/rel"
	"github.com/jonlawlor/rel/internal/logging"
)

func registerDemoCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Evaluate the demo expression",
		Long:  "Evaluate the demo expression, which uses every operation, with the statically typed builder.",
		Args:  cobra.NoArgs,
		RunE:  demoRun,
	})
}

// demoExpr builds the demo expression.  The same tree is described by
// testdata/scenario.yaml, in terms of the names in demoRegistry.
func demoExpr() rel.Builder[rel.Tuple3[string, int, string]] {
	b := rel.From(letters).Select(afterFirst)
	pairs := rel.CartesianProduct(rel.Project(b, letter), numbers, pair)
	return rel.Join(pairs, joins, sameNumber, merge).
		Union(extra).
		Intersect(keep)
}

func demoRun(cmd *cobra.Command, _ []string) error {
	b := demoExpr()
	logging.Ctx(cmd.Context()).Debug().Str("expr", b.String()).Msg("built demo")

	if err := explain(cmd, b.String()); err != nil {
		return err
	}
	rows := b.Eval()
	logging.Ctx(cmd.Context()).Info().Int("rows", len(rows)).Msg("evaluated demo")

	_, err := fmt.Fprintln(cmd.OutOrStdout(), rel.PrettyPrint(rows))
	return err
}

// explain prints the expression when --explain is set
func explain(cmd *cobra.Command, expr string) error {
	ok, err := cmd.Flags().GetBool("explain")
	if err != nil || !ok {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), expr)
	return err
}
