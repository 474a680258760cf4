package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonlawlor/rel"
	"github.com/jonlawlor/rel/internal/logging"
	"github.com/jonlawlor/rel/plan"
)

func registerPlanCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "plan FILE",
		Short: "Evaluate a YAML plan",
		Long:  "Evaluate a YAML plan over the demo relations and funcs.",
		Example: `  raeval plan cmd/raeval/testdata/scenario.yaml
  raeval plan --explain --log-level debug my-plan.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: planRun,
	})
}

func planRun(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading plan: %w", err)
	}

	reg, err := demoRegistry()
	if err != nil {
		return err
	}
	e, err := plan.Load(cmd.Context(), data, reg)
	if err != nil {
		return err
	}

	if err := explain(cmd, e.String()); err != nil {
		return err
	}
	rows, err := e.Eval()
	if err != nil {
		return fmt.Errorf("evaluating plan: %w", err)
	}
	logging.Ctx(cmd.Context()).Info().Str("file", args[0]).Int("rows", len(rows)).Msg("evaluated plan")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rel.PrettyPrint(rows))
	return err
}
