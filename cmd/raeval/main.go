// raeval evaluates relational algebra expressions, either the built in demo
// expression or a plan read from a YAML file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonlawlor/rel/internal/logging"
)

func main() {
	rootCmd := newRootCmd()
	registerDemoCmd(rootCmd)
	registerPlanCmd(rootCmd)

	if err := run(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

// run executes rootCmd and reports its error on the error stream of the
// command.  The error is not logged, since it may be the error of setting up
// the logger.
func run(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "raeval",
		Short:             "Evaluate relational algebra expressions",
		Long:              "Evaluate relational algebra expressions over in memory relations and print the result as a table.",
		PersistentPreRunE: loggingPreRunE,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}
	rootCmd.PersistentFlags().String("log-level", "warn", `verbosity of logging ("trace", "debug", "info", "warn", "error")`)
	rootCmd.PersistentFlags().Bool("explain", false, "print the expression tree before the result")
	return rootCmd
}

// loggingPreRunE installs a logger writing to the error stream of the command
func loggingPreRunE(cmd *cobra.Command, _ []string) error {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	logging.SetGlobalLogger(logger)
	return nil
}
