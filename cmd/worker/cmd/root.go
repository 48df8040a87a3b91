package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"bitbucket.org/Amartha/go-fp-reconciliation/cmd/setup"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common/graceful"
	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application for reconciliation maintenance tasks",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var flagReconciliationID = "reconciliation"

func init() {
	rootCmd.AddCommand(autoMatchCmd)
	rootCmd.AddCommand(recalculateCmd)

	autoMatchCmd.Flags().StringP(flagReconciliationID, "r", "", "reconciliation id")
	autoMatchCmd.MarkFlagRequired(flagReconciliationID)

	recalculateCmd.Flags().StringP(flagReconciliationID, "r", "", "reconciliation id")
	recalculateCmd.MarkFlagRequired(flagReconciliationID)
}

var autoMatchCmd = &cobra.Command{
	Use:     "automatch",
	Short:   "Run the matching engine over the unmatched lines of a reconciliation",
	Long:    ``,
	Example: "worker automatch -r={reconciliation-id}",
	Run:     runAutoMatch,
}

func runAutoMatch(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	reconciliationID, _ := ccmd.Flags().GetString(flagReconciliationID)

	s, stopper, err := setup.Init("worker")
	if err != nil {
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stopper...)

	result, err := s.Service.Matching.RunAutoMatch(ctx, reconciliationID, nil)
	if err != nil {
		xlog.Fatalf(ctx, "auto match failed: %v", err)
	}

	xlog.Infof(ctx, "auto match finished: %d of %d lines matched, variance %s",
		len(result.Matches), result.LinesConsidered, result.Variance.Variance.String())
}

var recalculateCmd = &cobra.Command{
	Use:     "recalculate",
	Short:   "Recalculate and persist the variance of a reconciliation",
	Long:    ``,
	Example: "worker recalculate -r={reconciliation-id}",
	Run:     runRecalculate,
}

func runRecalculate(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	reconciliationID, _ := ccmd.Flags().GetString(flagReconciliationID)

	s, stopper, err := setup.Init("worker")
	if err != nil {
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stopper...)

	result, err := s.Service.Summary.RecalculateVariance(ctx, reconciliationID)
	if err != nil {
		xlog.Fatalf(ctx, "recalculate variance failed: %v", err)
	}

	out, _ := json.Marshal(result)
	fmt.Println(string(out))
}
