package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/khimalex/shoedryer/api/v1"
	"github.com/khimalex/shoedryer/internal/report"
)

var (
	reportOutput string
	reportLimit  int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export journaled runs to an xlsx workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		list, err := c.Runs(cmd.Context(), reportLimit, 0)
		if err != nil {
			return err
		}

		runs := make([]v1.Run, 0, len(list.Runs))
		for _, r := range list.Runs {
			run, err := c.Run(cmd.Context(), r.Id)
			if err != nil {
				return err
			}
			runs = append(runs, *run)
		}

		f, err := os.Create(reportOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", reportOutput, err)
		}
		if err := report.Write(f, runs); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		zap.S().Named("report").Debugw("report written", "path", reportOutput, "runs", len(runs))
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d runs to %s\n", color.GreenString("exported"), len(runs), reportOutput)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "shoedryer-runs.xlsx", "output workbook")
	reportCmd.Flags().IntVar(&reportLimit, "limit", 100, "maximum number of runs")
	reportCmd.Flags().StringVar(&ctlURL, "url", "http://localhost:8000", "base url of the control API")
	reportCmd.Flags().StringVar(&cfg.Auth.Secret, "auth-secret", cfg.Auth.Secret, "HS256 secret used to sign a bearer token")
	reportCmd.Flags().StringVar(&cfg.Auth.Issuer, "auth-issuer", cfg.Auth.Issuer, "issuer of the bearer token")
	reportCmd.Flags().DurationVar(&cfg.Auth.TokenTTL, "token-ttl", cfg.Auth.TokenTTL, "lifetime of the bearer token")

	rootCmd.AddCommand(reportCmd)
}
