package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	v1 "github.com/khimalex/shoedryer/api/v1"
	"github.com/khimalex/shoedryer/internal/server"
	"github.com/khimalex/shoedryer/pkg/client"
)

var (
	ctlURL      string
	ctlWait     time.Duration
	ctlWorkers  int
	ctlRestart  bool
	ctlLimit    int
	ctlOffset   int
	ctlOutcomes []string
)

var ctlCmd = &cobra.Command{
	Use:   "ctl",
	Short: "Control a running shoedryer",
}

var ctlStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the pool status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		st, err := c.Status(cmd.Context())
		if err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), st)
		return nil
	},
}

var ctlStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a cohort of workers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		var workers *int
		if cmd.Flags().Changed("workers") {
			workers = &ctlWorkers
		}

		st, err := c.Start(cmd.Context(), workers, ctlRestart)
		if err != nil {
			return err
		}
		if ctlWait > 0 {
			if st, err = c.WaitForState(cmd.Context(), v1.PoolStatusStateRunning, ctlWait); err != nil {
				return err
			}
		}
		printStatus(cmd.OutOrStdout(), st)
		return nil
	},
}

var ctlStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running cohort",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		st, err := c.Stop(cmd.Context())
		if err != nil {
			return err
		}
		if ctlWait > 0 {
			if st, err = c.WaitForState(cmd.Context(), v1.PoolStatusStateIdle, ctlWait); err != nil {
				return err
			}
		}
		printStatus(cmd.OutOrStdout(), st)
		return nil
	},
}

var ctlCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the running Start command",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		st, err := c.Cancel(cmd.Context())
		if err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), st)
		return nil
	},
}

var ctlWorkersCmd = &cobra.Command{
	Use:   "workers COUNT",
	Short: "Set the worker count of the next cohort",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid worker count %q", args[0])
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		st, err := c.SetWorkers(cmd.Context(), n)
		if err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), st)
		return nil
	},
}

var ctlRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		list, err := c.Runs(cmd.Context(), ctlLimit, ctlOffset, ctlOutcomes...)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, run := range list.Runs {
			fmt.Fprintf(out, "%s  %s  workers=%d  iterations=%d  started=%s\n",
				run.Id, outcomeColor(run.Outcome).Sprint(run.Outcome), run.Workers, run.Iterations,
				run.StartedAt.Local().Format(time.DateTime))
		}
		fmt.Fprintf(out, "%d of %d runs\n", len(list.Runs), list.Total)
		return nil
	},
}

func init() {
	ctlCmd.PersistentFlags().StringVar(&ctlURL, "url", "http://localhost:8000", "base url of the control API")
	ctlCmd.PersistentFlags().StringVar(&cfg.Auth.Secret, "auth-secret", cfg.Auth.Secret, "HS256 secret used to sign a bearer token")
	ctlCmd.PersistentFlags().StringVar(&cfg.Auth.Issuer, "auth-issuer", cfg.Auth.Issuer, "issuer of the bearer token")
	ctlCmd.PersistentFlags().DurationVar(&cfg.Auth.TokenTTL, "token-ttl", cfg.Auth.TokenTTL, "lifetime of the bearer token")

	ctlStartCmd.Flags().IntVar(&ctlWorkers, "workers", 0, "worker count of the new cohort")
	ctlStartCmd.Flags().BoolVar(&ctlRestart, "restart", false, "stop and drain a running cohort first")
	ctlStartCmd.Flags().DurationVar(&ctlWait, "wait", 0, "wait up to this long for the pool to run")
	ctlStopCmd.Flags().DurationVar(&ctlWait, "wait", 0, "wait up to this long for the workers to drain")

	ctlRunsCmd.Flags().IntVar(&ctlLimit, "limit", 0, "maximum number of runs")
	ctlRunsCmd.Flags().IntVar(&ctlOffset, "offset", 0, "number of runs to skip")
	ctlRunsCmd.Flags().StringArrayVar(&ctlOutcomes, "outcome", nil, "filter by outcome (repeatable)")

	ctlCmd.AddCommand(ctlStatusCmd, ctlStartCmd, ctlStopCmd, ctlCancelCmd, ctlWorkersCmd, ctlRunsCmd)
	rootCmd.AddCommand(ctlCmd)
}

// newClient signs a token when a secret is configured.
func newClient() (*client.Client, error) {
	var opts []client.Option
	if cfg.Auth.Secret != "" {
		token, err := server.SignToken(cfg.Auth.Secret, cfg.Auth.Issuer, "ctl", cfg.Auth.TokenTTL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithToken(token))
	}
	return client.NewClient(ctlURL, opts...)
}

func printStatus(w io.Writer, st *v1.PoolStatus) {
	fmt.Fprintf(w, "%s %s\n", color.New(color.Bold).Sprint("state:"), stateColor(st.State).Sprint(st.State))
	fmt.Fprintf(w, "workers: %d/%d (live %d, draining cohorts %d)\n", st.Workers, st.MaxWorkers, st.LiveWorkers, st.Draining)
	if st.CohortId != nil {
		fmt.Fprintf(w, "cohort: %s\n", *st.CohortId)
	}
	fmt.Fprintf(w, "commands: start=%s stop=%s cancel=%s\n", gate(st.Commands.Start), gate(st.Commands.Stop), gate(st.Commands.Cancel))
	if st.LastRun != nil {
		fmt.Fprintf(w, "last run: %s %s (%d iterations)\n", st.LastRun.Id, outcomeColor(st.LastRun.Outcome).Sprint(st.LastRun.Outcome), st.LastRun.Iterations)
	}
}

func stateColor(s v1.PoolStatusState) *color.Color {
	switch s {
	case v1.PoolStatusStateRunning:
		return color.New(color.FgCyan)
	case v1.PoolStatusStateStarting, v1.PoolStatusStateStopping:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func outcomeColor(o v1.RunOutcome) *color.Color {
	switch o {
	case v1.Faulted:
		return color.New(color.FgRed)
	case v1.Canceled:
		return color.New(color.FgYellow)
	case v1.Completed:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgCyan)
	}
}

func gate(open bool) string {
	if open {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}
