package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"staffline-agent/src/contracts"
	"staffline-agent/src/coordinate"
	"staffline-agent/src/pipeline"
	"staffline-agent/src/store"
	"staffline-agent/src/tui"
)

const (
	defaultWaitTimeout = 30 * time.Second
	pollInterval       = 200 * time.Millisecond
)

var errNoPersistentStore = errors.New("this command reads results from Postgres or Redis; set POSTGRES_DSN or REDIS_URL")

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate [ATS]",
	Short: "Run the full staffing workflow in-process",
	Long: `Pulls the first contract, job and candidates from the named applicant tracking
system (ATS_SYSTEM when omitted) and runs contract compliance, candidate matching and
capacity planning in order.

By default a summary is printed. Use --json for the full result or --tui to browse it.

Example:
  staffline simulate lever
  staffline simulate workday --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		label := systemArg(args, appConfig.ATSSystem)

		coord, err := pipeline.NewCoordinator(ctx, appConfig, log)
		if err != nil {
			return err
		}
		session := coordinate.NewSession(uuid.Must(uuid.NewV7()).String())

		result, err := coord.SimulateFullWorkflow(ctx, session, label)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), result)
		}
		if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
			return tui.Start(tui.ReportFromWorkflow(result))
		}
		printWorkflowSummary(cmd.OutOrStdout(), result)
		return nil
	},
}

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit [ATS]",
	Short: "Submit a contract to the agent pipeline",
	Long: `Publishes the first contract from the named applicant tracking system to the agents.

In local mode the agents run in this process, so submit always waits for them to finish.
In agentic mode the request id is printed and the command exits unless --wait is given;
use 'staffline status' or 'staffline view' to follow it.

Example:
  staffline submit greenhouse
  staffline submit lever --wait`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		label := systemArg(args, appConfig.ATSSystem)
		mode := pipeline.DetectMode(appConfig)
		log.Info("[CLI] Submitting to %s in %s mode", label, mode)

		p, err := pipeline.New(ctx, appConfig, log)
		if err != nil {
			return err
		}
		defer p.Close()

		requestID, err := p.Submit(ctx, label)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Submitted request %s\n", requestID)

		wait, _ := cmd.Flags().GetBool("wait")
		if mode == pipeline.AgenticMode && !wait {
			fmt.Fprintln(cmd.OutOrStdout(), "   Follow it with: staffline status "+requestID)
			return nil
		}

		timeout, _ := cmd.Flags().GetDuration("timeout")
		waitCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if _, err := pipeline.Wait(waitCtx, p, requestID, pollInterval); err != nil {
			return err
		}
		report, err := loadReport(ctx, p, requestID)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), report)
		return nil
	},
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status REQUEST_ID",
	Short: "Show the progress and results of a submitted request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openPersistentStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := loadReport(ctx, storeResults{st}, args[0])
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), report)
		}
		printReport(cmd.OutOrStdout(), report)
		return nil
	},
}

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view REQUEST_ID",
	Short: "Browse a submitted request in the interactive viewer",
	Long: `Opens the report viewer for a request. While the agents are still working the
viewer refreshes every second.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openPersistentStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		return tui.StartWithLoader(func() (tui.Report, error) {
			return loadReport(ctx, storeResults{st}, args[0])
		})
	},
}

// results is the read side of a pipeline.
type results interface {
	Status(ctx context.Context, requestID string) (*contracts.RequestStatus, error)
	Coordinations(ctx context.Context, requestID string) ([]contracts.AgentCoordination, error)
	Recommendations(ctx context.Context, requestID string) ([]contracts.Recommendation, error)
}

// storeResults reads results straight from a store.
type storeResults struct {
	store.Store
}

func (s storeResults) Status(ctx context.Context, requestID string) (*contracts.RequestStatus, error) {
	return s.GetRequestStatus(ctx, requestID)
}

func (s storeResults) Coordinations(ctx context.Context, requestID string) ([]contracts.AgentCoordination, error) {
	return s.GetCoordinations(ctx, requestID)
}

func (s storeResults) Recommendations(ctx context.Context, requestID string) ([]contracts.Recommendation, error) {
	return s.GetRecommendations(ctx, requestID)
}

// loadReport reads everything recorded for a request.
func loadReport(ctx context.Context, r results, requestID string) (tui.Report, error) {
	status, err := r.Status(ctx, requestID)
	if errors.Is(err, store.ErrNotFound) {
		return tui.Report{}, fmt.Errorf("request %s not found", requestID)
	}
	if err != nil {
		return tui.Report{}, err
	}
	coords, err := r.Coordinations(ctx, requestID)
	if err != nil {
		return tui.Report{}, err
	}
	recs, err := r.Recommendations(ctx, requestID)
	if err != nil {
		return tui.Report{}, err
	}
	return tui.ReportFromStore(status, coords, recs), nil
}

func openPersistentStore(ctx context.Context) (store.Store, error) {
	if !appConfig.HasPersistentStore() {
		return nil, errNoPersistentStore
	}
	return store.Open(ctx, appConfig)
}

// systemArg returns the ATS named on the command line, or the configured default.
func systemArg(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}
