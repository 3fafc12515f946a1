// Package main provides the staffline CLI.
// It runs the analysis tools directly and drives the agent pipeline in local or agentic mode.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"staffline-agent/src/ats"
	"staffline-agent/src/config"
	"staffline-agent/src/logger"
)

var (
	// Application configuration
	appConfig *config.Config
	// Logger for the current command; silent while the TUI owns the terminal
	log logger.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "staffline",
	Short: "Staffline - agent-based staffing workflow automation",
	Long: `Staffline analyzes client contracts and resumes and coordinates three agents
through a staffing workflow:

- Contract Compliance: extracts requirements and risks from a contract
- Recruiting: matches candidates from the applicant tracking system
- Project Management: plans capacity for the matched candidates

It supports two modes:
- Local Mode: in-memory broker, every agent in this process (default)
- Agentic Mode: Redpanda + Postgres or Redis, agents run in staffline-agents

Mode is auto-detected based on the REDPANDA_BROKERS environment variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.LoadFromEnv()
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		log = newLogger(cmd)
		return nil
	},
}

// newLogger returns a silent logger when the command is about to start the TUI.
func newLogger(cmd *cobra.Command) logger.Logger {
	if flag := cmd.Flags().Lookup("tui"); (flag != nil && flag.Value.String() == "true") || cmd.Name() == "view" {
		return logger.NewSilentLogger()
	}
	return logger.New(logger.Options{Environment: appConfig.AppEnv, Level: appConfig.LogLevel})
}

func init() {
	rootCmd.AddCommand(analyzeContractCmd)
	rootCmd.AddCommand(analyzeResumeCmd)
	rootCmd.AddCommand(jobDescriptionCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(viewCmd)

	analyzeResumeCmd.Flags().StringP("job", "j", "", "File containing the job description to match against")

	jobDescriptionCmd.Flags().StringP("title", "t", "", "Job title")
	jobDescriptionCmd.Flags().StringSliceP("skills", "s", nil, "Required skills (comma separated or repeated)")
	jobDescriptionCmd.Flags().StringP("location", "l", "", "Work location")

	simulateCmd.Flags().Bool("tui", false, "Browse the results in the interactive viewer")
	simulateCmd.Flags().Bool("json", false, "Print the full workflow result as JSON")

	submitCmd.Flags().BoolP("wait", "w", false, "Wait for the agents to finish (always on in local mode)")
	submitCmd.Flags().Duration("timeout", defaultWaitTimeout, "How long to wait for the request to finish")

	statusCmd.Flags().Bool("json", false, "Print status, coordinations and recommendations as JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", ats.WrapError(err))
		os.Exit(1)
	}
}
