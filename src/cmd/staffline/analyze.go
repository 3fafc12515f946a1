package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"staffline-agent/src/analyze"
	"staffline-agent/src/sanitize"
)

// analyzeContractCmd represents the analyze-contract command
var analyzeContractCmd = &cobra.Command{
	Use:   "analyze-contract FILE",
	Short: "Extract requirements, risks and onboarding steps from a contract",
	Long: `Reads contract text from FILE ("-" for stdin) and prints the compliance analysis
as JSON: extracted requirements, risk assessment and the onboarding workflow.

Example:
  staffline analyze-contract msa.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}

		analyzer, err := analyze.NewAnalyzer(appConfig.AnalysisCacheSize)
		if err != nil {
			return err
		}
		result, err := analyzer.AnalyzeContract(text)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

// analyzeResumeCmd represents the analyze-resume command
var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume FILE",
	Short: "Extract a candidate profile and score it against a job",
	Long: `Reads resume text from FILE ("-" for stdin) and prints the extracted profile,
skill match and recommendations as JSON. Without --job the match score is 0.

Example:
  staffline analyze-resume resume.txt --job job.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resume, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}

		var job string
		if jobFile, _ := cmd.Flags().GetString("job"); jobFile != "" {
			if job, err = readInput(cmd.InOrStdin(), jobFile); err != nil {
				return err
			}
		}

		analyzer, err := analyze.NewAnalyzer(appConfig.AnalysisCacheSize)
		if err != nil {
			return err
		}
		result, err := analyzer.AnalyzeResume(resume, job)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

// jobDescriptionCmd represents the job-description command
var jobDescriptionCmd = &cobra.Command{
	Use:   "job-description",
	Short: "Generate a job posting",
	Long: `Fills the job posting template. Missing values fall back to defaults.

Example:
  staffline job-description --title "Backend Engineer" --skills Go,PostgreSQL --location Remote`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		skills, _ := cmd.Flags().GetStringSlice("skills")
		location, _ := cmd.Flags().GetString("location")

		desc := analyze.GenerateJobDescription(sanitize.Clean(title), sanitize.CleanList(skills), sanitize.Clean(location))
		_, err := fmt.Fprint(cmd.OutOrStdout(), desc)
		return err
	},
}
