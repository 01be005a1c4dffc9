package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sells-group/ai-navigator/internal/advisor"
	"github.com/sells-group/ai-navigator/internal/report"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Ask the AI advisor for tools, ROI or a risk assessment",
}

var adviseToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Recommend AI tools for a banking role",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		return withAdvisor(cmd, "Finding tools for "+role, func(ctx context.Context, adv advisor.Advisor) error {
			tools, err := adv.RecommendTools(ctx, role)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			color.New(color.Bold).Fprintf(out, "AI tools for %s\n", role)
			for i, t := range tools {
				fmt.Fprintf(out, "  %d. %s\n", i+1, t)
			}
			return nil
		})
	},
}

var adviseROICmd = &cobra.Command{
	Use:   "roi",
	Short: "Score the opportunity and risk of a pilot project",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		var req advisor.ROIRequest
		req.ToolName, _ = f.GetString("tool")
		req.Description, _ = f.GetString("description")
		req.Benefits, _ = f.GetString("benefits")
		req.Costs, _ = f.GetString("costs")

		return withAdvisor(cmd, "Analyzing "+req.ToolName, func(ctx context.Context, adv advisor.Advisor) error {
			roi, err := adv.AnalyzeROI(ctx, req)
			if err != nil {
				return err
			}
			printROI(cmd.OutOrStdout(), req.ToolName, roi)
			return nil
		})
	},
}

var adviseRiskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Write a risk assessment for a tool and its ROI summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, _ := cmd.Flags().GetString("tool")
		roiText, _ := cmd.Flags().GetString("roi")

		return withAdvisor(cmd, "Assessing risk for "+tool, func(ctx context.Context, adv advisor.Advisor) error {
			text, err := adv.AssessRisk(ctx, tool, roiText)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		})
	},
}

// withAdvisor builds the configured advisor and runs fn behind a spinner.
func withAdvisor(cmd *cobra.Command, status string, fn func(context.Context, advisor.Advisor) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cfg.Validate("advise"); err != nil {
		return err
	}
	adv, err := advisor.New(cfg)
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " " + status + "..."
	s.Start()
	err = fn(ctx, adv)
	s.Stop()

	if aerr := userFacing(err); aerr != "" {
		color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), aerr)
	}
	return err
}

// userFacing returns the message shown for advisor failures, or "".
func userFacing(err error) string {
	var aerr *advisor.Error
	if !errors.As(err, &aerr) {
		return ""
	}
	if aerr.Retryable {
		return aerr.Message + " (retryable)"
	}
	return aerr.Message
}

func printROI(w io.Writer, tool string, roi *advisor.ROIAnalysis) {
	color.New(color.Bold).Fprintf(w, "ROI analysis: %s\n", tool)
	fmt.Fprintf(w, "  Opportunity: %s\n", report.Percent(roi.OpportunityScore))
	fmt.Fprintf(w, "  Risk:        %s\n\n", report.Percent(roi.RiskScore))
	fmt.Fprintln(w, roi.Assessment)
}

func init() {
	adviseToolsCmd.Flags().String("role", "", "banking role, e.g. relationship manager")
	_ = adviseToolsCmd.MarkFlagRequired("role")

	f := adviseROICmd.Flags()
	f.String("tool", "", "AI tool name")
	f.String("description", "", "project description")
	f.String("benefits", "", "projected benefits")
	f.String("costs", "", "estimated costs")
	_ = adviseROICmd.MarkFlagRequired("tool")

	adviseRiskCmd.Flags().String("tool", "", "AI tool name")
	adviseRiskCmd.Flags().String("roi", "", "ROI summary to assess")

	adviseCmd.AddCommand(adviseToolsCmd, adviseROICmd, adviseRiskCmd)
	rootCmd.AddCommand(adviseCmd)
}
