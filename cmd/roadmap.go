package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/ai-navigator/internal/catalog"
	"github.com/sells-group/ai-navigator/internal/report"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Print the phased implementation roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		r, err := catalog.LoadRoadmap()
		if err != nil {
			return err
		}
		return report.RenderRoadmap(cmd.OutOrStdout(), r, format)
	},
}

func init() {
	roadmapCmd.Flags().String("format", report.FormatHuman, "output format: human, json or yaml")
	rootCmd.AddCommand(roadmapCmd)
}
