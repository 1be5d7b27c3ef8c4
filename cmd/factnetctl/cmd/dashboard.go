package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"factnet/internal/output"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show admin dashboard counters",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().Bool("json", false, "output as JSON")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	stats, err := newAPIClient().GetDashboardStats(cmd.Context())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return outputJSON(stats)
	}

	table := output.NewTable([]string{"METRIC", "VALUE"})
	table.AddRow([]string{"Total articles", itoa(stats.TotalArticles)})
	table.AddRow([]string{"Verified articles", itoa(stats.VerifiedArticles)})
	table.AddRow([]string{"Pending validation", itoa(stats.PendingValidation)})
	table.AddRow([]string{"Average fact-check score", formatScore(stats.AverageFactCheckScore)})
	table.Render()

	return nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}
