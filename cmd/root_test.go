package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/ai-navigator/internal/config"
	"github.com/sells-group/ai-navigator/internal/model"
	"github.com/sells-group/ai-navigator/internal/scorer"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"serve", "calculate", "advise", "roadmap", "mcp"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "navigator", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestAdviseCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range adviseCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"tools", "roi", "risk"} {
		assert.True(t, names[name], "expected advise subcommand %q", name)
	}
}

func TestCalculateCommand_DriverFlagDefaults(t *testing.T) {
	tests := []struct {
		flag string
		def  string
	}{
		{"customer-new-revenue", "10"},
		{"customer-security", "9"},
		{"customer-model", "8"},
		{"internal-model", "5"},
		{"internal-adoption", "7"},
		{"internal-efficiency", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flag := calculateCmd.Flags().Lookup(tt.flag)
			require.NotNil(t, flag)
			assert.Equal(t, tt.def, flag.DefValue)
		})
	}
}

func TestDriverUsage_ShowsUnits(t *testing.T) {
	spec, ok := scorer.Option(model.OptionCustomer)
	require.True(t, ok)

	revenue, _ := spec.Driver("new_revenue")
	assert.Equal(t, "New Revenue & Cross-Sell Lift (0% to 20%)", driverUsage(revenue))
	brand, _ := spec.Driver("brand")
	assert.Equal(t, "Brand Enhancement Value (1 to 10)", driverUsage(brand))

	flag := calculateCmd.Flags().Lookup("customer-new-revenue")
	require.NotNil(t, flag)
	assert.Equal(t, driverUsage(revenue), flag.Usage)
}

func TestInputsFromFlags(t *testing.T) {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addCalculateFlags(f)
	require.NoError(t, f.Parse([]string{"--customer-brand", "9", "--internal-data", "2"}))

	a, b, err := inputsFromFlags(f)
	require.NoError(t, err)

	assert.Equal(t, model.OptionCustomer, a.ID)
	assert.Equal(t, 9, a.Drivers["brand"])
	assert.Equal(t, 10, a.Drivers["new_revenue"])
	assert.Equal(t, model.OptionInternal, b.ID)
	assert.Equal(t, 2, b.Drivers["data"])
	assert.Equal(t, 7, b.Drivers["adoption"])
}

func newCalculateCmd(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	cfg = &config.Config{}

	cmd := &cobra.Command{Use: "calculate", RunE: runCalculate}
	addCalculateFlags(cmd.Flags())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd, &out
}

func TestCalculate_DefaultsHuman(t *testing.T) {
	cmd, out := newCalculateCmd(t)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Recommended Pilot: Internal Advisor-Assist Tool")
	assert.Contains(t, out.String(), "Tier 2: Strategic Pilot")
}

func TestCalculate_JSONCustomerWins(t *testing.T) {
	cmd, out := newCalculateCmd(t,
		"--format", "json",
		"--customer-new-revenue", "20",
		"--customer-model", "1",
		"--customer-security", "1",
		"--internal-adoption", "10",
	)
	require.NoError(t, cmd.Execute())

	var rec model.Recommendation
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, model.OptionCustomer, rec.Winner)
	assert.NotEmpty(t, rec.RiskProfile)
}

func TestCalculate_OutOfRangeRejected(t *testing.T) {
	cmd, _ := newCalculateCmd(t, "--customer-brand", "11")
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brand")
}

func TestCalculate_UnknownFormat(t *testing.T) {
	cmd, _ := newCalculateCmd(t, "--format", "csv")
	assert.Error(t, cmd.Execute())
}

func TestCalculate_WritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verdict.xlsx")
	cmd, out := newCalculateCmd(t, "--verdict", "--xlsx", path)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "THE VERDICT")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	wb, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	assert.Contains(t, wb.Sheet, "Summary")
	assert.Contains(t, wb.Sheet, "Roadmap")
}

func TestRoadmapCommand_JSON(t *testing.T) {
	cmd := &cobra.Command{Use: "roadmap", RunE: roadmapCmd.RunE}
	cmd.Flags().String("format", "json", "")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	var r struct {
		Phases []map[string]any `json:"phases"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.NotEmpty(t, r.Phases)
}

func stubConfig() *config.Config {
	return &config.Config{Advisor: config.AdvisorConfig{
		Provider:       "stub",
		RequestsPerSec: 10,
		MaxAttempts:    1,
	}}
}

func TestAdviseTools_Stub(t *testing.T) {
	color.NoColor = true
	cfg = stubConfig()

	cmd := &cobra.Command{Use: "tools", RunE: adviseToolsCmd.RunE}
	cmd.Flags().String("role", "", "")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--role", "relationship manager"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "AI tools for relationship manager")
	assert.Contains(t, out.String(), "1. ")
}

func TestAdviseROI_InvalidInputReportsProblems(t *testing.T) {
	cfg = stubConfig()

	cmd := &cobra.Command{Use: "roi", RunE: adviseROICmd.RunE}
	for _, name := range []string{"tool", "description", "benefits", "costs"} {
		cmd.Flags().String(name, "", "")
	}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--tool", "Chatbot", "--description", "short"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
}

func TestAdvise_RequiresAnthropicKey(t *testing.T) {
	cfg = &config.Config{Advisor: config.AdvisorConfig{
		Provider:       "anthropic",
		RequestsPerSec: 1,
		MaxAttempts:    1,
	}, Anthropic: config.AnthropicConfig{Model: "claude-haiku-4-5-20251001"}}

	cmd := &cobra.Command{Use: "risk", RunE: adviseRiskCmd.RunE}
	cmd.Flags().String("tool", "", "")
	cmd.Flags().String("roi", "", "")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--tool", "Chatbot", "--roi", "Strong payback"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic.key")
}

func TestUserFacing(t *testing.T) {
	assert.Empty(t, userFacing(nil))
	assert.Empty(t, userFacing(assert.AnError))
}
