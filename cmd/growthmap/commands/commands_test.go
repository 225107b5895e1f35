package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/growthmap/internal/contracts"
)

// resetFlags clears flag state left over from earlier Execute calls on the shared rootCmd
func resetFlags() {
	buildSectors, buildJSON = nil, false
	seedFlag, universeFlag = 0, ""

	cmds := append([]*cobra.Command{rootCmd}, rootCmd.Commands()...)
	for _, c := range cmds {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		c.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

func runWithLogs(t *testing.T, args ...string) (string, string) {
	t.Helper()
	resetFlags()

	var out, logs bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&logs)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String(), logs.String()
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	out, _ := runWithLogs(t, args...)
	return out
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"classify", "21", "1.2"}, "STRONG BUY"},
		{[]string{"classify", "16", "3.0"}, "HOLD"},
		{[]string{"classify", "18", "2.0"}, "WATCH"},
	}

	for _, tt := range tests {
		assert.Contains(t, run(t, tt.args...), tt.want)
	}
}

func TestBuildCommand_JSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var ds contracts.Dataset
	require.NoError(t, json.Unmarshal([]byte(run(t, "build", "--json", "--seed", "42")), &ds))

	assert.Equal(t, int64(42), ds.Seed)
	assert.Equal(t, 30, ds.Len())
}

func TestBuildCommand_JSONKeepsLogsOffStdout(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	out, logs := runWithLogs(t, "build", "--json", "--seed", "42")

	dec := json.NewDecoder(bytes.NewBufferString(out))
	var ds contracts.Dataset
	require.NoError(t, dec.Decode(&ds))
	assert.False(t, dec.More(), "stdout must hold a single JSON document")
	assert.Equal(t, 30, ds.Len())

	assert.Contains(t, logs, "Built metrics dataset")
}

func TestBuildCommand_JSONSectorFilter(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var ds contracts.Dataset
	require.NoError(t, json.Unmarshal([]byte(run(t, "build", "--json", "--sector", "AI & Cloud")), &ds))

	require.Equal(t, 4, ds.Len())
	for i, rec := range ds.Records {
		assert.Equal(t, contracts.SectorAICloud, rec.Sector)
		if i > 0 {
			assert.GreaterOrEqual(t, ds.Records[i-1].MarketCapB, rec.MarketCapB)
		}
	}
}

func TestBuildCommand_TableSectorFilter(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	out := run(t, "build", "--sector", "Consumer Tech")
	for _, ticker := range []string{"AAPL", "TSLA", "AMZN"} {
		assert.Contains(t, out, ticker)
	}
	assert.NotContains(t, out, "NVDA")
}

func TestDetailCommand(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	out := run(t, "detail", "NVDA", "--seed", "42")
	assert.Contains(t, out, "NVDA · AI & Cloud")
	assert.Contains(t, out, "#AI #DataCenter #Generative")
}
