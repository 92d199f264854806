package cmd

import (
	"bytes"
	"strings"
	"testing"

	"perfumeHelper/pkg/cli"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func runAsk(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	t.Setenv("MYSQL_CONN_STRING", "")
	t.Setenv("LOG_LEVEL", "error")

	askCmd.Flags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})

	out := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetArgs(append([]string{"ask"}, args...))

	require.NoError(t, rootCmd.Execute())

	return out.String()
}

const header = cli.Banner + "\n" + cli.Subtitle + "\n\n"

func TestMain(m *testing.M) {
	initAskCmd()
	initVersionCmd()
	m.Run()
}

func TestAskFromStdin(t *testing.T) {
	out := runAsk(t, "female\n22\nyes\n")

	require.Contains(t, out, "Weather category: rainy")
	require.Contains(t, out, "1. Narciso Rodriguez For Her")
	require.Contains(t, out, "2. Jo Malone Wood Sage & Sea Salt")
	require.True(t, strings.HasPrefix(out, header))
	require.NotContains(t, out, "Enter gender", "prompts are hidden for piped input")
}

func TestAskFromFlags(t *testing.T) {
	out := runAsk(t, "", "--gender", "M", "--temperature", "33", "--rainy", "no")

	require.Contains(t, out, "Weather category: hot")
	require.Contains(t, out, "   Notes : citrus, musky")
}

func TestAskInputErrorExitsNormally(t *testing.T) {
	out := runAsk(t, "", "-g", "unknown", "-t", "20", "-r", "no")
	require.Equal(t, header+"Input error: Gender must be male or female.\n", out)

	out = runAsk(t, "", "-g", "male", "-t", "twenty", "-r", "no")
	require.Equal(t, header+"Input error: could not convert string to float: 'twenty'\n", out)
}

func TestVersion(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "perfumeHelper Version:\ndev\n", out.String())
}
