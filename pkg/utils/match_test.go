package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesCommand(t *testing.T) {
	require.True(t, MatchesCommand("/perfume", "/perfume"))
	require.True(t, MatchesCommand("/Perfume male 20", "perfume"))
	require.True(t, MatchesCommand("  /perfume@scent_bot female 12 yes", "/perfume"))
	require.False(t, MatchesCommand("/perfumes", "/perfume"))
	require.False(t, MatchesCommand("perfume", "/perfume"))
	require.False(t, MatchesCommand("", "/perfume"))
}

func TestSplitCommand(t *testing.T) {
	cmd, args := SplitCommand("/perfume   male 22.5 yes")
	require.Equal(t, "/perfume", cmd)
	require.Equal(t, []string{"male", "22.5", "yes"}, args)

	cmd, args = SplitCommand("female")
	require.Empty(t, cmd)
	require.Equal(t, []string{"female"}, args)
}
