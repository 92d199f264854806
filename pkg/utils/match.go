package utils

import "strings"

const CommandPrefix = "/"

// MatchesCommand checks if the message starts with the command word, e.g. "/perfume male 20" matches "/perfume".
func MatchesCommand(msg, command string) bool {
	cmd, _ := SplitCommand(msg)

	return cmd != "" && strings.EqualFold(cmd, CommandPrefix+strings.TrimPrefix(command, CommandPrefix))
}

// SplitCommand separates the leading command from its whitespace separated arguments.
// Telegram group mentions like "/perfume@some_bot" are reduced to "/perfume".
func SplitCommand(msg string) (command string, args []string) {
	words := strings.Fields(msg)
	if len(words) == 0 || !strings.HasPrefix(words[0], CommandPrefix) {
		return "", words
	}

	command, _, _ = strings.Cut(words[0], "@")

	return command, words[1:]
}
