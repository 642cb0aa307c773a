package helpers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PromptForChoice prompts for a free-form answer, returning defaultValue on empty input
func PromptForChoice(out io.Writer, reader *bufio.Reader, promptText string, defaultValue string) string {
	fmt.Fprintf(out, "%s [%s]: ", promptText, defaultValue)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)

	if line == "" {
		return defaultValue
	}
	return line
}

// PromptForInt prompts for a non-negative integer, re-using defaultValue on empty or bad input
func PromptForInt(out io.Writer, reader *bufio.Reader, promptText string, defaultValue int) int {
	answer := PromptForChoice(out, reader, promptText, strconv.Itoa(defaultValue))
	n, err := strconv.Atoi(answer)
	if err != nil || n < 0 {
		fmt.Fprintf(out, "Invalid number %q, keeping %d\n", answer, defaultValue)
		return defaultValue
	}
	return n
}

// PromptForYesNo prompts the user for a yes/no question
func PromptForYesNo(out io.Writer, reader *bufio.Reader, promptText string, defaultValue bool) bool {
	label := "y/N"
	if defaultValue {
		label = "Y/n"
	}
	fmt.Fprintf(out, "%s [%s]: ", promptText, label)

	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))

	if line == "" {
		return defaultValue
	}
	return line == "y" || line == "yes"
}

// PromptForConfirmation asks the user to confirm a destructive action
func PromptForConfirmation(out io.Writer, reader *bufio.Reader, question string) bool {
	return PromptForYesNo(out, reader, question, false)
}

// PrintWarnings outputs a list of warning messages to the writer
func PrintWarnings(out io.Writer, warnings []string) {
	for _, warning := range warnings {
		warning = strings.TrimSpace(warning)
		if warning == "" {
			continue
		}
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
}
