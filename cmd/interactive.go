package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var stdin = bufio.NewReader(os.Stdin)

// promptString asks for a single line of input, returning the default when
// the user just presses enter.
func promptString(label, defaultValue string) (string, error) {
	fmt.Printf("%s [%s]: ", label, defaultValue)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// promptConfirm asks a yes/no question.
func promptConfirm(label string, defaultValue bool) (bool, error) {
	hint := "Y/n"
	if !defaultValue {
		hint = "y/N"
	}
	fmt.Printf("%s [%s]: ", label, hint)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read input: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultValue, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return defaultValue, nil
	}
}
