package util

import (
	"fmt"

	"golang.org/x/crypto/ssh/terminal"
)

// returns the first non-empty string, or the empty string
func CoalesceStr(strs ...string) string {
	for _, s := range strs {
		if len(s) > 0 {
			return s
		}
	}
	return ""
}

// prompts user for input on the console, hiding input
func PromptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	d, err := terminal.ReadPassword(0)
	fmt.Println()
	return string(d), err
}

// reports whether stdin is attached to a terminal, i.e. whether
// prompting the operator is possible at all
func IsInteractive() bool {
	return terminal.IsTerminal(0)
}
