package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword prompts on stderr and reads a secret without echo.
var readPassword = func(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprint(os.Stderr, "\n")
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(bytes), nil
}

// secretOrPrompt returns flagValue when set, otherwise prompts for it.
func secretOrPrompt(flagValue, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	secret, err := readPassword(prompt)
	if err != nil {
		return "", err
	}
	if secret == "" {
		return "", fmt.Errorf("%s cannot be empty", strings.ToLower(strings.TrimSuffix(prompt, ": ")))
	}
	return secret, nil
}
