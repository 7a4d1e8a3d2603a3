// Copyright (c) 2026 Netskope, Inc. All rights reserved.

package credentials

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// TokenEnvVar is the environment variable consulted when no explicit token is given.
const TokenEnvVar = "NOTION_TOKEN"

var (
	// ErrTokenNotSet is returned when no token was provided and interactive
	// prompting is disallowed.
	ErrTokenNotSet = fmt.Errorf("missing required env var: %s", TokenEnvVar)
	// ErrEmptyToken is returned when the interactive prompt yields an empty value.
	ErrEmptyToken = fmt.Errorf("%s is empty", TokenEnvVar)
)

// promptToken reads the token from the terminal with echo disabled.
// Overridable in tests.
var promptToken = func(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ResolveToken returns the Notion integration token. Precedence: explicit
// value, then the NOTION_TOKEN environment variable, then (when allowed) a
// masked interactive prompt.
func ResolveToken(explicit string, allowPrompt bool) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token, nil
	}

	if !allowPrompt {
		return "", ErrTokenNotSet
	}

	token, err := promptToken("Enter " + TokenEnvVar + ": ")
	if err != nil {
		return "", fmt.Errorf("failed to read token from prompt: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}
