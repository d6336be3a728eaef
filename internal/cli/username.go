package cli

import (
	"fmt"

	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/branding"
	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/config"
)

// resolveUsername picks the username from the flag value or configuration.
// Commands call this before building a client, so a missing username fails
// without any network traffic.
func resolveUsername(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if u := config.Username(); u != "" {
		return u, nil
	}
	return "", fmt.Errorf("username not set: pass --username or set %s", branding.EnvVar("USERNAME"))
}
