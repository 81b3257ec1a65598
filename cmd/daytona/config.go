package main

import (
	"fmt"
	"os"

	"daytona-workspace/workspace"

	"github.com/charmbracelet/log"
)

// profileFileName is looked up in the working directory.
const profileFileName = "daytona.yml"

// resolveConfig builds the workspace configuration for a named profile.
// Without a profile file, an empty config is returned and everything is
// taken from the environment (the workspace package applies the overlay).
func resolveConfig(profile string) (workspace.Config, error) {
	if _, err := os.Stat(profileFileName); err != nil {
		if profile != "" && profile != "default" {
			return workspace.Config{}, fmt.Errorf("profile %q requested but %s does not exist", profile, profileFileName)
		}
		log.Debug("no profile file, using environment configuration")
		return workspace.Config{}, nil
	}

	profiles, err := workspace.LoadProfiles(profileFileName)
	if err != nil {
		return workspace.Config{}, err
	}

	if profile == "" {
		profile = "default"
	}

	config, ok := profiles[profile]
	if !ok {
		return workspace.Config{}, fmt.Errorf("profile %q not found in %s", profile, profileFileName)
	}

	log.Debug("loaded profile", "profile", profile)
	return config, nil
}
