package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// LoadGlobalsConfig returns the arguments stored in texui/globals.conf under
// the XDG config directory, split on whitespace. A missing file yields no
// arguments.
func LoadGlobalsConfig() ([]string, error) {
	path, err := xdg.ConfigFile(filepath.Join("texui", "globals.conf"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve globals config path: %w", err)
	}

	return loadArgs(path)
}

func loadArgs(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// return no error when the file doesn't exist
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read globals config file: %w", err)
	}

	return strings.Fields(string(b)), nil
}
