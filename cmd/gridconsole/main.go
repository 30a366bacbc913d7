package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

// deps is replaced by tests before executing a command
var deps = defaultDependencies()

// Persistent flags
var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "gridconsole",
	Short: "Keyboard-driven grid menus in the terminal",
	Long: `gridconsole lays out buttons, labels and nested grids on a character grid
and lets you move between them with the arrow keys.

Enter activates the focused button or opens a nested grid, Backspace goes
back one level and Escape at the top level exits.

The layout is read from --config, ./.gridconsole.yaml or the user config
directory, falling back to a built-in demo.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Layout file (default: ./.gridconsole.yaml, then the user config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides GRIDCONSOLE_LOG_LEVEL")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logAndExit(err)
	}
}

func logAndExit(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

func options() runOptions {
	return runOptions{ConfigPath: configPath, LogLevel: logLevel}
}
