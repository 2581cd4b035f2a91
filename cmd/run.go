package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/simplesh/simplesh/core"
	"github.com/simplesh/simplesh/core/logger"
)

// runCmd starts the interactive shell, same as running the bare root
// command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shell.",
	Args:  cobra.ExactArgs(0),
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	configuration, err := loadConfig()
	if err != nil {
		return err
	}

	logName := fmt.Sprintf("%s.log", time.Now().Format(time.RFC3339))
	logFd, err := configuration.CreateSessionLog(logName)
	if err != nil {
		return err
	}
	defer logFd.Close()

	shell, err := core.NewShell(configuration, logger.NewJSONLines(logFd))
	if err != nil {
		return err
	}
	defer shell.Close()

	return shell.Run()
}

func init() {
	rootCmd.AddCommand(runCmd)
}
