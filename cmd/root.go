package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/simplesh/simplesh/core/config"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands.
// Running it starts the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "simplesh",
	Short: "A small interactive command interpreter",
	Long: `simplesh reads commands one line at a time, runs builtins in-process
and everything else as a child program of the shell.`,
	Args: cobra.ExactArgs(0),
	RunE: runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
