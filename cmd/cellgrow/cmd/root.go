package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arkveil/cellgrow/logx"
)

var (
	verbose bool
	cfgFile string
	logger  logx.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cellgrow",
	Short: "Grow a cellular-forms mesh through mitotic division",
	Long: `cellgrow seeds a triangulated sphere and repeatedly applies a
per-cell force step (spring, planar, bulge, repulsion) followed by
mitotic division of any cell whose food reserve has saturated, the
cellular-forms growth model described by fogleman's original renderer.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logx.LevelInfo
		if verbose {
			level = logx.LevelDebug
		}
		logger = logx.NewDefaultLogger(level, os.Stdout)
		return nil
	},
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to a YAML config file (defaults to ./cellgrow.yaml, ./configs/cellgrow.yaml, or built-in defaults)")
}

// GetLogger returns the logger configured by PersistentPreRunE.
func GetLogger() logx.Logger {
	return logger
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
