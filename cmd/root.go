package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cooffer/ZenParticlesBy3D/internal/render"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zenparticles",
	Short: "A gesture-driven 3D particle cloud toy",
	Long: `ZenParticles renders a 40000-point particle cloud that morphs between
shapes (hearts, galaxies, trees, text, your own images...) and reacts to
gestures: expansion bursts, rotation, zoom, and pose-triggered shape
changes. Without a gesture camera the mouse stands in: drag to rotate,
flick to burst, scroll to zoom, P/N for the poses.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log renderer diagnostics to stderr")
}
