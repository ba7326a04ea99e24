package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cooffer/ZenParticlesBy3D/internal/shape"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List all available shapes",
	Run:   listShapes,
}

func init() {
	rootCmd.AddCommand(shapesCmd)
}

func listShapes(cmd *cobra.Command, args []string) {
	fmt.Println("Available shapes:")
	for _, id := range shape.All() {
		fmt.Println("  ", id)
	}
	fmt.Println("  ", shape.Image, "(pass --image)")
	fmt.Println("  ", shape.Text, "(pass --text)")
}
