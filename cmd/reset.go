package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/cooffer/ZenParticlesBy3D/internal/config"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset saved settings to their defaults",
	Run:   resetSettings,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	log.SetFlags(0)
}

func resetSettings(cmd *cobra.Command, args []string) {
	path, err := config.GetSettingsPath()
	if err != nil {
		log.Fatal("Failed to get settings path: ", err)
	}

	defaults := config.Defaults()
	if err := config.Save(path, &defaults); err != nil {
		log.Fatal("Failed to save settings: ", err)
	}

	fmt.Println("Settings reset:", path)
}
