package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"agriai/internal/config"
	"agriai/internal/locale"
)

var (
	configSetKey  string
	configSetLang string
)

// configCmd inspects and edits the stored configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		key := app.Config.Gemini.APIKey
		masked := "(not set)"
		if key != "" {
			masked = strings.Repeat("*", 8) + key[max(0, len(key)-4):]
		}
		styles := appStyles()
		fmt.Println(styles.Subtitle.Render("State directory: " + app.StateDir))
		fmt.Printf("Model:           %s\n", app.Config.Gemini.Model)
		fmt.Printf("API key:         %s\n", masked)
		fmt.Printf("Language:        %s\n", app.Lang)
		fmt.Printf("Debug logging:   %v\n", app.Config.Logging.DebugMode)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Persist configuration values",
	Long: `Writes values into the config file in the state directory.

Example:
  agriai config set --lang ta`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configSetKey == "" && configSetLang == "" {
			return fmt.Errorf("nothing to set (use --api-key or --lang)")
		}
		if configSetKey != "" {
			app.Config.Gemini.APIKey = configSetKey
		}
		if configSetLang != "" {
			lang, err := locale.Parse(configSetLang)
			if err != nil {
				return err
			}
			app.Config.Language = string(lang)
		}
		if err := config.Save(app.StateDir, app.Config); err != nil {
			return err
		}
		fmt.Println("Configuration saved.")
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&configSetKey, "api-key", "", "Gemini API key")
	configSetCmd.Flags().StringVar(&configSetLang, "lang", "", "Language: en or ta")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
