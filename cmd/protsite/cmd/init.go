package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/protsite/internal/config"
	"github.com/f3rmion/protsite/internal/rules"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write default config.yaml and rules.yaml to the config directory",
	Long: `Create the config directory and write the default settings and the
built-in rule tables there. Edit rules.yaml to add proteases or PTMs.

Existing files are kept unless --force is given.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	dir := getConfigDir()
	out := cmd.OutOrStdout()

	if err := config.EnsureConfigDir(dir); err != nil {
		return err
	}

	settingsPath := filepath.Join(dir, config.SettingsFile)
	if force || !exists(settingsPath) {
		if err := config.SaveSettings(settingsPath, config.DefaultSettings()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", settingsPath)
	} else {
		fmt.Fprintf(out, "Kept existing %s\n", settingsPath)
	}

	rulesPath := defaultRulesPath()
	if force || !exists(rulesPath) {
		if err := config.SaveRules(rulesPath, rules.Default()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", rulesPath)
	} else {
		fmt.Fprintf(out, "Kept existing %s\n", rulesPath)
	}

	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
