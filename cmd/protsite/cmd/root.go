// Package cmd contains all CLI commands for protsite.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/protsite/internal/config"
	"github.com/f3rmion/protsite/internal/report"
	"github.com/f3rmion/protsite/internal/rules"
	"github.com/f3rmion/protsite/internal/tui"
	"github.com/f3rmion/protsite/internal/tui/glyph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgDir string
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "protsite",
	Short: "Annotate protease cleavage and PTM sites on protein sequences",
	Long: `protsite marks residues of a protein sequence that trigger protease
cleavage rules, post-translational modification rules, phosphorylation
variants and user-chosen positions.

  - Proteases (12)   → cleavage residues, e.g. Trypsin on K, R
  - PTMs (12)        → modifiable residues, e.g. N-glycosylation on N
  - Phospho (S/T/Y)  → phosphorylation variants sharing one color
  - Custom positions → boxed residues, independent of any rule

Modification sites take display priority over cleavage sites; every match
is still counted.

Running 'protsite' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/protsite)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("color-policy", string(rules.PolicyPerRule), "enzyme colors: per-rule or category")
	rootCmd.PersistentFlags().Int("group-size", report.DefaultGroupSize, "residues per group (0 disables grouping)")
	rootCmd.PersistentFlags().Int("line-width", report.DefaultLineWidth, "residues per rendered line")
	rootCmd.PersistentFlags().String("rules", "", "rules YAML file (default is <config>/rules.yaml when present)")

	rootCmd.Flags().StringP("file", "f", "", "open a FASTA or plain text sequence file at startup")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("color_policy", rootCmd.PersistentFlags().Lookup("color-policy"))
	viper.BindPFlag("group_size", rootCmd.PersistentFlags().Lookup("group-size"))
	viper.BindPFlag("line_width", rootCmd.PersistentFlags().Lookup("line-width"))
	viper.BindPFlag("rules_file", rootCmd.PersistentFlags().Lookup("rules"))
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("PROTSITE")
	viper.AutomaticEnv()

	viper.SetConfigFile(filepath.Join(getConfigDir(), config.SettingsFile))
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", viper.ConfigFileUsed(), err)
		}
	}
}

// initLogger builds the process logger once flags and config are known.
func initLogger() error {
	if !viper.GetBool("verbose") {
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	logger = l
	logger.Debug("configuration loaded",
		zap.String("config_dir", getConfigDir()),
		zap.String("config_file", viper.ConfigFileUsed()))
	return nil
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings collects the effective settings. A rules.yaml in the config
// directory is used when no rules file was given explicitly.
func loadSettings() config.Settings {
	s := config.DefaultSettings()
	s.ColorPolicy = viper.GetString("color_policy")
	s.GroupSize = viper.GetInt("group_size")
	s.LineWidth = viper.GetInt("line_width")
	s.RulesFile = viper.GetString("rules_file")

	if s.RulesFile == "" {
		candidate := filepath.Join(getConfigDir(), config.RulesFile)
		if _, err := os.Stat(candidate); err == nil {
			s.RulesFile = candidate
		}
	}
	return s
}

// loadTables resolves the rule tables for the current settings.
func loadTables(s config.Settings) (*rules.Tables, error) {
	t, err := config.ResolveTables(s)
	if err != nil {
		return nil, err
	}
	source := s.RulesFile
	if source == "" {
		source = "built-in"
	}
	logger.Debug("rule tables ready",
		zap.String("source", source),
		zap.String("policy", string(t.Policy)),
		zap.Int("enzymes", len(t.Enzymes)),
		zap.Int("ptms", len(t.PTMs)),
		zap.Int("phospho", len(t.Phospho)))
	return t, nil
}

// runInteractive launches the TUI application.
func runInteractive(cmd *cobra.Command, args []string) error {
	s := loadSettings()
	tables, err := loadTables(s)
	if err != nil {
		return err
	}

	var initial string
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		rec, err := readSequenceFile(path)
		if err != nil {
			return err
		}
		initial = rec.Seq
	}

	glyphs := glyph.LoadSystem()
	logger.Debug("glyph font", zap.String("source", glyphs.Source()))

	p := tea.NewProgram(
		tui.NewApp(tui.Options{
			Tables:      tables,
			RulesSource: s.RulesFile,
			GroupSize:   s.GroupSize,
			LineWidth:   s.LineWidth,
			Sequence:    initial,
			Glyphs:      glyphs,
			Logger:      logger,
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
