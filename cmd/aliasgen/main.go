// Command aliasgen строит каталог с алиасами из выгрузки xlsx/xls/csv.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"catalog-aliases/internal/alias"
	"catalog-aliases/internal/config"
)

var (
	logLevel       string
	dictionaryFile string

	cfg    config.Config
	logger zerolog.Logger
	dicts  alias.Dictionaries
)

var rootCmd = &cobra.Command{
	Use:           "aliasgen",
	Short:         "Генерация алиасов брендов, моделей и артикулов для голосового поиска",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
			cfg.LogLevel = logLevel
		}
		if dictionaryFile != "" {
			cfg.DictionaryFile = dictionaryFile
		}
		// CLI пишет только в консоль
		cfg.LogFile = ""
		logger = config.SetupCLILogger(cfg)

		var err error
		dicts, err = alias.LoadDictionariesFile(cfg.DictionaryFile)
		if err != nil {
			return fmt.Errorf("load dictionaries: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "уровень логирования")
	rootCmd.PersistentFlags().StringVar(&dictionaryFile, "dictionary", "", "YAML со справочниками (по умолчанию встроенные)")

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newExpandCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
