package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"catalog-aliases/internal/alias"
	"catalog-aliases/internal/catalog/service"
	"catalog-aliases/internal/catalog/store"
	"catalog-aliases/internal/fileio"
)

func newBuildCmd() *cobra.Command {
	var (
		in       string
		out      string
		sheet    string
		firstRow int
		workers  int
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Прочитать выгрузку и записать каталог с алиасами (JSON или SQLite)",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			m := cfg.Mapping()
			if cmd.Flags().Changed("sheet") {
				m.Sheet = sheet
			}
			if cmd.Flags().Changed("first-row") {
				m.FirstRow = firstRow
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Workers
			}

			f, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			rows, err := fileio.ReadGrid(f, in, m.Sheet)
			f.Close()
			if err != nil {
				return err
			}
			entries := service.Entries(rows, m)
			logger.Info().Str("in", in).Str("sheet", m.Sheet).Int("entries", len(entries)).Msg("catalog parsed")

			b := service.NewBuilder(alias.NewEngine(dicts), workers)
			if !quiet {
				bar := progressbar.NewOptions(len(entries),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("aliases"),
					progressbar.OptionShowCount(),
					progressbar.OptionSetItsString("items"),
				)
				b.OnItem = func() { _ = bar.Add(1) }
				defer func() { _ = bar.Finish() }()
			}

			records, err := b.Build(cmd.Context(), entries)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			if err := store.Save(out, records); err != nil {
				return err
			}

			stats := service.Summarize(records)
			logger.Info().
				Str("out", out).
				Int("items", stats.Items).
				Int("brand_aliases", stats.BrandAliases).
				Int("model_aliases", stats.ModelAliases).
				Int("article_aliases", stats.ArticleAliases).
				Int("without_brand", stats.WithoutBrand).
				Dur("elapsed", time.Since(start)).
				Msg("catalog saved")
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "выгрузка .xlsx/.xls/.csv")
	cmd.Flags().StringVarP(&out, "out", "o", "catalog.json", "результат: .json или .db/.sqlite")
	cmd.Flags().StringVar(&sheet, "sheet", "", "имя листа")
	cmd.Flags().IntVar(&firstRow, "first-row", 0, "первая строка с товарами (1-based)")
	cmd.Flags().IntVar(&workers, "workers", 0, "число воркеров (0 — по числу CPU)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "без прогресс-бара")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
