package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"catalog-aliases/internal/alias"
)

func newExpandCmd() *cobra.Command {
	var brand, model, article string

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Показать алиасы для бренда, модели и артикула",
		Example: `  aliasgen expand --brand "Mio Tesoro" --model "Монреаль-4" --article 10077127`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := alias.NewEngine(dicts).Expand(brand, model, article)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&brand, "brand", "", "бренд")
	cmd.Flags().StringVar(&model, "model", "", "модель")
	cmd.Flags().StringVar(&article, "article", "", "артикул")
	return cmd
}
