package service

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"catalog-aliases/internal/alias"
	"catalog-aliases/internal/catalog/model"
)

// Builder прогоняет позиции каталога через движок алиасов.
type Builder struct {
	Engine  *alias.Engine
	Workers int    // <= 0 — по числу CPU
	OnItem  func() // вызывается после каждой готовой позиции; должен быть потокобезопасным
}

func NewBuilder(engine *alias.Engine, workers int) *Builder {
	return &Builder{Engine: engine, Workers: workers}
}

// Record собирает одну позицию.
func (b *Builder) Record(e model.Entry) model.Record {
	brand, mdl := SplitName(e.Name)
	a := b.Engine.Expand(brand, mdl, e.Code)
	return model.Record{
		Code:           e.Code,
		Name:           e.Name,
		Brand:          brand,
		Model:          mdl,
		BrandAliases:   a.Brand,
		ModelAliases:   a.Model,
		ArticleAliases: a.Article,
		Description:    CleanDescription(e.Description),
	}
}

// Build считает записи параллельно; порядок результата совпадает с порядком входа.
// Ошибка возможна только при отмене контекста.
func (b *Builder) Build(ctx context.Context, entries []model.Entry) ([]model.Record, error) {
	out := make([]model.Record, len(entries))
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range entries {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = b.Record(entries[i])
			if b.OnItem != nil {
				b.OnItem()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Summarize считает сводку по готовым записям.
func Summarize(records []model.Record) model.Stats {
	s := model.Stats{Items: len(records)}
	for _, r := range records {
		s.BrandAliases += len(r.BrandAliases)
		s.ModelAliases += len(r.ModelAliases)
		s.ArticleAliases += len(r.ArticleAliases)
		if r.Brand == "" {
			s.WithoutBrand++
		}
	}
	return s
}
