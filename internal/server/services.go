package server

import (
	"log/slog"

	"github.com/hlabs/hlabs-web/internal/charts"
	"github.com/hlabs/hlabs-web/internal/config"
	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/logos"
	"github.com/hlabs/hlabs-web/internal/rendering"
	"github.com/hlabs/hlabs-web/internal/views"
	"github.com/samber/do/v2"
)

// provideServices binds the core services shared by every module. Providers
// are lazy; New forces the content store so load errors surface at startup.
func provideServices(i do.Injector, cfg *config.Config) error {
	do.Provide(i, func(do.Injector) (*content.Store, error) {
		if cfg.ContentDir == "" {
			return content.Default(), nil
		}
		slog.Info("Loading content bundles", "dir", cfg.ContentDir)
		return content.Load(content.DirFS(cfg.ContentDir))
	})

	do.Provide(i, func(do.Injector) (*charts.Renderer, error) {
		var opts []charts.Option
		if cfg.ChartAssetsHost != "" {
			opts = append(opts, charts.WithAssetsHost(cfg.ChartAssetsHost))
		}
		return charts.NewRenderer(opts...), nil
	})

	do.Provide(i, func(do.Injector) (*logos.Resolver, error) {
		return logos.NewResolver(
			logos.WithBaseURL(cfg.LogoBaseURL),
			logos.WithTimeout(cfg.LogoTimeout),
			logos.WithLogger(slog.Default()),
		), nil
	})

	do.Provide(i, func(do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(i, func(i do.Injector) (rendering.Renderer, error) {
		return do.Invoke[*rendering.UniversalRenderer](i)
	})

	do.Provide(i, func(i do.Injector) (views.Deps, error) {
		store, err := do.Invoke[*content.Store](i)
		if err != nil {
			return views.Deps{}, err
		}
		return views.Deps{
			Store:      store,
			Charts:     do.MustInvoke[*charts.Renderer](i),
			Logos:      do.MustInvoke[*logos.Resolver](i),
			ContactURL: cfg.ContactURL,
		}, nil
	})
	return nil
}
