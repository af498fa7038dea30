package main

import (
	"fmt"

	"go.uber.org/zap"

	formhelpers "github.com/goliatone/go-formhelpers"
	"github.com/goliatone/go-formhelpers/internal/preview"
	"github.com/goliatone/go-formhelpers/pkg/template/gotemplate"
)

var defaultLocales = []string{"en", "sv"}

type appOptions struct {
	configPath   string
	fixturePath  string
	templatesDir string
	verbose      bool
}

type app struct {
	logger   *zap.Logger
	renderer *preview.Renderer
	fixture  preview.Fixture
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func newApp(opts *appOptions) (*app, error) {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cfg := formhelpers.Config{Locales: defaultLocales}
	if opts.configPath != "" {
		if cfg, err = formhelpers.LoadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}

	helpers, err := formhelpers.New(cfg, formhelpers.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	engineOptions := []gotemplate.Option{gotemplate.WithFS(preview.Templates())}
	if opts.templatesDir != "" {
		engineOptions = append(engineOptions, gotemplate.WithBaseDir(opts.templatesDir))
	}
	engine, err := gotemplate.New(engineOptions...)
	if err != nil {
		return nil, err
	}
	if err := helpers.Boot(engine); err != nil {
		return nil, err
	}

	fixture, err := loadFixture(opts.fixturePath)
	if err != nil {
		return nil, err
	}

	renderer, err := preview.NewRenderer(engine, helpers.Form(), logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("preview ready",
		zap.Strings("locales", helpers.Config().Locales),
		zap.String("fixture", fixture.Title),
	)
	return &app{logger: logger, renderer: renderer, fixture: fixture}, nil
}

func loadFixture(path string) (preview.Fixture, error) {
	if path == "" {
		return preview.DefaultFixture()
	}
	return preview.LoadFixture(path)
}
