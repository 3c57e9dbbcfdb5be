package cmd

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/licensegen/application"
	"github.com/rios0rios0/licensegen/config"
	"github.com/rios0rios0/licensegen/domain"
	"github.com/rios0rios0/licensegen/infrastructure/checker"
	"github.com/rios0rios0/licensegen/infrastructure/report"
)

// buildContainer assembles the pipeline with DIG:
// config -> collaborators (scanner client, file reader) -> service + registry.
func buildContainer(cfg *config.Config) (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		func() *config.Config { return cfg },
		func(c *config.Config) domain.GraphFetcher { return checker.NewClient(c.Scanner) },
		func() domain.FileReader { return checker.NewOSFileReader() },
		func(c *config.Config, f domain.GraphFetcher, r domain.FileReader) *application.ReportService {
			return application.NewReportService(f, r, c.Overrides)
		},
		report.NewDefaultRegistry,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
