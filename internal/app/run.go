package app

import (
	"context"
	"fmt"

	"github.com/mfgkit/proligentgo/internal/ctxlog"
	"github.com/mfgkit/proligentgo/internal/model"
	"github.com/mfgkit/proligentgo/internal/scenario"
)

// Run discovers the configured scenarios, builds each one into a warehouse
// document, writes the documents to the destination directory, and validates
// them when validation is enabled. The first failure aborts the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	files, err := scenario.Discover(a.config.ScenarioPath)
	if err != nil {
		return fmt.Errorf("discover scenarios: %w", err)
	}
	a.logger.Info("Scenarios discovered.", "count", len(files))

	for _, file := range files {
		warehouse, err := scenario.LoadFile(ctx, file, a.env)
		if err != nil {
			return err
		}

		path, err := model.SaveXML(warehouse, a.env, "")
		if err != nil {
			return fmt.Errorf("save %s: %w", file, err)
		}
		a.logger.Info("Warehouse document written.", "scenario", file, "output", path)

		if a.schema != nil {
			if err := a.schema.ValidateFile(path); err != nil {
				return fmt.Errorf("validate %s: %w", path, err)
			}
			a.logger.Debug("Document validated against schema.", "output", path)
		}
	}

	return nil
}
