// Package cyclo computes the cyclomatic complexity of every function defined
// in a C translation unit and produces one record per function.
package cyclo

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/TFMV/cyclo/analysis"
	"github.com/TFMV/cyclo/cache"
	"github.com/TFMV/cyclo/db"
	"github.com/TFMV/cyclo/frontend"
	"github.com/TFMV/cyclo/types"
)

// Analyzer ties the frontend, the decision counting, and the record sinks
// together.
type Analyzer struct {
	DB    db.DB
	Cache *cache.ResultCache
}

// NewAnalyzer creates an Analyzer without a database sink.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Cache: cache.NewResultCache(1024),
	}
}

// NewAnalyzerWithDB creates an Analyzer that also mirrors records to
// SurrealDB.
func NewAnalyzerWithDB(config db.Config) (*Analyzer, error) {
	sdb, err := db.NewSurrealDB(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return &Analyzer{
		DB:    sdb,
		Cache: cache.NewResultCache(1024),
	}, nil
}

// Initialize sets up the database connection and schema, when a sink is
// configured.
func (a *Analyzer) Initialize(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Initialize(ctx)
}

// AnalyzeSource parses one translation unit and returns one record per
// function definition, in pre-order discovery order. Each function gets a
// fresh tally; malformed source yields a *frontend.ParseError.
func (a *Analyzer) AnalyzeSource(ctx context.Context, name string, src []byte) ([]types.FunctionComplexity, error) {
	key := cache.Key(src)
	if a.Cache != nil {
		if cached, ok := a.Cache.Get(key); ok {
			return withFile(cached, name), nil
		}
	}

	unit, err := frontend.Parse(ctx, name, src)
	if err != nil {
		return nil, err
	}
	defer unit.Close()

	var records []types.FunctionComplexity
	for _, fn := range analysis.Functions(unit.Root()) {
		tally := analysis.CountDecisions(fn)
		records = append(records, types.FunctionComplexity{
			Name:       fn.Spelling(),
			File:       name,
			Line:       fn.Line(),
			Complexity: analysis.Complexity(tally),
		})
	}

	if a.Cache != nil {
		a.Cache.Put(key, records)
	}
	return records, nil
}

// AnalyzeFiles analyzes paths concurrently, one goroutine per file, and
// merges the per-file records back in input order so the report append stays
// deterministic.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string) (types.AnalysisReport, error) {
	results := make([][]types.FunctionComplexity, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			records, err := a.AnalyzeSource(ctx, path, src)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return types.AnalysisReport{}, err
	}

	var report types.AnalysisReport
	for _, records := range results {
		report.Functions = append(report.Functions, records...)
	}
	return report, nil
}

// StoreReport mirrors the report's records to the configured database sink.
// A nil sink is a no-op.
func (a *Analyzer) StoreReport(ctx context.Context, report types.AnalysisReport) error {
	if a.DB == nil {
		return nil
	}
	if err := a.DB.StoreReport(ctx, report); err != nil {
		return fmt.Errorf("failed to store analysis results: %w", err)
	}
	return nil
}

// withFile returns a copy of cached records bound to the given file name, so
// identical content analyzed under two paths reports both paths correctly.
func withFile(records []types.FunctionComplexity, name string) []types.FunctionComplexity {
	out := make([]types.FunctionComplexity, len(records))
	for i, rec := range records {
		rec.File = name
		out[i] = rec
	}
	return out
}
