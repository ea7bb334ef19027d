// Package types holds the record types shared by the analyzer, the report
// writer, and the database sink.
package types

import (
	"encoding/json"
	"fmt"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// FunctionComplexity is one report row: where a function is declared, its
// name, and its cyclomatic complexity. Records are immutable once produced.
type FunctionComplexity struct {
	ID         *models.RecordID `json:"id,omitempty"`
	Name       string           `json:"name"`
	File       string           `json:"file"`
	Line       int              `json:"line"`
	Complexity int              `json:"complexity"`
}

// AnalysisReport contains the records of one run, in discovery order.
type AnalysisReport struct {
	Functions []FunctionComplexity
}

// PrettyPrint returns a formatted JSON summary of the report.
func (r AnalysisReport) PrettyPrint() string {
	type Summary struct {
		TotalFunctions int                  `json:"total_functions"`
		MaxComplexity  int                  `json:"max_complexity"`
		MeanComplexity float64              `json:"mean_complexity"`
		Functions      []FunctionComplexity `json:"functions"`
	}

	summary := Summary{
		TotalFunctions: len(r.Functions),
		Functions:      r.Functions,
	}

	total := 0
	for _, fn := range r.Functions {
		total += fn.Complexity
		if fn.Complexity > summary.MaxComplexity {
			summary.MaxComplexity = fn.Complexity
		}
	}
	if len(r.Functions) > 0 {
		summary.MeanComplexity = float64(total) / float64(len(r.Functions))
	}

	jsonBytes, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating summary: %v", err)
	}
	return string(jsonBytes)
}
