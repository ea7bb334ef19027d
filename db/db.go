package db

import (
	"context"

	"github.com/TFMV/cyclo/types"
)

type DB interface {
	Initialize(ctx context.Context) error
	StoreReport(ctx context.Context, report types.AnalysisReport) error
}
