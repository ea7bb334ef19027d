package db

import (
	"context"

	"github.com/TFMV/cyclo/types"
)

type MockDB struct {
	InitializeFunc  func(ctx context.Context) error
	StoreReportFunc func(ctx context.Context, report types.AnalysisReport) error
}

func NewMockDB() *MockDB {
	return &MockDB{
		InitializeFunc: func(ctx context.Context) error {
			return nil
		},
	}
}

func (m *MockDB) Initialize(ctx context.Context) error {
	return m.InitializeFunc(ctx)
}

func (m *MockDB) StoreReport(ctx context.Context, report types.AnalysisReport) error {
	if m.StoreReportFunc != nil {
		return m.StoreReportFunc(ctx, report)
	}
	return nil
}
