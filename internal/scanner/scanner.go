// internal/scanner/scanner.go
package scanner

import (
	"context"

	"github.com/jackchuka/vcsinfo/internal/model"
)

type Scanner interface {
	Scan(ctx context.Context) ([]model.Repository, error)
	ScanPath(ctx context.Context, path string, maxDepth int) ([]model.Repository, error)
}

var _ Scanner = (*Walker)(nil)
