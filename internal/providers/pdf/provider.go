package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

var Module = fx.Module("pdf",
	fx.Provide(New),
)

type Provider interface {
	GenerateBill(ctx context.Context, data BillData) (io.Reader, error)
}
