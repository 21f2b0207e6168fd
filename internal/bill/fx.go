package bill

import (
	"github.com/smallbiznis/stockroom/internal/bill/repository"
	"github.com/smallbiznis/stockroom/internal/bill/service"
	"go.uber.org/fx"
)

var Module = fx.Module("bill.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewNumberTemplate),
	fx.Provide(service.New),
)
