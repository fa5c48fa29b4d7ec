package salesreport

import (
	"github.com/tradeloghq/tradelog/internal/salesreport/export"
	"github.com/tradeloghq/tradelog/internal/salesreport/service"
	"go.uber.org/fx"
)

var Module = fx.Module("salesreport.service",
	fx.Provide(service.NewService),
	fx.Provide(export.NewService),
)
