package components

import (
	"table-booking/internal/infra/memstore"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

// One TableStore and one BookingStore per app; every port shares them.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			memstore.NewDefaultTableStore,
			fx.As(fx.Self()),
			fx.As(new(queries.TableReadStore)),
			fx.As(new(commands.TableFinder)),
		),
		fx.Annotate(
			memstore.NewBookingStore,
			fx.As(fx.Self()),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.BookingRepository)),
		),
	),
)
