package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"

	"table-booking/internal/domain/booking"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/pkg/metrics"
	"table-booking/internal/usecase/queries"
)

var ErrTableNotFound = errs.ErrTableNotFound

type CreateBookingParams struct {
	TableID      string
	CustomerName string
	BookingTime  string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	tables   TableFinder
	bookings BookingRepository
	factory  *booking.Factory
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewBookingCommands(
	tables TableFinder,
	bookings BookingRepository,
	factory *booking.Factory,
	m *metrics.Metrics,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		tables:   tables,
		bookings: bookings,
		factory:  factory,
		metrics:  m,
		logger:   logger,
	}
}

// CreateBooking expects non-empty params; presence is checked by the handler.
// The only failure is an unknown table, marked with ErrTableNotFound.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	t, ok := c.tables.FindByID(params.TableID)
	if !ok {
		return nil, errs.Mark(
			errs.Newf("Table with ID %s not found", params.TableID),
			ErrTableNotFound,
		)
	}

	b := c.factory.CreateBooking(t, params.CustomerName, params.BookingTime)
	c.bookings.Append(b)
	c.metrics.BookingsCreated.Inc()

	c.logger.DebugContext(ctx, "booking created",
		slog.String("booking_id", b.ID()),
		slog.String("table_id", b.TableID()),
	)

	return queries.ToBookingView(b), nil
}
