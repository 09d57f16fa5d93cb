package uow

import (
	"context"
	"log/slog"
	"sync"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"
)

var errUnitAborted = errs.New("unit of work aborted before start")

// MemoryUoW serialises writers against the single in-process hotel.
// Readers share the lock so a view never observes a half-applied booking.
type MemoryUoW struct {
	mu    sync.RWMutex
	hotel *hotel.Hotel
}

func NewMemoryUoW(h *hotel.Hotel) shared.UnitOfWork {
	return &MemoryUoW{hotel: h}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errUnitAborted)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := fn(ctx, &memTx{hotel: u.hotel}); err != nil {
		slog.DebugContext(ctx, "write unit finished with error", "error", err.Error())
		return err
	}
	return nil
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, view shared.View) error) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errUnitAborted)
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	return fn(ctx, &memView{hotel: u.hotel})
}

type memTx struct {
	hotel *hotel.Hotel
}

func (t *memTx) Hotel() *hotel.Hotel {
	return t.hotel
}

type memView struct {
	hotel *hotel.Hotel
}

func (v *memView) Hotel() shared.HotelReader {
	return v.hotel
}
