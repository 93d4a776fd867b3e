package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/evgo-rent/backend/internal/config"
	"github.com/evgo-rent/backend/internal/domain"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const cancelReason = "deposit not received in time"

var sweepingOrders sync.Map

type OrderRepo interface {
	FindExpiredPending(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.RentalOrder, error)
}

type OrderCanceller interface {
	ExpirePending(ctx context.Context, orderID int, reason string) error
}

// Service cancels PENDING orders whose deposit never arrived, releasing
// their vehicles back into the pool.
type Service struct {
	orderRepo  OrderRepo
	rentals    OrderCanceller
	pendingTTL time.Duration
	spec       string
	limit      uint32
	workerPool WorkerPoolI
	cron       *cron.Cron
	now        func() time.Time
}

func New(cfg *config.Config, orderRepo OrderRepo, rentals OrderCanceller) *Service {
	return &Service{
		orderRepo:  orderRepo,
		rentals:    rentals,
		pendingTTL: cfg.PendingTTL,
		spec:       cfg.SweepSpec,
		limit:      1000,
		workerPool: NewWorkerPool(10),
		cron:       cron.New(cron.WithSeconds()),
		now:        time.Now,
	}
}

func (s *Service) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.Sweep(ctx) }); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.spec, err)
	}
	s.cron.Start()
	zap.L().Info("Pending-order sweeper started", zap.String("spec", s.spec), zap.Duration("pendingTTL", s.pendingTTL))

	go func() {
		<-ctx.Done()
		stopCtx := s.cron.Stop()
		<-stopCtx.Done()
		s.workerPool.Close()
		zap.L().Info("Pending-order sweeper stopped")
	}()
	return nil
}

func (s *Service) Sweep(ctx context.Context) {
	cutoff := s.now().Add(-s.pendingTTL)
	orders, err := s.orderRepo.FindExpiredPending(ctx, cutoff, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expired pending orders", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := sweepingOrders.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingOrders.Delete(order.ID)
				return s.expireOrder(ctx, order)
			})
			if err != nil {
				sweepingOrders.Delete(order.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping expired orders", zap.Error(err))
	}
}

func (s *Service) expireOrder(ctx context.Context, order domain.RentalOrder) error {
	err := s.rentals.ExpirePending(ctx, order.ID, cancelReason)
	switch {
	case err == nil:
		zap.L().Info("Expired pending order cancelled", zap.Int("orderID", order.ID))
		return nil
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrInvalidTransition):
		// The order left PENDING between the query and the cancel, so
		// the deposit landed. Leave it be.
		return nil
	default:
		return fmt.Errorf("failed to cancel expired order %d: %w", order.ID, err)
	}
}
