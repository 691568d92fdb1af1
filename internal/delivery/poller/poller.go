// Package poller runs the background refresh cycle for the order board.
// It stands in for an operator pressing refresh: every tick it pulls the
// order list, and pushes a notification for each order that appeared since
// the previous snapshot.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ketalog/config"
	"ketalog/internal/delivery"
	"ketalog/internal/domain/entity"
	"ketalog/internal/domain/service"
	"ketalog/internal/usecase"

	"go.uber.org/fx"
)

type orderPoller struct {
	cfg           *config.Config
	logger        *slog.Logger
	board         usecase.OrderBoardUsecase
	sessions      service.SessionService
	notifications service.NotificationService

	done chan struct{}
}

// PollerParams holds dependencies for the order poller
type PollerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	Board         usecase.OrderBoardUsecase
	Sessions      service.SessionService
	Notifications service.NotificationService `optional:"true"`
}

// NewPoller creates the polling delivery. It is registered alongside the
// HTTP server and runs until shutdown.
func NewPoller(params PollerParams) (delivery.Delivery, error) {
	p := &orderPoller{
		cfg:           params.Cfg,
		logger:        params.Logger,
		board:         params.Board,
		sessions:      params.Sessions,
		notifications: params.Notifications,
		done:          make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: p.stop,
	})

	return p, nil
}

// Serve runs the refresh loop. Poll failures are logged and the loop keeps
// going; a flaky backend must not kill the process.
func (p *orderPoller) Serve(ctx context.Context) error {
	if !p.cfg.Poll.Enabled {
		p.logger.Info("Order polling disabled, poller idle")
		<-p.done

		return nil
	}

	interval := p.cfg.Poll.Interval
	if interval <= 0 {
		interval = 10 * time.Second
	}

	p.logger.Info("Starting order poller", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-p.done:
			return nil
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *orderPoller) tick(ctx context.Context) {
	// No session means no token to call the backend with. Skip quietly.
	if p.sessions.Current() == nil {
		return
	}

	snapshot, err := p.board.Refresh(ctx)
	if err != nil {
		p.logger.Warn("Order poll failed", slog.Any("error", err))

		return
	}

	for i := range snapshot.NewOrders {
		p.notifyNewOrder(ctx, &snapshot.NewOrders[i])
	}
}

func (p *orderPoller) notifyNewOrder(ctx context.Context, order *entity.Order) {
	if p.notifications == nil || p.cfg.Firebase == nil || len(p.cfg.Firebase.DeviceTokens) == 0 {
		return
	}

	title := "New order received"
	body := fmt.Sprintf("Order #%s for Rs %.2f", order.Reference(), order.TotalAmount)
	data := map[string]string{
		"type":    "new_order",
		"orderId": order.ID,
	}

	success, failure, invalid, err := p.notifications.SendBatchNotification(
		ctx, p.cfg.Firebase.DeviceTokens, title, body, data)
	if err != nil {
		p.logger.Warn("New order notification failed",
			slog.String("orderId", order.ID),
			slog.Any("error", err))

		return
	}

	p.logger.Info("New order notification sent",
		slog.String("orderId", order.ID),
		slog.Int("success", success),
		slog.Int("failure", failure),
		slog.Int("invalidTokens", len(invalid)))
}

func (p *orderPoller) stop(ctx context.Context) error {
	close(p.done)

	return nil
}
