package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/pkg/config"
	"fleet-booking/internal/pkg/errs"

	"github.com/nats-io/nats.go"
)

type conn interface {
	Publish(subject string, data []byte) error
	IsClosed() bool
}

// NATSPublisher emits reservation events as JSON messages on a single subject.
type NATSPublisher struct {
	nc      conn
	closer  func()
	subject string
}

func Connect(cfg config.EventsConfig) (*NATSPublisher, error) {
	nc, err := nats.Connect(cfg.NATSURL,
		nats.Name("fleet-booking"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats disconnected", "error", err.Error())
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to nats")
	}
	return &NATSPublisher{
		nc:      nc,
		subject: cfg.Subject,
		closer: func() {
			_ = nc.Drain()
		},
	}, nil
}

func newPublisher(nc conn, subject string) *NATSPublisher {
	return &NATSPublisher{nc: nc, subject: subject, closer: func() {}}
}

func (p *NATSPublisher) PublishReservationConfirmed(ctx context.Context, ev reservation.ConfirmedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.nc.IsClosed() {
		return errs.New("nats connection closed")
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}
	if err := p.nc.Publish(p.subject, payload); err != nil {
		return errs.Wrapf(err, "failed to publish to %s", p.subject)
	}
	return nil
}

func (p *NATSPublisher) Close() {
	p.closer()
}

// NoopPublisher drops events. Used when NATS_URL is unset.
type NoopPublisher struct{}

func (NoopPublisher) PublishReservationConfirmed(context.Context, reservation.ConfirmedEvent) error {
	return nil
}
