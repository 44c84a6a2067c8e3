// Package events delivers registry ownership changes to the outside world.
package events

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
)

const (
	TypeMint     = "mint"
	TypeTransfer = "transfer"
)

// Publisher emits committed transfer events.
type Publisher interface {
	Publish(ctx context.Context, ev registry.TransferEvent) error
	Close()
}

// Message is the wire form of a registry.TransferEvent.
type Message struct {
	Type    string  `json:"type"`
	From    *string `json:"from"`
	To      string  `json:"to"`
	TokenID uint32  `json:"token_id"`
}

func NewMessage(ev registry.TransferEvent) Message {
	m := Message{Type: TypeTransfer, To: string(ev.To), TokenID: uint32(ev.TokenID)}
	if ev.IsMint() {
		m.Type = TypeMint
	} else {
		from := string(*ev.From)
		m.From = &from
	}
	return m
}

// LogPublisher writes one structured log line per event.
type LogPublisher struct {
	log logging.Logger
}

func NewLogPublisher(log logging.Logger) *LogPublisher {
	return &LogPublisher{log: log.With("module", "events")}
}

func (p *LogPublisher) Publish(ctx context.Context, ev registry.TransferEvent) error {
	m := NewMessage(ev)
	from := ""
	if m.From != nil {
		from = *m.From
	}
	p.log.Info(ctx, "token event", "type", m.Type, "token_id", m.TokenID, "from", from, "to", m.To)
	return nil
}

func (p *LogPublisher) Close() {}

// Fanout publishes every event to all of its publishers.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, ev registry.TransferEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Close() {
	for _, p := range f {
		p.Close()
	}
}
