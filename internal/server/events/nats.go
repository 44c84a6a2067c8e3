package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSConfig configures the JetStream publisher.
type NATSConfig struct {
	URL            string
	Stream         string
	SubjectPrefix  string
	ConnectionName string
	MaxReconnects  int
	ReconnectWait  time.Duration
}

// Conn is the part of *nats.Conn the publisher uses.
type Conn interface {
	Close()
	ConnectedUrl() string
}

// JetStream is the part of jetstream.JetStream the publisher uses.
type JetStream interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
	CreateOrUpdateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error)
}

// NATSPublisher sends events to JetStream under <prefix>.mint and
// <prefix>.transfer.
type NATSPublisher struct {
	nc     Conn
	js     JetStream
	prefix string
	log    logging.Logger
}

// DialNATS connects to cfg.URL and makes sure the stream exists.
func DialNATS(ctx context.Context, cfg NATSConfig, log logging.Logger) (*NATSPublisher, error) {
	log = log.With("module", "nats")

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn(context.Background(), "disconnected from NATS", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info(context.Background(), "reconnected to NATS", "url", nc.ConnectedUrl())
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	p := NewNATSPublisher(nc, js, cfg.SubjectPrefix, log)
	if err := p.EnsureStream(ctx, cfg.Stream); err != nil {
		nc.Close()
		return nil, err
	}

	log.Info(ctx, "connected to NATS", "url", nc.ConnectedUrl(), "stream", cfg.Stream)
	return p, nil
}

func NewNATSPublisher(nc Conn, js JetStream, prefix string, log logging.Logger) *NATSPublisher {
	return &NATSPublisher{nc: nc, js: js, prefix: prefix, log: log}
}

// EnsureStream creates or updates stream so that it captures every subject
// under the publisher's prefix.
func (p *NATSPublisher) EnsureStream(ctx context.Context, stream string) error {
	_, err := p.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     stream,
		Subjects: []string{p.prefix + ".>"},
		Storage:  jetstream.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("create stream %s: %w", stream, err)
	}
	return nil
}

func (p *NATSPublisher) Subject(m Message) string {
	return p.prefix + "." + m.Type
}

func (p *NATSPublisher) Publish(ctx context.Context, ev registry.TransferEvent) error {
	m := NewMessage(ev)

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	subject := p.Subject(m)
	p.log.Debug(ctx, "publishing event", "subject", subject, "token_id", m.TokenID)

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func (p *NATSPublisher) Close() {
	if p.nc == nil {
		return
	}
	p.nc.Close()
}
