// Package agents runs the staffing pipeline stages as independent broker consumers.
// Every message is keyed by request id, which is also the coordination session id.
package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"staffline-agent/src/broker"
	"staffline-agent/src/contracts"
	"staffline-agent/src/coordinate"
	"staffline-agent/src/logger"
	"staffline-agent/src/store"
)

// DefaultGroupPrefix prefixes every consumer group name.
const DefaultGroupPrefix = "staffline"

// Option configures an agent.
type Option func(*base)

// WithLogger sets the agent logger.
func WithLogger(log logger.Logger) Option {
	return func(b *base) {
		b.logger = log
	}
}

// WithStore lets a stage agent mark requests as failed and look up request metadata.
func WithStore(st store.Store) Option {
	return func(b *base) {
		b.store = st
	}
}

// WithGroupPrefix overrides DefaultGroupPrefix.
func WithGroupPrefix(prefix string) Option {
	return func(b *base) {
		b.groupPrefix = prefix
	}
}

// WithSubscribed registers fn to run once the agent's subscriptions are in place.
func WithSubscribed(fn func()) Option {
	return func(b *base) {
		b.subscribed = fn
	}
}

// base holds what every agent shares: its broker, logging and the consume loop.
type base struct {
	name        string
	broker      broker.Broker
	store       store.Store
	logger      logger.Logger
	groupPrefix string
	subscribed  func()
}

func newBase(name string, brk broker.Broker, opts []Option) base {
	b := base{
		name:        name,
		broker:      brk,
		logger:      logger.NewSilentLogger(),
		groupPrefix: DefaultGroupPrefix,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// group returns the consumer group for this agent.
func (b *base) group() string {
	return b.groupPrefix + "-" + b.name
}

// consume subscribes to topic and hands every message to handle until the
// channel closes or ctx is cancelled. Handler errors are logged, not returned.
func (b *base) consume(ctx context.Context, topic string, handle func(context.Context, broker.Message) error) error {
	b.logger.Info("[%s] Starting...", b.name)

	msgChan, err := b.broker.Subscribe(ctx, topic, b.group())
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	b.logger.Info("[%s] Listening on '%s' topic...", b.name, topic)
	b.ready()

	for {
		select {
		case msg, ok := <-msgChan:
			if !ok {
				b.logger.Info("[%s] Message channel closed, shutting down", b.name)
				return nil
			}

			if err := handle(ctx, msg); err != nil {
				b.logger.Error("[%s] Error processing message %s: %v", b.name, msg.Key, err)
			}

		case <-ctx.Done():
			b.logger.Info("[%s] Context cancelled, shutting down", b.name)
			return ctx.Err()
		}
	}
}

func (b *base) ready() {
	if b.subscribed != nil {
		b.subscribed()
	}
}

// publish sends a stage's recommendations, then its hand-off if there is one.
func (b *base) publish(ctx context.Context, requestID string, res *coordinate.StageResult) error {
	for _, rec := range res.Recommendations {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal recommendation: %w", err)
		}
		if err := b.broker.Publish(ctx, contracts.TopicRecommendations, requestID, data); err != nil {
			return fmt.Errorf("failed to publish recommendation: %w", err)
		}
	}

	if res.Coordination == nil {
		return nil
	}

	data, err := json.Marshal(res.Coordination)
	if err != nil {
		return fmt.Errorf("failed to marshal coordination: %w", err)
	}
	if err := b.broker.Publish(ctx, contracts.TopicCoordination, requestID, data); err != nil {
		return fmt.Errorf("failed to publish coordination: %w", err)
	}

	b.logger.Debug("[%s] Request %s: handed off %s to %s", b.name, requestID, res.Coordination.Action, res.Coordination.TargetAgent)
	return nil
}

// markFailed records a failed request when a store is configured.
func (b *base) markFailed(ctx context.Context, requestID string, cause error) {
	if b.store == nil {
		return
	}

	err := b.store.ModifyRequest(ctx, requestID, func(status *contracts.RequestStatus) {
		status.Status = contracts.StatusFailed
	})
	if err != nil {
		b.logger.Error("[%s] Request %s failed (%v) and could not be marked: %v", b.name, requestID, cause, err)
	}
}

// decodeCoordination parses a coordination message and reports whether it is
// addressed to target with the given action.
func decodeCoordination(msg broker.Message, target contracts.AgentRole, action string) (*contracts.AgentCoordination, bool, error) {
	var event contracts.AgentCoordination
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal coordination: %w", err)
	}
	if event.TargetAgent != target || event.Action != action {
		return &event, false, nil
	}
	if event.SessionID == "" {
		event.SessionID = msg.Key
	}
	return &event, true, nil
}
