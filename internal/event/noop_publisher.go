package event

import "context"

// NoopEventPublisher is used when no broker is configured or reachable, so
// the write path never depends on RabbitMQ being up.
type NoopEventPublisher struct{}

var _ EventPublisher = (*NoopEventPublisher)(nil)

func NewNoopEventPublisher() *NoopEventPublisher {
	return &NoopEventPublisher{}
}

func (p *NoopEventPublisher) PublishCustomerCreated(context.Context, CustomerCreatedEvent) error {
	return nil
}

func (p *NoopEventPublisher) PublishCustomerUpdated(context.Context, CustomerUpdatedEvent) error {
	return nil
}

func (p *NoopEventPublisher) PublishCustomerDeleted(context.Context, CustomerDeletedEvent) error {
	return nil
}

func (p *NoopEventPublisher) PublishCreditCreated(context.Context, CreditCreatedEvent) error {
	return nil
}
