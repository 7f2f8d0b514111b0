// FILE: internal/service/consumer_service.go
package service

import (
	"context"

	"event-management-be/internal/entity"
	"event-management-be/internal/pkg/logger"
	"event-management-be/internal/repository/unitofwork"
	"event-management-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// EventForwarder ships events to an external bus. Implemented by pkg/nats.Publisher.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	forwarder  EventForwarder
	log        logger.ILogger
}

// NewConsumerService records every bus event as an activity log row. forwarder may be nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	forwarder EventForwarder,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		uowFactory: uowFactory,
		forwarder:  forwarder,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	evt, err := events.Decode(msg.Payload)
	if err != nil {
		cs.log.Error("CONSUMER", "Dropping invalid event payload", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	entityId, err := uuid.Parse(evt.EntityID())
	if err != nil {
		cs.log.Warn("CONSUMER", "Event has no valid entity id", map[string]interface{}{
			"event_type": evt.EventType(),
			"entity_id":  evt.EntityID(),
		})
		entityId = uuid.Nil
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	err = uow.ActivityLogRepository().Create(ctx, &entity.ActivityLog{
		Id:         uuid.New(),
		EventType:  evt.EventType(),
		EntityId:   entityId,
		Details:    evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
	if err != nil {
		cs.log.Error("CONSUMER", "Failed to write activity log", map[string]interface{}{
			"event_type": evt.EventType(),
			"entity_id":  evt.EntityID(),
			"error":      err.Error(),
		})
		msg.Nack() // retriable
		return
	}

	if cs.forwarder != nil {
		if err := cs.forwarder.Publish(ctx, evt); err != nil {
			cs.log.Warn("CONSUMER", "Failed to forward event to NATS", map[string]interface{}{
				"event_type": evt.EventType(),
				"error":      err.Error(),
			})
		}
	}

	msg.Ack()
}
