package event

import (
	"bandhan/pkg/logger"
	"bandhan/pkg/mq"
	eventtypes "bandhan/pkg/types/eventtype"
)

type Consumer struct {
	mqClient     *mq.RabbitMQ
	eventHandler *EventHandler
}

func NewConsumer(mqClient *mq.RabbitMQ, eventHandler *EventHandler) *Consumer {
	return &Consumer{
		mqClient:     mqClient,
		eventHandler: eventHandler,
	}
}

// Handlers: event_type별 핸들러
func (c *Consumer) Handlers() mq.EventHandlerMap {
	return mq.EventHandlerMap{
		eventtypes.EventTypeLikeCreated: c.eventHandler.HandleLikeCreatedEvent,
		eventtypes.EventTypeMutualMatch: c.eventHandler.HandleMutualMatchEvent,
		eventtypes.EventTypeEmail:       c.eventHandler.HandleEmailEvent,
	}
}

func (c *Consumer) StartListening() error {
	// Exchange 및 Queue 설정
	if err := c.mqClient.DeclareExchange(mq.ExchangeInterestEvents, mq.ExchangeTypeTopic); err != nil {
		logger.Logger.Error().Err(err).Msgf("❌ Failed to declare exchange %s", mq.ExchangeInterestEvents)
		return err
	}

	// Queue 생성 및 바인딩
	routingKeys := []string{mq.RoutingKeyLikeCreated, mq.RoutingKeyMutualMatch, mq.RoutingKeyEmail}
	queue, err := c.mqClient.DeclareQueue(mq.QueuePush, mq.ExchangeInterestEvents, routingKeys)
	if err != nil {
		logger.Logger.Error().Err(err).Msgf("❌ Failed to declare queue %s for %s", mq.QueuePush, mq.ExchangeInterestEvents)
		return err
	}

	// 메시지 소비 시작
	if err := c.mqClient.ConsumeMessages(queue.Name, c.Handlers()); err != nil {
		logger.Logger.Error().Err(err).Msgf("❌ Failed to consume queue %s", queue.Name)
		return err
	}

	logger.Logger.Info().Msg("✅ Push Service Consumer Listening...")
	return nil
}
