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

func (c *Consumer) LogHandlers() mq.EventHandlerMap {
	return mq.EventHandlerMap{
		eventtypes.EventTypeLog: c.eventHandler.HandleLogEvent,
	}
}

func (c *Consumer) HistoryHandlers() mq.EventHandlerMap {
	return mq.EventHandlerMap{
		eventtypes.EventTypeLikeCreated: c.eventHandler.HandleLikeCreatedEvent,
		eventtypes.EventTypeMutualMatch: c.eventHandler.HandleMutualMatchEvent,
	}
}

func (c *Consumer) StartListening() error {
	// log fanout
	if err := c.mqClient.DeclareExchange(mq.ExchangeLog, mq.ExchangeTypeFanout); err != nil {
		logger.Logger.Error().Err(err).Msgf("❌ Failed to declare exchange %s", mq.ExchangeLog)
		return err
	}
	logQueue, err := c.mqClient.DeclareQueue(mq.QueueLog, mq.ExchangeLog, []string{""})
	if err != nil {
		logger.Logger.Error().Err(err).Msgf("❌ Failed to declare queue %s for %s", mq.QueueLog, mq.ExchangeLog)
		return err
	}

	// 관심 이벤트 topic
	if err := c.mqClient.DeclareExchange(mq.ExchangeInterestEvents, mq.ExchangeTypeTopic); err != nil {
		logger.Logger.Error().Err(err).Msgf("❌ Failed to declare exchange %s", mq.ExchangeInterestEvents)
		return err
	}
	historyQueue, err := c.mqClient.DeclareQueue(mq.QueueMatchHistory, mq.ExchangeInterestEvents,
		[]string{mq.RoutingKeyLikeCreated, mq.RoutingKeyMutualMatch})
	if err != nil {
		logger.Logger.Error().Err(err).Msgf("❌ Failed to declare queue %s for %s", mq.QueueMatchHistory, mq.ExchangeInterestEvents)
		return err
	}

	// 메시지 소비 시작
	if err := c.mqClient.ConsumeMessages(logQueue.Name, c.LogHandlers()); err != nil {
		return err
	}
	if err := c.mqClient.ConsumeMessages(historyQueue.Name, c.HistoryHandlers()); err != nil {
		return err
	}

	logger.Logger.Info().Msg("✅ Logger Service Consumer Listening...")
	return nil
}
