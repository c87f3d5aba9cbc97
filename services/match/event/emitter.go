package event

import (
	"encoding/json"

	"bandhan/pkg/logger"
	"bandhan/pkg/mq"
	eventtypes "bandhan/pkg/types/eventtype"
)

// Publisher는 RabbitMQ 클라이언트 중 발행에 필요한 부분
type Publisher interface {
	DeclareExchange(name, exchangeType string) error
	PublishMessage(exchange, routingKey string, body []byte) error
}

type Emitter struct {
	mqClient Publisher
}

// NewEmitter: interest_events topic exchange를 선언하고 emitter 생성
func NewEmitter(mqClient Publisher) (*Emitter, error) {
	if err := mqClient.DeclareExchange(mq.ExchangeInterestEvents, mq.ExchangeTypeTopic); err != nil {
		logger.Logger.Error().Err(err).Msgf("❌ Failed to declare exchange %s", mq.ExchangeInterestEvents)
		return nil, err
	}
	return &Emitter{mqClient: mqClient}, nil
}

func (e *Emitter) PublishInterestEvent(routingKey string, payload eventtypes.EventPayload) error {
	eventBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Logger.Error().Err(err).Str("event_type", payload.EventType).Msg("❌ Failed to marshal interest event")
		return err
	}

	err = e.mqClient.PublishMessage(
		mq.ExchangeInterestEvents, // Exchange Name (Topic 타입)
		routingKey,                // like.created, match.mutual, email.send
		eventBytes,
	)
	if err != nil {
		logger.Logger.Error().Err(err).Str("routing_key", routingKey).Msg("❌ Failed to publish interest event")
		return err
	}

	logger.Logger.Debug().Str("routing_key", routingKey).Msg("Interest event published")
	return nil
}
