package mq

// Exchange Names
const (
	ExchangeInterestEvents = "interest_events"
	ExchangeLog            = "log"
)

// Exchange Types
const (
	ExchangeTypeTopic  = "topic"
	ExchangeTypeFanout = "fanout"
)

// Queue Names
const (
	QueuePush = "push_queue"
	QueueLog  = "log_queue"
	// 매칭 이력 저장용
	QueueMatchHistory = "match_history_queue"
)

// Routing Keys
const (
	RoutingKeyLikeCreated = "like.created"
	RoutingKeyMutualMatch = "match.mutual"
	RoutingKeyEmail       = "email.send"
)
