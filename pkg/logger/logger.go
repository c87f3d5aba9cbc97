package logger

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"bandhan/pkg/mq"
	eventtypes "bandhan/pkg/types/eventtype"

	"github.com/rs/zerolog"
)

var (
	// Logger는 전역 로거 인스턴스
	Logger zerolog.Logger
	// RabbitMQ가 설정되면 로그를 log exchange로도 발행한다
	RabbitMQ *mq.RabbitMQ
	// currentService는 현재 서비스 타입을 저장합니다
	currentService ServiceType
)

const (
	ServiceTypeMatch ServiceType = iota
	ServiceTypeUser
	ServiceTypePush
	ServiceTypeLogger
	ServiceTypeGateway
)

// ServiceType은 서비스 타입을 나타내는 정수입니다
type ServiceType int

const (
	// 관심 그래프 이벤트
	LogEventLikeCreated LogEventType = iota
	LogEventMutualMatch
	LogEventShortlistAdd
	LogEventShortlistRemove

	// 알림 이벤트
	LogEventNotificationSent
	LogEventNotificationFail

	// 경고 이벤트
	LogEventWarning

	// 에러 이벤트
	LogEventError
)

// LogEventType은 로그 이벤트 타입을 나타내는 정수입니다
type LogEventType int

// BaseLog는 로그의 기본 구조를 정의합니다
type BaseLog struct {
	Level        string      `json:"level" bson:"level"`
	Timestamp    time.Time   `json:"timestamp" bson:"timestamp"`
	Service      int         `json:"service" bson:"service"`
	LogEventType int         `json:"log_event_type" bson:"log_event_type"`
	Message      string      `json:"message" bson:"message"`
	Log          interface{} `json:"log" bson:"log"`
}

// InitLogger는 로거를 초기화합니다
func InitLogger(serviceType ServiceType) {
	currentService = serviceType

	// 로그 포맷 설정
	zerolog.TimeFieldFormat = time.RFC3339
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	// 로거 설정
	Logger = zerolog.New(output).
		Level(level).
		With().
		Int("service", int(serviceType)).
		Timestamp().
		Logger()
}

// AttachMQ: 로그 exchange 선언 후 발행 대상으로 등록
func AttachMQ(client *mq.RabbitMQ) error {
	if err := client.DeclareExchange(mq.ExchangeLog, mq.ExchangeTypeFanout); err != nil {
		return err
	}
	RabbitMQ = client
	return nil
}

// Log는 로컬에 기록하고 MQ가 붙어 있으면 BaseLog 형식으로 발행합니다.
// 발행 실패는 호출자에게 전파하지 않는다.
func Log(level zerolog.Level, logEventType LogEventType, message string, logData interface{}) {
	Logger.WithLevel(level).
		Int("log_event_type", int(logEventType)).
		Interface("data", logData).
		Msg(message)

	if RabbitMQ == nil {
		return
	}

	baseLog := BaseLog{
		Level:        level.String(),
		Timestamp:    time.Now(),
		Service:      int(currentService),
		LogEventType: int(logEventType),
		Message:      message,
		Log:          logData,
	}

	data, err := json.Marshal(baseLog)
	if err != nil {
		Logger.Error().Err(err).Msg("Failed to marshal log data")
		return
	}

	payload, err := json.Marshal(eventtypes.EventPayload{
		EventType: eventtypes.EventTypeLog,
		Data:      data,
	})
	if err != nil {
		Logger.Error().Err(err).Msg("Failed to marshal log payload")
		return
	}

	if err := RabbitMQ.PublishMessage(mq.ExchangeLog, "", payload); err != nil {
		Logger.Error().Err(err).Msg("Failed to publish log message")
	}
}

func Info(logEventType LogEventType, message string, logData interface{}) {
	Log(zerolog.InfoLevel, logEventType, message, logData)
}

func Warn(logEventType LogEventType, message string, logData interface{}) {
	Log(zerolog.WarnLevel, logEventType, message, logData)
}

func Error(logEventType LogEventType, message string, logData interface{}) {
	Log(zerolog.ErrorLevel, logEventType, message, logData)
}
