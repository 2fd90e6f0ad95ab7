package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"ms-events/internal/models"
)

type Producer struct {
	Writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{Writer: writer}
}

// Publish writes a single keyed message to the given topic.
func (p *Producer) Publish(topic, key string, value []byte) error {
	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: value,
		},
	)
}

func (p *Producer) publishJSON(topic, key string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", topic, err)
	}
	return p.Publish(topic, key, value)
}

// PublishEventCreated streams the event creation to Kafka
func (p *Producer) PublishEventCreated(event models.Event) error {
	return p.publishJSON(TopicEventCreated, event.ID, event)
}

// PublishEventUpdated streams the event update to Kafka
func (p *Producer) PublishEventUpdated(event models.Event) error {
	return p.publishJSON(TopicEventUpdated, event.ID, event)
}

// PublishEventDeleted streams the event deletion to Kafka
func (p *Producer) PublishEventDeleted(eventID string) error {
	payload := map[string]string{"event_id": eventID}
	return p.publishJSON(TopicEventDeleted, eventID, payload)
}

// PublishWinnersUpdated streams a winners submission to Kafka
func (p *Producer) PublishWinnersUpdated(winners models.Winners) error {
	return p.publishJSON(TopicWinnersUpdated, winners.EventID, winners)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
