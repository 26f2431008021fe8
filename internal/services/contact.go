package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/avdeev21/retro-market/internal/logger"
	"github.com/avdeev21/retro-market/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ContactService delivers buyer-to-seller enquiries as fire-and-forget
// notifications.
type ContactService struct {
	sellers     SellerReader
	kafkaWriter KafkaWriter
}

// NewContactService creates a new ContactService.
func NewContactService(sellers SellerReader, kafkaWriter KafkaWriter) *ContactService {
	return &ContactService{
		sellers:     sellers,
		kafkaWriter: kafkaWriter,
	}
}

// Send resolves the target seller and publishes the enquiry. Delivery is
// fire-and-forget: a publish failure is logged and the call still succeeds.
func (s *ContactService) Send(ctx context.Context, sellerID uuid.UUID, buyerName, buyerEmail, gameTitle, message string) error {
	seller, err := s.sellers.GetByID(ctx, sellerID)
	if err != nil {
		logger.Log.Errorw("failed to resolve contact target", "sellerID", sellerID, "error", err)
		return err
	}
	if seller == nil {
		return ErrSellerNotFound
	}

	msg := models.ContactMessage{
		MessageID:   uuid.NewString(),
		SellerID:    sellerID.String(),
		SellerEmail: seller.Email,
		BuyerName:   buyerName,
		BuyerEmail:  buyerEmail,
		GameTitle:   gameTitle,
		Message:     message,
		SentAt:      time.Now().Unix(),
	}
	s.publish(ctx, msg)

	return nil
}

// publish writes the notification to Kafka.
func (s *ContactService) publish(ctx context.Context, msg models.ContactMessage) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "message_id", msg.MessageID)
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("Failed to marshal contact message for Kafka", "message_id", msg.MessageID, "error", err)
		return
	}

	kafkaMsg := kafka.Message{
		Key:   []byte(msg.SellerID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, kafkaMsg); err != nil {
		logger.Log.Errorw("Failed to publish contact message to Kafka", "message_id", msg.MessageID, "error", err)
	} else {
		logger.Log.Infow("Contact message published to Kafka", "message_id", msg.MessageID, "seller_id", msg.SellerID)
	}
}
