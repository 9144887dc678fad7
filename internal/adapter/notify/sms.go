// Package notify delivers one-time codes to phone numbers.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"
)

const messageFormat = "Your StudentHub verification code is %s"

// LogSender simulates delivery by writing the code to the log.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger.With(zap.String("component", "otp_sender"))}
}

func (s *LogSender) Send(_ context.Context, phone, code string) error {
	s.logger.Info("OTP issued (delivery simulated)",
		zap.String("phone", phone),
		zap.String("otp", code),
	)
	return nil
}

type publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSender sends the code as a transactional SMS through Amazon SNS.
type SNSSender struct {
	client   publisher
	senderID string
	logger   *zap.Logger
}

func NewSNSSender(ctx context.Context, region, senderID string, logger *zap.Logger) (*SNSSender, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return newSNSSender(sns.NewFromConfig(cfg), senderID, logger), nil
}

func newSNSSender(client publisher, senderID string, logger *zap.Logger) *SNSSender {
	return &SNSSender{
		client:   client,
		senderID: senderID,
		logger:   logger.With(zap.String("component", "otp_sender")),
	}
}

func (s *SNSSender) Send(ctx context.Context, phone, code string) error {
	attrs := map[string]types.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    aws.String("String"),
			StringValue: aws.String("Transactional"),
		},
	}
	if s.senderID != "" {
		attrs["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(s.senderID),
		}
	}

	out, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       aws.String(phone),
		Message:           aws.String(fmt.Sprintf(messageFormat, code)),
		MessageAttributes: attrs,
	})
	if err != nil {
		s.logger.Error("failed to publish OTP SMS", zap.String("phone", phone), zap.Error(err))
		return fmt.Errorf("send otp sms: %w", err)
	}

	s.logger.Info("OTP SMS sent", zap.String("phone", phone), zap.String("message_id", aws.ToString(out.MessageId)))
	return nil
}
