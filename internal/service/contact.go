package service

import (
	"context"

	"github.com/raphael0002/graphics-garage-api/internal/dto"
	"github.com/raphael0002/graphics-garage-api/internal/mailer"
	"go.uber.org/zap"
)

type contactService struct {
	logger *zap.Logger
	mailer *mailer.Mailer
}

func newContactService(logger *zap.Logger, mail *mailer.Mailer) Contact {
	return &contactService{
		logger: logger,
		mailer: mail,
	}
}

func (s *contactService) Send(ctx context.Context, input dto.ContactRequest) error {
	if err := s.mailer.SendContactMessage(input.Name, input.Email, input.Message); err != nil {
		s.logger.Sugar().Errorf("failed to send contact message from %s: %s", input.Email, err.Error())
		return ErrMailNotSent
	}

	return nil
}
