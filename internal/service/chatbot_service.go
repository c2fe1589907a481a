package service

import (
	"context"
	"strings"

	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/pkg/chatbot"
	"mentorlink-be/pkg/locale"
)

type IChatbotService interface {
	SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

// Composer is the part of chatbot.Composer the service depends on.
type Composer interface {
	Compose(ctx context.Context, message string, loc locale.Locale) (*chatbot.Reply, error)
}

type chatbotService struct {
	composer Composer
	logger   logger.ILogger
}

func NewChatbotService(composer Composer, logger logger.ILogger) IChatbotService {
	return &chatbotService{
		composer: composer,
		logger:   logger,
	}
}

// SendChat runs one stateless chat turn. Errors returned here are not
// generation failures; those already come back as fallback responses.
func (s *chatbotService) SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	loc := locale.Resolve(request.Locale)
	message := ""
	if request.Message != nil {
		message = *request.Message
	}

	reply, err := s.composer.Compose(ctx, message, loc)
	if err != nil {
		return nil, err
	}

	s.logger.Info("CHATBOT", "Chat turn completed", map[string]interface{}{
		"locale":        loc.String(),
		"outcome":       reply.Outcome.String(),
		"links":         len(reply.Links),
		"message_chars": len([]rune(strings.TrimSpace(message))),
	})

	if reply.Outcome != chatbot.OutcomeAnswered {
		return &dto.ChatResponse{Response: reply.Text, Fallback: true}, nil
	}

	return &dto.ChatResponse{
		Response: reply.Text,
		Links:    dto.NewLinkDTOs(reply.Links),
	}, nil
}
