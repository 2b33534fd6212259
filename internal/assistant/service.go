package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"adresponse-backend/internal/llm"
	"adresponse-backend/internal/shared/telemetry"
)

// ErrEmptyMessage signals a chat request without a message.
var ErrEmptyMessage = fmt.Errorf("message is required")

// cannedReplies serve chat when no LLM provider is configured. Replies
// rotate in order so repeated questions get varied answers.
var cannedReplies = []string{
	"Let's focus on the MediaBuyers Agency RFP. What sections still need work?",
	"I can help analyze the requirements and generate proposal content. Which RFP would you like to work on?",
	"I've reviewed the latest submissions. The BrandMax RFP looks ready for final review.",
}

// Service answers dashboard chat messages.
type Service struct {
	// LLM is optional; when nil (or on failure) canned replies are used.
	LLM llm.Client

	mu   sync.Mutex
	next int
}

// Chat returns a reply to the user's message.
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	if s.LLM != nil {
		reply, err := s.LLM.Complete(ctx, llm.ChatPrompt(message))
		if err == nil && strings.TrimSpace(reply) != "" {
			return reply, nil
		}
		if err != nil {
			telemetry.Error("assistant.chat.llm_failed", map[string]any{"error": err.Error()})
		}
	}

	s.mu.Lock()
	reply := cannedReplies[s.next%len(cannedReplies)]
	s.next++
	s.mu.Unlock()
	return reply, nil
}
