package advisor

import (
	"context"
	"iter"
	"strings"
	"sync"

	"google.golang.org/genai"

	"agriai/internal/locale"
	"agriai/internal/logging"
	"agriai/internal/prompt"
)

// chatSession is one per-locale conversation. Sends are serialized with the
// session mutex: a new turn cannot start while the previous turn's stream is
// still open.
type chatSession struct {
	mu   sync.Mutex
	chat *genai.Chat
}

// session returns the lazily created chat session for a locale. The session
// carries the locale's system instruction and lives for the process.
func (c *Client) session(ctx context.Context, l locale.Locale) (*chatSession, error) {
	c.chatMu.Lock()
	defer c.chatMu.Unlock()

	if s, ok := c.chats[l]; ok {
		return s, nil
	}

	instruction, err := prompt.Build(prompt.ChatSystem, l, prompt.Params{})
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
	}
	chat, err := c.genai.Chats.Create(ctx, c.model, cfg, nil)
	if err != nil {
		logging.APIError("failed to create chat session: %v", err)
		return nil, newFailure(prompt.ChatSystem, l, locale.MsgChatFailed, err)
	}

	logging.Chat("created %s chat session", l)
	s := &chatSession{chat: chat}
	c.chats[l] = s
	return s, nil
}

// StreamChat sends one chat turn and streams the reply. onChunk is called
// with the growing message after each fragment arrives, in order; the final
// accumulated message is returned. Cancel the context to abort mid-stream.
func (c *Client) StreamChat(ctx context.Context, l locale.Locale, message string, onChunk func(string)) (string, error) {
	s, err := c.session(ctx, l)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logging.Chat("sending turn (%d chars)", len(message))

	got, err := accumulateStream(s.chat.SendMessageStream(ctx, genai.Part{Text: message}), onChunk)
	if err != nil {
		logging.APIError("chat stream failed: %v", err)
		return got, newFailure(prompt.ChatSystem, l, locale.MsgChatFailed, err)
	}
	return got, nil
}

// accumulateStream folds the finite stream of responses into one message,
// reporting each intermediate state through onChunk in arrival order. On a
// stream error the text accumulated so far is returned alongside it.
func accumulateStream(seq iter.Seq2[*genai.GenerateContentResponse, error], onChunk func(string)) (string, error) {
	var sb strings.Builder
	for resp, err := range seq {
		if err != nil {
			return sb.String(), err
		}
		fragment := resp.Text()
		if fragment == "" {
			continue
		}
		sb.WriteString(fragment)
		if onChunk != nil {
			onChunk(sb.String())
		}
	}
	return sb.String(), nil
}
