package assistant

import (
	"context"
	"errors"
	"log"
	"strings"

	"anihub/pkg/models"
)

// systemInstruction is AniBot's fixed persona. Sent with every request;
// the upstream service holds no conversation state of its own.
const systemInstruction = `
You are an expert anime and manga otaku assistant named "AniBot".
You have deep knowledge of anime history, genres, studios, and obscure facts.
Your tone is enthusiastic, helpful, and slightly informal (using terms like "nakama", "sugoi" occasionally but not cringy).
You can provide recommendations, explain plots (avoiding major spoilers unless asked), and discuss character depth.
Format your responses with clean markdown.
If asked about specific anime, try to highlight what makes them unique.
`

const (
	// Greeting is the canned opening turn shown before the user says anything.
	Greeting = "Konnichiwa! I'm AniBot, your personal otaku assistant. Ask me for recommendations, plot explanations, or random anime facts!"

	emptyReply   = "Sorry, I couldn't think of a response! (Try again)"
	failureReply = "Gomenne! I ran into an error connecting to the anime network. Please check your connection or API key."
)

// Generator produces one assistant turn from the prior transcript and a
// new user message.
type Generator interface {
	Generate(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

// Assistant fronts a Generator with the chat surface's contract: Send
// always returns something presentable and never an error. Failures are
// logged and replaced with a fixed apology; there is no retry.
type Assistant struct {
	gen Generator
}

func New(gen Generator) *Assistant {
	return &Assistant{gen: gen}
}

// Unavailable is the Generator wired in when no API key is configured;
// every turn degrades to the apology reply.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, []models.ChatMessage, string) (string, error) {
	return "", errors.New("assistant not configured")
}

// Send forwards the transcript plus the new message and returns the
// reply text.
func (a *Assistant) Send(ctx context.Context, history []models.ChatMessage, message string) string {
	reply, err := a.gen.Generate(ctx, history, message)
	if err != nil {
		log.Printf("[assistant] generate: %v", err)
		return failureReply
	}
	if strings.TrimSpace(reply) == "" {
		return emptyReply
	}
	return reply
}
