package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"doramahub/internal/models/response_models"
)

const assistantFallback = "Oi, dorameira! 💜 Não consegui pensar em sugestões agora, mas dá uma olhada na aba Explorar que sempre tem dorama novo te esperando!"

const assistantSystemPrompt = "Você é a Doraminha, assistente de recomendações de doramas. " +
	"Responda sempre em português brasileiro, em tom amigável e curto (no máximo 4 sugestões). " +
	"Sugira títulos parecidos com o que a pessoa já assistiu, sem repetir os que ela já viu."

// AssistantServiceInterface produces watch suggestions from the user's
// history. Suggest never returns an error: any failure yields the canned
// fallback so the widget always has something to say.
type AssistantServiceInterface interface {
	Suggest(ctx context.Context, user *response_models.UserProfile) string
}

type AssistantService struct {
	client *openai.Client
	model  string
}

func NewAssistantService(client *openai.Client, model string) AssistantServiceInterface {
	return &AssistantService{client: client, model: model}
}

func (s *AssistantService) Suggest(ctx context.Context, user *response_models.UserProfile) string {
	if s.client == nil {
		return assistantFallback
	}

	prompt := buildSuggestPrompt(user)
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: 400,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: assistantSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("assistant completion failed: %v", err)
		return assistantFallback
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return assistantFallback
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func buildSuggestPrompt(user *response_models.UserProfile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Nome: %s\n", user.Name)

	writeTitles := func(label string, items []response_models.WatchItem) {
		if len(items) == 0 {
			return
		}
		titles := make([]string, 0, len(items))
		for _, item := range items {
			titles = append(titles, item.Title)
		}
		fmt.Fprintf(&sb, "%s: %s\n", label, strings.Join(titles, ", "))
	}
	writeTitles("Já terminou", user.Completed)
	writeTitles("Assistindo agora", user.Watching)
	writeTitles("Quer assistir", user.PlanToWatch)

	if len(user.Services) > 0 {
		fmt.Fprintf(&sb, "Serviços assinados: %s\n", strings.Join(user.Services, ", "))
	}
	sb.WriteString("Sugira os próximos doramas para essa pessoa.")
	return sb.String()
}
