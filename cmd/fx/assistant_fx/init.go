package assistant_fx

import (
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/fx"

	"doramahub/internal/services"
)

var Module = fx.Provide(
	provideOpenAIClient, provideAssistantService)

// provideOpenAIClient returns nil when no key is configured; the assistant
// then answers with its canned fallback instead of failing startup.
func provideOpenAIClient() *openai.Client {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Println("OPENAI_API_KEY not set, assistant runs in fallback mode")
		return nil
	}
	return openai.NewClient(key)
}

func provideAssistantService(client *openai.Client) services.AssistantServiceInterface {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}
	return services.NewAssistantService(client, model)
}
