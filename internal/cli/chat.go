package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/permem/permem-go/core/client"
)

const defaultModel = "claude-sonnet-4-20250514"

const systemPrompt = `You are a helpful assistant with long-term memory.
When memories about the user are provided, use them naturally. Do not recite
them back or mention the memory system unless asked.`

// runChat drives the interactive loop: inject relevant memories before each
// model call, extract new ones after it.
func runChat(cmd *cobra.Command, args []string) error {
	pc, user, err := newClient()
	if err != nil {
		return err
	}

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	if anthropicKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}
	ac := anthropic.NewClient(option.WithAPIKey(anthropicKey))

	resolvedModel := model
	if resolvedModel == "" {
		resolvedModel = defaultModel
	}

	ctx := cmd.Context()
	if !pc.Health(ctx) {
		fmt.Fprintf(os.Stderr, "warning: permem server at %s is not responding; continuing without memory\n", pc.Config().URL)
	}

	// A fresh conversation ID per session scopes extracted memories.
	conversationID := uuid.NewString()

	fmt.Printf("Chatting as %s (conversation %s). Type /quit to exit.\n", user, conversationID)

	var history []anthropic.MessageParam
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}

		// Pre-call: ask the server for prompt-ready memories. The decision
		// whether to inject is the server's; we only honor it.
		system := systemPrompt
		injection, err := pc.Inject(ctx, line, client.InjectOptions{
			UserID:         user,
			ConversationID: conversationID,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: inject failed: %v\n", err)
		} else if injection.ShouldInject && injection.InjectionText != "" {
			system = systemPrompt + "\n\n" + injection.InjectionText
		}

		history = append(history, anthropic.NewUserMessage(anthropic.NewTextBlock(line)))

		resp, err := ac.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(resolvedModel),
			MaxTokens: 1024,
			System:    []anthropic.TextBlockParam{{Text: system}},
			Messages:  history,
		})
		if err != nil {
			return fmt.Errorf("claude API error: %w", err)
		}

		reply := responseText(resp)
		fmt.Printf("\n%s\n\n", reply)
		history = append(history, resp.ToParam())

		// Post-call: hand the turn to the extractor. Async so the server can
		// process in the background; failures only cost us new memories.
		_, err = pc.Extract(ctx, []client.Message{
			{Role: client.RoleUser, Content: line},
			{Role: client.RoleAssistant, Content: reply},
		}, client.ExtractOptions{
			UserID:         user,
			ConversationID: conversationID,
			Async:          true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: extract failed: %v\n", err)
		}
	}

	return scanner.Err()
}

// responseText concatenates the text blocks of a model response.
func responseText(message *anthropic.Message) string {
	var sb strings.Builder
	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	return sb.String()
}
