// Package cli implements the permem-chat commands: an interactive terminal
// chat wired to the memory API, plus small helpers for poking at a server.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/permem/permem-go/core/client"
)

var (
	serverURL  string
	apiKey     string
	userID     string
	model      string
	configPath string
	verbose    bool
)

// RootCmd is the top-level command. Running it without a subcommand starts
// the interactive chat.
var RootCmd = &cobra.Command{
	Use:   "permem-chat",
	Short: "Terminal chat with persistent memory",
	Long: "An example chat integration for the Permem memory API: relevant memories are\n" +
		"injected before each model call and new memories are extracted after it.",
	SilenceUsage: true,
	RunE:         runChat,
}

func init() {
	cobra.OnInitialize(func() {
		// Pick up a local .env before flags and environment are resolved.
		_ = godotenv.Load()
	})

	RootCmd.PersistentFlags().StringVar(&serverURL, "url", "", "Permem server URL (default: $PERMEM_URL or http://localhost:3333)")
	RootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Permem API key (default: $PERMEM_API_KEY)")
	RootCmd.PersistentFlags().StringVarP(&userID, "user", "u", "", "User ID memories belong to (default: $PERMEM_USER_ID)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ~/.permem.yaml when present)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each API round trip")
	RootCmd.Flags().StringVarP(&model, "model", "m", "", "Anthropic model (default: claude-sonnet-4-20250514)")
}

// buildClient resolves the client configuration with flags winning over
// environment variables winning over the optional config file.
func buildClient(fileCfg fileConfig) *client.Client {
	// Options apply in order and ignore empty values, so file < env < flag.
	opts := []client.Option{
		client.WithURL(fileCfg.URL),
		client.FromEnv(),
		client.WithURL(serverURL),
	}
	if fileCfg.APIKey != "" {
		opts = append(opts, client.WithAPIKey(fileCfg.APIKey))
	}
	if v := os.Getenv(client.EnvAPIKey); v != "" {
		opts = append(opts, client.WithAPIKey(v))
	}
	if apiKey != "" {
		opts = append(opts, client.WithAPIKey(apiKey))
	}
	if verbose {
		opts = append(opts, client.WithLogger(newVerboseLogger()))
	}
	return client.New(opts...)
}

// newClient resolves the client together with the user ID the memories
// belong to. The user ID is required for every request-carrying operation.
func newClient() (*client.Client, string, error) {
	fileCfg, err := loadFileConfig(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("loading config file: %w", err)
	}

	resolvedUser := fileCfg.UserID
	if v := os.Getenv(client.EnvUserID); v != "" {
		resolvedUser = v
	}
	if userID != "" {
		resolvedUser = userID
	}
	if resolvedUser == "" {
		return nil, "", fmt.Errorf("a user ID is required: pass --user or set %s", client.EnvUserID)
	}

	if model == "" {
		model = fileCfg.Model
	}

	return buildClient(fileCfg), resolvedUser, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
