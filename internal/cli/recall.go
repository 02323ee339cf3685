package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/permem/permem-go/core/client"
)

func init() {
	cmd := &cobra.Command{
		Use:   "recall [query]",
		Short: "Search stored memories",
		Long:  "Search the user's memories and print the results as JSON.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runRecall,
	}

	cmd.Flags().IntP("limit", "l", 10, "Max results")
	cmd.Flags().String("mode", "", "Retrieval mode: focused, balanced or creative")

	RootCmd.AddCommand(cmd)
}

func runRecall(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	mode, _ := cmd.Flags().GetString("mode")
	query := strings.Join(args, " ")

	pc, user, err := newClient()
	if err != nil {
		exitErr("resolve config", err)
	}

	result, err := pc.Recall(cmd.Context(), query, client.RecallOptions{
		UserID: user,
		Limit:  limit,
		Mode:   client.RecallMode(mode),
	})
	if err != nil {
		exitErr("recall", err)
	}

	if len(result.Memories) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(result.Memories, "", "  ")
	fmt.Println(string(b))
}
