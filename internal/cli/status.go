package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether the Permem server is up",
		Run:   runStatus,
	}

	RootCmd.AddCommand(cmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	fileCfg, err := loadFileConfig(configPath)
	if err != nil {
		exitErr("resolve config", err)
	}

	// Health needs no user ID, so skip newClient's user requirement.
	pc := buildClient(fileCfg)

	if pc.Health(cmd.Context()) {
		fmt.Printf("%s: ok\n", pc.Config().URL)
		return
	}
	fmt.Printf("%s: unreachable\n", pc.Config().URL)
	os.Exit(1)
}
