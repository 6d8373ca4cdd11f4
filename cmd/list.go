package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osforge/calago/app"
	"github.com/osforge/calago/config"
	"github.com/osforge/calago/infra/logger"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List loadable modules from the configured modules directory",
	RunE:  listModules,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listModules(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	loader := app.New(cfg, logger.New("list"))
	defer loader.Close()

	modules, _, err := loader.LoadAll()
	if err != nil {
		return err
	}
	for _, m := range modules {
		fmt.Fprintf(cmd.OutOrStdout(), "%-32s %-12s %-22s emergency=%v\n",
			m.InstanceKey(), m.Type(), m.Interface(), m.Emergency())
	}
	return nil
}
