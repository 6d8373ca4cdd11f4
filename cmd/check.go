package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osforge/calago/app"
	"github.com/osforge/calago/config"
	"github.com/osforge/calago/infra/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Build every module and report the ones that fail",
	RunE:  checkModules,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkModules(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	loader := app.New(cfg, logger.New("check"))
	defer loader.Close()

	_, failures, err := loader.LoadAll()
	if err != nil {
		return err
	}
	for _, ev := range failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", ev.InstanceKey, ev.Err)
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d module(s) failed to load", len(failures))
	}
	fmt.Fprintln(cmd.OutOrStdout(), "all modules ok")
	return nil
}
