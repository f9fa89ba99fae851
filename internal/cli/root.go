// Package cli implements constantsctl, the operator tool for inspecting and
// checking the constant set a deployment will serve.
package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pumpsui/pumpsui_service/internal/infrastructure/config"
	"github.com/pumpsui/pumpsui_service/internal/infrastructure/di"
	"github.com/pumpsui/pumpsui_service/pkg/constants"
	"github.com/pumpsui/pumpsui_service/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	verboseFlag bool
	groupFlag   string
)

// NewRootCmd builds the constantsctl command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "constantsctl",
		Short: "Inspect and check the PumpSui constant set",
		Long: `constantsctl shows the constants a deployment will serve, after
config file and SUI_CONST_* environment overrides are applied.

  list      Show every constant, optionally for one group
  get       Print a single value
  check     Validate object ids and urls, exit non-zero on failure
  export    Print KEY=value lines for front-end builds`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./configs/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log override and validation details to stderr")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}

func loadSet() (*constants.Set, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewNop()
	if verboseFlag {
		log = logger.New("debug", cfg.Environment)
	}
	return di.BuildConstantSet(constants.Default(), cfg.Constants.Overrides, log)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := loadSet()
			if err != nil {
				return err
			}

			entries := set.Entries()
			if groupFlag != "" {
				g := strings.ToLower(groupFlag)
				if !constants.IsGroup(g) {
					return fmt.Errorf("unknown group %q", groupFlag)
				}
				entries = set.Group(constants.Group(g))
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Key", "Group", "Kind", "Value")
			for _, e := range entries {
				_ = table.Append([]string{e.Key, string(e.Group), string(e.Kind), e.Value})
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVar(&groupFlag, "group", "", "only show one group (token, amm, lending, framework, api)")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <KEY>",
		Short: "Print the value of one constant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet()
			if err != nil {
				return err
			}
			value, err := set.Get(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the effective constant set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := loadSet()
			if err != nil {
				for _, key := range constants.InvalidKeys(err) {
					fmt.Fprintf(cmd.OutOrStdout(), "INVALID: %s\n", key)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d constants OK\n", set.Len())
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print constants as KEY=value lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := loadSet()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), set.EnvLines())
			return err
		},
	}
}
