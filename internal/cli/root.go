package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickmart/register/internal/catalog"
	"github.com/quickmart/register/internal/config"
	"github.com/quickmart/register/internal/ledger"
	"github.com/quickmart/register/internal/money"
	"github.com/quickmart/register/internal/obs"
)

// NewRootCmd builds the register command tree. The bare command runs the
// interactive session; "register inventory" prints the catalog and exits.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "register",
		Short:         "Jerry's Quick Mart point-of-sale register",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, lg, err := boot(cfgPath)
			if err != nil {
				return err
			}
			NewSession(cfg, store, lg, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to register.yaml")
	root.AddCommand(newInventoryCmd(&cfgPath))
	return root
}

func newInventoryCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Print the current catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, _, err := boot(*cfgPath)
			if err != nil {
				return err
			}
			for i, it := range store.Items() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s: %d, %s, %s, %s\n",
					i+1, it.Name, it.Stock,
					money.Format(it.RegularPrice), money.Format(it.MemberPrice),
					taxLabel(it.Taxable))
			}
			return nil
		},
	}
}

// boot loads config, initializes logging, and opens the catalog and ledger.
// A missing catalog file is logged and leaves the store empty, matching the
// register's behavior on a fresh install.
func boot(cfgPath string) (config.Config, *catalog.Store, *ledger.Ledger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, nil, nil, err
	}
	obs.InitLogger(cfg.LogLevel, cfg.LogFormat)
	store := catalog.New(cfg.CatalogFile)
	if err := store.Load(); err != nil {
		obs.Logger.Warn("catalog_load_failed", "path", cfg.CatalogFile, "error", err)
	}
	return cfg, store, ledger.Open(cfg.CounterFile), nil
}
