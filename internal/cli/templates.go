package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stencil/internal/render"
	"stencil/internal/store"
)

// templatesCmd groups the saved-template subcommands
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage saved templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		names, err := st.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No saved templates.")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		st, err := openStore()
		if err != nil {
			return err
		}
		tmpl, err := st.Load(args[0])
		if err != nil {
			return err
		}
		render.NewRenderer(cfg.Output).RenderSummary(os.Stdout, tmpl)
		return nil
	},
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		if err := st.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted template: %s\n", args[0])
		return nil
	},
}

func openStore() (*store.FileStore, error) {
	return store.NewFileStore(loadConfig().Store.Dir)
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
	templatesCmd.AddCommand(templatesDeleteCmd)
}
