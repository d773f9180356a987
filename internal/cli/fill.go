package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"stencil/internal/llm"
)

var (
	fillValues   []string
	fillLLM      bool
	fillProvider string
	fillModel    string
)

// fillCmd represents the fill command
var fillCmd = &cobra.Command{
	Use:   "fill <name>",
	Short: "Fill a saved template's variables and print the result",
	Long: `Fill loads a saved template and substitutes values back into its
tokens. Values come from --set flags; detected variables fall back to
their original literal text. With --llm, an LLM proposes values for
anything still unfilled.

Example:
  stencil fill backend-role --set COMPANY_NAME="Initech" --set SALARY="$90k/yr"
  stencil fill backend-role --llm --set ROLE="Data Engineer"`,
	Args: cobra.ExactArgs(1),
	RunE: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)

	fillCmd.Flags().StringArrayVar(&fillValues, "set", nil, "variable value as NAME=value (repeatable)")
	fillCmd.Flags().BoolVar(&fillLLM, "llm", false, "propose values for unfilled variables via LLM")
	fillCmd.Flags().StringVar(&fillProvider, "llm-provider", "openai", "LLM provider")
	fillCmd.Flags().StringVar(&fillModel, "llm-model", "", "LLM model name (defaults to config)")
}

func runFill(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	st, err := openStore()
	if err != nil {
		return err
	}
	tmpl, err := st.Load(args[0])
	if err != nil {
		return err
	}

	values := make(map[string]string, len(fillValues))
	for _, pair := range fillValues {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, want NAME=value", pair)
		}
		values[strings.TrimSpace(name)] = value
	}

	text, missing := llm.Fill(tmpl, values)

	if len(missing) > 0 && fillLLM {
		cfg.LLM.Provider = fillProvider
		if fillModel != "" {
			cfg.LLM.Model = fillModel
		}
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		proposed, err := llm.ProposeValues(ctx, provider, tmpl, missing)
		if err != nil {
			return err
		}
		for name, value := range proposed {
			values[name] = value
		}
		text, missing = llm.Fill(tmpl, values)
	}

	fmt.Println(text)
	if len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "\nUnfilled variables: %s\n", strings.Join(missing, ", "))
	}
	return nil
}
