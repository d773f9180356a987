package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"stencil/internal/model"
	"stencil/internal/pipeline"
	"stencil/internal/store"
)

var (
	extractURL     string
	outJSON        string
	outMD          string
	saveName       string
	extractTimeout time.Duration
	noCache        bool
	noRobots       bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract a reusable template from text",
	Long: `Extract runs the detection pipeline over the input text:
- Category rules find values near anchor keywords (company, salary, ...)
- The gazetteer fallback catches entities without anchor keywords
- The repeated-phrase detector tokenizes recurring boilerplate

The input is a file, stdin ("-" or no argument), or a URL via --url.

Example:
  stencil extract posting.txt
  cat posting.txt | stencil extract
  stencil extract --url https://example.com/jobs/123 --save backend-role
  stencil extract posting.txt --json template.json --md template.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractURL, "url", "", "fetch the input from a URL")
	extractCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	extractCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path")
	extractCmd.Flags().StringVar(&saveName, "save", "", "save the template under this name")
	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", 2*time.Minute, "overall timeout")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the fetch cache")
	extractCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), extractTimeout)
	defer cancel()

	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.HTTP.RespectRobots = cfg.HTTP.RespectRobots && !noRobots

	p := pipeline.NewPipeline(cfg)

	tmpl, err := extractInput(ctx, p, args)
	if err != nil {
		return err
	}

	if err := p.RenderTemplate(os.Stdout, tmpl, outJSON, outMD); err != nil {
		return err
	}

	if saveName != "" {
		st, err := store.NewFileStore(cfg.Store.Dir)
		if err != nil {
			return err
		}
		if err := st.Save(saveName, tmpl); err != nil {
			return err
		}
		fmt.Printf("\n✓ Saved template: %s\n", saveName)
	}
	return nil
}

// extractInput resolves the input source: --url, a file argument, or stdin
func extractInput(ctx context.Context, p *pipeline.Pipeline, args []string) (*model.Template, error) {
	if extractURL != "" {
		return p.ExtractURL(ctx, extractURL)
	}
	if len(args) == 1 && args[0] != "-" {
		return p.ExtractSource(ctx, args[0])
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return p.ExtractText(string(data))
}
