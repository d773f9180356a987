package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"stencil/internal/pipeline"
	"stencil/internal/render"
	"stencil/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Extract templates from many sources in parallel",
	Long: `Batch reads sources (file paths or URLs, one per line) and extracts a
template from each concurrently. Every source gets its own extraction
session; results are written as JSON files to the output directory.

Example:
  stencil batch postings.txt
  stencil batch postings.txt --concurrency 8 --output-dir ./templates`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./stencil-templates", "output directory for extracted templates")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	sources, err := readSources(args[0])
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no sources found in %s", args[0])
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	cfg := loadConfig()
	p := pipeline.NewPipeline(cfg)
	renderer := render.NewRenderer(cfg.Output)

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Extracting %d sources with %d workers\n", len(sources), concurrency)
	}

	results := worker.NewBatchProcessor(p, concurrency).Process(ctx, sources)

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Source, r.Error)
			continue
		}
		out := filepath.Join(outputDir, slugify(r.Source)+".json")
		if err := renderer.RenderJSON(r.Template, out); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Source, err)
			continue
		}
		fmt.Printf("✓ %s → %s (%d variables)\n", r.Source, out, len(r.Template.Variables))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(sources))
	}
	return nil
}

// readSources reads one source per line, skipping blanks and # comments
func readSources(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var sources []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sources = append(sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return sources, nil
}

// slugify derives a filesystem-safe name from a source path or URL
func slugify(source string) string {
	s := strings.TrimPrefix(strings.TrimPrefix(source, "https://"), "http://")
	s = strings.TrimSuffix(filepath.Base(strings.ReplaceAll(s, "\\", "/")), filepath.Ext(s))
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "template"
	}
	return out
}
