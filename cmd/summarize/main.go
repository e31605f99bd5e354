// Package main provides a CLI command for extractive text summarization.
// Usage: summarize [--count N] [--policy leading|global] [--output json] [file]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"texttools/internal/nlp/language"
	"texttools/internal/observability/logging"
	"texttools/internal/usecase/summary"
)

// SummaryOutput represents the JSON output format for summary results.
type SummaryOutput struct {
	Summary        []string `json:"summary"`
	TotalSentences int      `json:"total_sentences"`
	Policy         string   `json:"policy"`
}

func main() {
	var (
		count        int
		policyName   string
		outputFormat string
	)

	flag.IntVar(&count, "count", 2, "Number of sentences to keep")
	flag.StringVar(&policyName, "policy", "", "Selection policy: leading or global")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	policy, err := summary.ParsePolicy(policyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: summarize [--count N] [--policy leading|global] [--output json] [file]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  summarize article.txt")
		fmt.Fprintln(os.Stderr, "  summarize --count 3 article.txt")
		fmt.Fprintln(os.Stderr, "  cat article.txt | summarize --policy global --output json")
		os.Exit(1)
	}

	initLogger()

	text, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	resources, err := language.English()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load language resources: %v\n", err)
		os.Exit(1)
	}

	svc := summary.NewService(resources)
	result, err := svc.Summarize(context.Background(), text, count, policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if outputFormat == "json" {
		out := SummaryOutput{
			Summary:        result.Summary,
			TotalSentences: result.TotalSentences,
			Policy:         string(result.Policy),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to encode output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, sentence := range result.Summary {
		fmt.Println(sentence)
	}
}

// readInput reads the document from the given file, or stdin when no
// file is named.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// initLogger routes library logs to stderr so they do not mix with the
// summary on stdout.
func initLogger() {
	slog.SetDefault(logging.NewTextLogger())
}
