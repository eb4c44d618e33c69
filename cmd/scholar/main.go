package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"smart-scholar/internal/ai"
)

func main() {
	// A local .env is the only configuration file; absence is fine.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var verbose bool
	root := &cobra.Command{
		Use:   "scholar",
		Short: "Turn a document or URL into an AI summary or slide deck",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(summarizeCmd(log))
	root.AddCommand(slidesCmd(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newGenerator picks the backend for --ai. "off" gives the no-op generator so
// the pipeline and exports can be exercised without an API key.
func newGenerator(ctx context.Context, provider, model string, log *logrus.Logger) (ai.Generator, error) {
	if !strings.EqualFold(provider, "gemini") {
		return ai.Noop{}, nil
	}
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		key = os.Getenv("GOOGLE_API_KEY")
	}
	return ai.NewGemini(ctx, key, model, log)
}

func splitFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}
