// Command advisor generates one portfolio recommendation report from quiz
// text supplied on stdin or via a file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/paasa/advisor/internal/app"
	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/interfaces"
)

func main() {
	os.Exit(run())
}

func run() int {
	inputPath := flag.String("input", "", "Quiz text file (default: stdin)")
	configPath := flag.String("config", "", "Config file path (default: advisor.toml next to the binary)")
	portfolioID := flag.Int("portfolio", 0, "Explicit model portfolio ID (1-3), overrides selection")
	outputDir := flag.String("output", "", "Output directory (overrides config)")
	requirePortfolio := flag.Bool("require-portfolio", false, "Fail when no explicit portfolio ID is provided or found in input")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(common.GetFullVersion())
		return 0
	}

	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	if *outputDir != "" {
		os.Setenv("ADVISOR_OUTPUT_DIR", *outputDir)
	}

	quizText, err := readInput(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		return 1
	}
	if strings.TrimSpace(quizText) == "" {
		fmt.Fprintln(os.Stderr, "No quiz text provided")
		return 1
	}

	a, err := app.NewApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	defer a.Close()

	record, err := a.ReportService.Generate(context.Background(), quizText, interfaces.GenerateOptions{
		PortfolioID:        *portfolioID,
		RequirePortfolioID: *requirePortfolio,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report generation failed: %v\n", err)
		return 1
	}

	fmt.Printf("Report #%d generated (id %s)\n", record.Number, record.ID)
	fmt.Printf("Output: %s/portfolio_%d/\n", a.Config.OutputDir, record.Number)
	return 0
}

// readInput reads quiz text from the named file, or stdin when no file is
// given.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
