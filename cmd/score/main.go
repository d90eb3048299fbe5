// Command score runs the scoring pipeline once against a JSON request read
// from a file or stdin, calling the configured model server and printing the
// scored result. Useful for smoke-testing a model deployment without running
// the HTTP service.
//
// Usage:
//
//	go run ./cmd/score -input request.json -model-url http://localhost:8000
//	echo '{"month":"aug","temp":33.1,"RH":20,"wind":6.7}' | go run ./cmd/score -input -
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ag21o9/fire-risk-scoring-service/internal/adapter/modelserver"
	"github.com/ag21o9/fire-risk-scoring-service/internal/domain"
	"github.com/ag21o9/fire-risk-scoring-service/internal/observability"
	"github.com/ag21o9/fire-risk-scoring-service/internal/scoring"
	"github.com/jonboulle/clockwork"
)

func main() {
	input := flag.String("input", "-", "path to a JSON request file, or - for stdin")
	modelURL := flag.String("model-url", "http://localhost:8000", "base URL of the model server")
	modelTimeout := flag.Duration("model-timeout", 5*time.Second, "model server request timeout")
	at := flag.String("at", "", "fixed RFC3339 time for calendar defaults (default: now)")
	monthLabels := flag.String("month-labels", "", "path to a month vocabulary JSON artifact (default: built-in)")
	dayLabels := flag.String("day-labels", "", "path to a day vocabulary JSON artifact (default: built-in)")
	flag.Parse()

	if code := run(*input, *modelURL, *modelTimeout, *at, *monthLabels, *dayLabels); code != 0 {
		os.Exit(code)
	}
}

func run(input, modelURL string, modelTimeout time.Duration, at, monthLabels, dayLabels string) int {
	if at != "" {
		fixed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: parse -at: %v\n", err)
			return 1
		}
		domain.SetClock(clockwork.NewFakeClockAt(fixed))
		defer domain.SetClock(nil)
	}

	raw, err := readInput(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read input: %v\n", err)
		return 1
	}

	dec := json.NewDecoder(raw)
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: decode request: %v\n", err)
		return 1
	}

	req, err := scoring.ParseRequest(fields)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	months, days, err := loadEncoders(monthLabels, dayLabels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load encoders: %v\n", err)
		return 1
	}

	logger := observability.NewLogger("warn", "text")
	model := modelserver.NewClient(modelURL, modelTimeout, logger)
	scorer := scoring.NewScorer(months, days, model, nil, logger, observability.NewMetrics())

	res, err := scorer.Score(context.Background(), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: score: %v\n", err)
		return 1
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: encode result: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

func readInput(input string) (io.Reader, error) {
	if input == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func loadEncoders(monthPath, dayPath string) (months, days *domain.LabelEncoder, err error) {
	if monthPath != "" {
		months, err = domain.LoadLabelEncoder("month", monthPath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		months = domain.NewLabelEncoder("month", domain.DefaultMonthLabels)
	}

	if dayPath != "" {
		days, err = domain.LoadLabelEncoder("day", dayPath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		days = domain.NewLabelEncoder("day", domain.DefaultDayLabels)
	}

	return months, days, nil
}
