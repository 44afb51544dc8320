// Package cli is the command-line front end: it reads a batch file of match
// snapshots, evaluates it and prints the result table.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
	"github.com/yyu399/goal-model-v3.1/internal/usecase"
	"gopkg.in/yaml.v3"
)

var headers = map[domain.Locale][]string{
	domain.LocaleEnglish: {"MATCH", "MINUTE", "SCORE", "CORNERS", "GOAL", "CORNER ADVICE", "NEXT GOAL", "ODDS MOVEMENT"},
	domain.LocaleChinese: {"比赛", "时间", "比分", "总角球", "进球建议", "角球建议", "下一球预测", "盘口变化"},
}

// Run executes the evaluate command and returns the process exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, logger *logrus.Logger) int {
	fs := flag.NewFlagSet("evaluate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "YAML or JSON file with a top-level `matches` list (- for stdin)")
	format := fs.String("format", "table", "output format: table or json")
	lang := fs.String("lang", "en", "label language: en or zh")
	maxBatch := fs.Int("max", 0, "reject batches larger than this (0 = unbounded)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *file == "" {
		fmt.Fprintln(stderr, "evaluate: -file is required")
		fs.Usage()
		return 2
	}

	locale, err := domain.ParseLocale(*lang)
	if err != nil {
		fmt.Fprintf(stderr, "evaluate: %v\n", err)
		return 2
	}

	request, err := readBatch(*file)
	if err != nil {
		fmt.Fprintf(stderr, "evaluate: %v\n", err)
		return 1
	}

	svc := usecase.NewEvaluationService(nil, logger, usecase.EvaluationServiceConfig{MaxBatchSize: *maxBatch})
	results, err := svc.EvaluateBatch(ctx, request.Matches)
	if err != nil {
		fmt.Fprintf(stderr, "evaluate: %v\n", err)
		return 1
	}

	switch *format {
	case "table":
		err = WriteTable(stdout, results, locale)
	case "json":
		err = writeJSON(stdout, results, locale)
	default:
		fmt.Fprintf(stderr, "evaluate: unknown format %q\n", *format)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "evaluate: %v\n", err)
		return 1
	}

	return 0
}

// readBatch decodes a batch file. .json files go through encoding/json,
// everything else through YAML.
func readBatch(path string) (*domain.EvaluateRequest, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return decodeBatch(data, strings.EqualFold(filepath.Ext(path), ".json"))
}

func decodeBatch(data []byte, isJSON bool) (*domain.EvaluateRequest, error) {
	var request domain.EvaluateRequest
	if isJSON {
		if err := json.Unmarshal(data, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &request); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
	}

	if request.Matches == nil {
		return nil, errors.Join(domain.ErrInvalidRequest, domain.ErrEmptyBatch)
	}
	return &request, nil
}

// WriteTable renders results as an aligned text table, one row per match
func WriteTable(w io.Writer, results []domain.EvaluationResult, locale domain.Locale) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	cols, ok := headers[locale]
	if !ok {
		cols = headers[domain.LocaleEnglish]
	}
	fmt.Fprintln(tw, strings.Join(cols, "\t"))

	for _, r := range results {
		row := []string{
			r.Name,
			strconv.Itoa(r.Minute),
			r.Score,
			strconv.Itoa(r.TotalCorners),
			fmt.Sprintf("%s (%d)", r.GoalRecommendation.Label(locale), r.GoalScore),
			r.CornerRecommendation.Label(locale),
			r.NextGoalPrediction.Label(locale),
			r.OddsMovement.Label(locale),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

type jsonRow struct {
	domain.EvaluationResult
	Labels map[string]string `json:"labels"`
}

func writeJSON(w io.Writer, results []domain.EvaluationResult, locale domain.Locale) error {
	rows := make([]jsonRow, len(results))
	for i, r := range results {
		rows[i] = jsonRow{
			EvaluationResult: r,
			Labels: map[string]string{
				"goalRecommendation":   r.GoalRecommendation.Label(locale),
				"cornerRecommendation": r.CornerRecommendation.Label(locale),
				"nextGoalPrediction":   r.NextGoalPrediction.Label(locale),
				"oddsMovement":         r.OddsMovement.Label(locale),
			},
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{"results": rows})
}
