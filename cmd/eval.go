package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proptools/teval/eval"
	"github.com/proptools/teval/formatter"
)

var (
	varsFile       string
	asBits         bool
	evalJSONOutput bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [paths...]",
	Short: "Evaluate statement files and print their truth values",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide statement file paths, or '-' for stdin")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine := eval.New(logger, loadPresets())

		if len(args) == 1 && args[0] == "-" {
			runStdin(engine)
			return
		}

		results, err := eval.ProcessFiles(ctx, logger, engine, args)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}
		printResults(results)
	},
}

func init() {
	evalCmd.Flags().StringVar(&varsFile, "vars", "", "YAML file with preset variable bindings")
	evalCmd.Flags().BoolVar(&asBits, "bits", false, "Print 1/0 instead of true/false")
	evalCmd.Flags().BoolVar(&evalJSONOutput, "json", false, "Output results in JSON format")
}

func loadPresets() map[string]bool {
	if varsFile == "" {
		return nil
	}
	config, err := eval.LoadConfig(varsFile)
	if err != nil {
		logger.Fatal("Failed to load vars file", zap.String("file", varsFile), zap.Error(err))
	}
	return config.Vars
}

func runStdin(engine *eval.Engine) {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Error("Error reading stdin", zap.Error(err))
		os.Exit(1)
	}
	res, err := engine.RunSource(source)
	if err != nil {
		fmt.Print(formatter.FormatError(err, "<stdin>", string(source)))
		os.Exit(1)
	}
	fmt.Println(formatter.Verdict(res.Value, asBits))
}

func printResults(results []eval.FileResult) {
	failed := false

	if evalJSONOutput {
		values := make(map[string]*bool, len(results))
		for _, r := range results {
			if r.Err != nil {
				values[r.Path] = nil
				failed = true
				continue
			}
			v := r.Result.Value
			values[r.Path] = &v
		}
		d, err := json.Marshal(values)
		if err != nil {
			logger.Error("Error marshalling results to JSON", zap.Error(err))
			os.Exit(1)
		}
		fmt.Println(string(d))
	} else {
		for _, r := range results {
			if r.Err != nil {
				fmt.Print(formatter.FormatError(r.Err, r.Path, readSource(r.Path)))
				failed = true
				continue
			}
			if len(results) > 1 {
				fmt.Printf("%s: %s\n", r.Path, formatter.Verdict(r.Result.Value, asBits))
			} else {
				fmt.Println(formatter.Verdict(r.Result.Value, asBits))
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}

func readSource(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(content)
}
