package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proptools/teval/eval"
	"github.com/proptools/teval/formatter"
	"github.com/proptools/teval/internal/graph"
)

var graphOutput string

var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the statement tree as a GraphViz file",
	Long: `Parses a statement file and writes its expression tree in GraphViz DOT
format, for rendering with an external tool.
Example) teval graph -o tree.dot statement.prop`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one statement file path")
			os.Exit(1)
		}
		runGraphExport(logger, args[0], graphOutput)
	},
}

func init() {
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "Output path for the DOT file (default: stdout)")
}

func runGraphExport(logger *zap.Logger, path, output string) {
	engine := eval.New(logger, nil)
	res, err := engine.ParseFile(path)
	if err != nil {
		fmt.Print(formatter.FormatError(err, path, readSource(path)))
		os.Exit(1)
	}

	if output == "" {
		if err := graph.Write(os.Stdout, res.Tree); err != nil {
			logger.Error("Failed to write DOT output", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := graph.WriteFile(output, res.Tree); err != nil {
		logger.Error("Failed to render tree to GraphViz file", zap.Error(err))
		os.Exit(1)
	}
	fmt.Printf("GraphViz file created: %s\n", output)
}
