package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proptools/teval/eval"
	"github.com/proptools/teval/formatter"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-evaluate statement files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		engine := eval.New(logger, loadPresets())
		watcher, err := eval.NewWatcher(engine, logger, args, reportChange)
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		if err := watcher.Start(); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer watcher.Stop()

		fmt.Println("watching for changes, press Ctrl-C to stop")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}

func init() {
	watchCmd.Flags().StringVar(&varsFile, "vars", "", "YAML file with preset variable bindings")
}

func reportChange(path string, res *eval.Result, err error) {
	if err != nil {
		fmt.Print(formatter.FormatError(err, path, readSource(path)))
		return
	}
	fmt.Printf("%s: %s\n", path, formatter.Verdict(res.Value, asBits))
}
