package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/Gunvolt24/bloodbank/pkg/validate"
)

// CLI для пакетной оценки форм обследования без сервера.
// Записи с вердиктами пишутся в stdout, сводка в stderr.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	validator := validate.NewScreeningValidator()
	format := validate.InputFormat(*formatStr)

	var (
		summary validate.BatchResult
		err     error
	)
	if *inputPath == "" {
		// stdin: по умолчанию JSONL
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
		summary, err = validate.ScreenReader(ctx, validator, os.Stdin, format, os.Stdout)
	} else {
		summary, err = validate.ScreenFile(ctx, validator, *inputPath, format, os.Stdout)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "screening: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "screening done (%s)\n", summary)
}
