package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/wb_basket/pkg/validate"
)

// CLI-приложение для валидации событий строк заказа.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	lineValidator := validate.NewLineValidator()

	path := *inputPath
	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	report, err := validate.ValidateFile(ctx, lineValidator, path, format, os.Stdout)
	for _, le := range report.Errors {
		fmt.Fprintf(os.Stderr, "#%d: %v\n", le.Line, le.Err)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, report)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", report)
}
