package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/wb_basket/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ValidateFile — проверяет файл событий строк заказа.
// JSON: один объект или массив объектов; JSONL: по объекту на строку.
// Для одиночного объекта невалидное событие возвращается ошибкой, для наборов — только в отчёте.
func ValidateFile(ctx context.Context, validator ports.LineValidator, filePath string, format InputFormat, ow io.Writer) (*Report, error) {
	if format == FormatAuto {
		format = formatByExt(filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return &Report{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return &Report{}, fmt.Errorf("read file: %w", err)
		}
		return validateJSONDocument(ctx, validator, raw, ow)
	case FormatJSONL:
		return ValidateJSONLStream(ctx, validator, file, ow)
	default:
		return &Report{}, fmt.Errorf("unsupported format: %s", format)
	}
}

func formatByExt(path string) InputFormat {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	// по умолчанию считаем JSON
	return FormatJSON
}

func validateJSONDocument(ctx context.Context, validator ports.LineValidator, raw []byte, ow io.Writer) (*Report, error) {
	rep := &Report{}
	raw = bytes.TrimSpace(raw)

	if len(raw) == 0 || raw[0] != '[' {
		ev, err := ValidateLineFromJSON(ctx, validator, raw)
		if err != nil {
			rep.Invalid++
			return rep, err
		}
		rep.addValid(ev)
		return rep, writeCanonical(ow, ev)
	}

	var batch []json.RawMessage
	if err := json.Unmarshal(raw, &batch); err != nil {
		return rep, fmt.Errorf("invalid json array: %v: %w", err, ErrInvalidLine)
	}
	for i, item := range batch {
		if err := checkOne(ctx, validator, item, i+1, rep, ow); err != nil {
			return rep, err
		}
	}
	return rep, nil
}
