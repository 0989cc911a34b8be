package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/bloodbank/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ScreenFile — оценивает файл с формами (JSON — одна форма, JSONL — по форме на строку)
// и пишет записи обследований в writer.
func ScreenFile(ctx context.Context, validator ports.ScreeningValidator, filePath string, format InputFormat, ow io.Writer) (BatchResult, error) {
	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		default:
			// по умолчанию считаем JSON
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return BatchResult{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ScreenReader(ctx, validator, file, format, ow)
}

// ScreenReader — то же, что ScreenFile, но для произвольного reader’а (например, stdin).
func ScreenReader(ctx context.Context, validator ports.ScreeningValidator, ir io.Reader, format InputFormat, ow io.Writer) (BatchResult, error) {
	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(ir)
		if err != nil {
			return BatchResult{}, fmt.Errorf("read input: %w", err)
		}
		rec, err := ScreenFormFromJSON(ctx, validator, raw)
		if errors.Is(err, ErrInvalidScreening) {
			// невалидная форма — это результат проверки, а не сбой
			return BatchResult{InvalidCount: 1}, nil
		}
		if err != nil {
			return BatchResult{}, err
		}
		if err := writeLine(ow, rec); err != nil {
			return BatchResult{}, err
		}
		if rec.Verdict.Eligible {
			return BatchResult{EligibleCount: 1}, nil
		}
		return BatchResult{IneligibleCount: 1}, nil

	case FormatJSONL:
		return ScreenJSONLStream(ctx, validator, ir, ow)

	default:
		return BatchResult{}, fmt.Errorf("unsupported format: %s", format)
	}
}
