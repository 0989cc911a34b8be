package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/bloodbank/internal/ports"
)

// BatchResult — статистика пакетного обследования.
type BatchResult struct {
	EligibleCount   int
	IneligibleCount int
	InvalidCount    int
}

func (r BatchResult) String() string {
	return fmt.Sprintf("%d eligible / %d ineligible / %d invalid", r.EligibleCount, r.IneligibleCount, r.InvalidCount)
}

// ScreenJSONLStream — читает JSONL из reader’а, оценивает каждую форму, результаты пишет в writer.
// На каждую валидную форму — одна строка компактного JSON с записью обследования.
// Пустые строки пропускаются.
func ScreenJSONLStream(ctx context.Context, validator ports.ScreeningValidator, ir io.Reader, ow io.Writer) (BatchResult, error) {
	var res BatchResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		rec, err := ScreenFormFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidCount++
			// не возвращаем ошибку — просто пропускаем невалидную строку
			continue
		}

		if err := writeLine(ow, rec); err != nil {
			return res, err
		}
		if rec.Verdict.Eligible {
			res.EligibleCount++
		} else {
			res.IneligibleCount++
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

func writeLine(ow io.Writer, v any) error {
	marshal, err := json.Marshal(v) // маршалим в компактный JSON
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if _, err := ow.Write(marshal); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if _, err := ow.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}
