package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Gunvolt24/bloodbank/internal/domain"
	"github.com/Gunvolt24/bloodbank/internal/eligibility"
	"github.com/Gunvolt24/bloodbank/internal/ports"
)

// DecodeForm — строгий разбор формы из JSON.
// Неизвестные поля и данные после объекта считаются ошибкой валидации.
func DecodeForm(raw []byte) (*domain.ScreeningForm, error) {
	var form domain.ScreeningForm
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&form); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidScreening, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidScreening)
	}
	return &form, nil
}

// ScreenFormFromJSON — разбор, валидация и оценка одной формы из JSON.
func ScreenFormFromJSON(ctx context.Context, validator ports.ScreeningValidator, raw []byte) (*domain.ScreeningRecord, error) {
	form, err := DecodeForm(raw)
	if err != nil {
		return nil, err
	}
	input, err := validator.Validate(ctx, form)
	if err != nil {
		return nil, err
	}
	return &domain.ScreeningRecord{
		DonationID:  strings.TrimSpace(form.DonationID),
		Input:       input,
		Verdict:     eligibility.Evaluate(input),
		EvaluatedAt: time.Now().UTC(),
	}, nil
}
