package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/Gunvolt24/bloodbank/internal/domain"
	"github.com/Gunvolt24/bloodbank/internal/ports"
	"github.com/go-playground/validator/v10"
)

// Проверка, что ScreeningValidator удовлетворяет интерфейсу ScreeningValidator.
var _ ports.ScreeningValidator = (*ScreeningValidator)(nil)

// ErrInvalidScreening — базовая (sentinel error) ошибка валидации формы обследования.
var ErrInvalidScreening = errors.New("screening validation failed")

// ScreeningValidator — приведение свободного ввода формы к числовым показателям.
// Оценка допуска вызывается только после успешной валидации.
type ScreeningValidator struct {
	validate *validator.Validate
}

// NewScreeningValidator — конструктор ScreeningValidator.
func NewScreeningValidator() *ScreeningValidator {
	v := validator.New()

	// В сообщениях используем имена из json-тегов, а не имена полей Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ScreeningValidator{validate: v}
}

// Validate — проверяет форму и возвращает показатели обследования.
// Возвращает ErrInvalidScreening (с обёрнутой причиной) при любой проблеме.
// Давление принимается целым числом в пределах int32 (столбцы журнала INTEGER).
func (v *ScreeningValidator) Validate(ctx context.Context, form *domain.ScreeningForm) (domain.DonorScreeningInput, error) {
	if form == nil {
		return domain.DonorScreeningInput{}, fmt.Errorf("%w: форма не может быть nil", ErrInvalidScreening)
	}

	normalized := trimForm(form)
	if err := v.validate.StructCtx(ctx, &normalized); err != nil {
		return domain.DonorScreeningInput{}, fmt.Errorf("%w: %s", ErrInvalidScreening, describe(err))
	}

	sex, ok := domain.ParseSex(normalized.Sex)
	if !ok {
		return domain.DonorScreeningInput{}, fmt.Errorf("%w: sex должен быть male или female", ErrInvalidScreening)
	}

	hb, err := strconv.ParseFloat(string(normalized.Haemoglobin), 64)
	if err != nil {
		return domain.DonorScreeningInput{}, fmt.Errorf("%w: haemoglobin некорректен", ErrInvalidScreening)
	}
	if hb < 0 {
		return domain.DonorScreeningInput{}, fmt.Errorf("%w: haemoglobin должен быть неотрицательным", ErrInvalidScreening)
	}

	systolic, err := parseReading("systolic", normalized.Systolic)
	if err != nil {
		return domain.DonorScreeningInput{}, err
	}
	diastolic, err := parseReading("diastolic", normalized.Diastolic)
	if err != nil {
		return domain.DonorScreeningInput{}, err
	}

	return domain.DonorScreeningInput{
		Sex:                          sex,
		HaemoglobinGramsPerDeciliter: hb,
		SystolicMmHg:                 systolic,
		DiastolicMmHg:                diastolic,
	}, nil
}

// parseReading — давление в мм рт. ст.; тег number уже гарантирует только цифры.
// Верхняя граница — int32, иначе запись не ляжет в журнал.
func parseReading(field string, raw domain.FormValue) (int, error) {
	n, err := strconv.ParseInt(string(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s вне допустимого диапазона", ErrInvalidScreening, field)
	}
	return int(n), nil
}

func trimForm(form *domain.ScreeningForm) domain.ScreeningForm {
	return domain.ScreeningForm{
		DonationID:  strings.TrimSpace(form.DonationID),
		Sex:         strings.TrimSpace(form.Sex),
		Haemoglobin: domain.FormValue(strings.TrimSpace(string(form.Haemoglobin))),
		Systolic:    domain.FormValue(strings.TrimSpace(string(form.Systolic))),
		Diastolic:   domain.FormValue(strings.TrimSpace(string(form.Diastolic))),
	}
}

// describe — человекочитаемое описание всех ошибок полей.
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" обязателен")
		case "numeric":
			msgs = append(msgs, fe.Field()+" должен быть числом")
		case "number":
			msgs = append(msgs, fe.Field()+" должен быть целым неотрицательным числом")
		case "max":
			msgs = append(msgs, fe.Field()+" длиннее "+fe.Param()+" символов")
		default:
			msgs = append(msgs, fe.Field()+" некорректен")
		}
	}
	return strings.Join(msgs, "; ")
}
