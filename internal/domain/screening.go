package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Sex — пол донора, влияет на порог гемоглобина.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

// ParseSex — разбор пола из свободного ввода (регистр не важен, пробелы обрезаются).
func ParseSex(raw string) (Sex, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(SexMale):
		return SexMale, true
	case string(SexFemale):
		return SexFemale, true
	default:
		return "", false
	}
}

// Reason — код причины отказа.
type Reason string

const (
	ReasonLowHaemoglobin          Reason = "LOW_HAEMOGLOBIN"
	ReasonBloodPressureOutOfRange Reason = "BLOOD_PRESSURE_OUT_OF_RANGE"
)

// DonorScreeningInput — показатели одного обследования (создаётся на каждую проверку).
type DonorScreeningInput struct {
	Sex                          Sex     `json:"sex"`
	HaemoglobinGramsPerDeciliter float64 `json:"haemoglobin_g_dl"`
	SystolicMmHg                 int     `json:"systolic_mmhg"`
	DiastolicMmHg                int     `json:"diastolic_mmhg"`
}

// EligibilityVerdict — результат проверки допуска к донации.
// Reasons пуст при Eligible == true; порядок кодов фиксирован.
type EligibilityVerdict struct {
	Eligible bool     `json:"eligible"`
	Reasons  []Reason `json:"reasons"`
}

// Has — есть ли среди причин отказа код r.
func (v EligibilityVerdict) Has(r Reason) bool {
	for _, got := range v.Reasons {
		if got == r {
			return true
		}
	}
	return false
}

// Outcome — решение по донации для оператора.
type Outcome string

const (
	OutcomeApproved Outcome = "APPROVED"
	OutcomeRejected Outcome = "REJECTED"
)

func (v EligibilityVerdict) Outcome() Outcome {
	if v.Eligible {
		return OutcomeApproved
	}
	return OutcomeRejected
}

// Message — текст уведомления оператору.
func (v EligibilityVerdict) Message() string {
	if v.Eligible {
		return "Donor is ELIGIBLE. Blood approved for donation."
	}
	return "Donor is NOT ELIGIBLE. Blood donation rejected."
}

// FormValue — значение поля формы как его ввёл оператор.
// Из JSON принимается строка или число (сохраняется исходный литерал).
type FormValue string

var errFormValue = errors.New("value must be a string or a number")

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	// число оставляем литералом, дальше его разбирает валидатор
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errFormValue
	}
	lit := n.String()
	if strings.ContainsAny(lit, "eE") {
		// экспоненту приводим к десятичной записи: 1.2e2 -> 120
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return errFormValue
		}
		lit = strconv.FormatFloat(f, 'f', -1, 64)
	}
	*v = FormValue(lit)
	return nil
}

// ScreeningForm — ввод экрана тестирования крови (до приведения типов).
type ScreeningForm struct {
	DonationID  string    `json:"donation_id" form:"donation_id" validate:"max=64"`
	Sex         string    `json:"sex"         form:"sex"         validate:"required"`
	Haemoglobin FormValue `json:"haemoglobin" form:"haemoglobin" validate:"required,numeric"`
	Systolic    FormValue `json:"systolic"    form:"systolic"    validate:"required,number"`
	Diastolic   FormValue `json:"diastolic"   form:"diastolic"   validate:"required,number"`
}

// ScreeningRecord — результат обследования конкретной донации.
type ScreeningRecord struct {
	DonationID  string              `json:"donation_id"`
	Input       DonorScreeningInput `json:"input"`
	Verdict     EligibilityVerdict  `json:"verdict"`
	EvaluatedAt time.Time           `json:"evaluated_at"`
}

// ScreeningStats — агрегаты по журналу обследований.
type ScreeningStats struct {
	Total      int            `json:"total"`
	Eligible   int            `json:"eligible"`
	Ineligible int            `json:"ineligible"`
	ByReason   map[Reason]int `json:"by_reason"`
}

// SafeShare — доля допущенных донаций в процентах (0 при пустом журнале).
func (s ScreeningStats) SafeShare() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Eligible) * 100 / float64(s.Total)
}
