// Пакет eligibility — правило допуска донора к сдаче крови по гемоглобину и давлению.
// Чистая функция: без состояния, без ввода-вывода, безопасна для конкурентного вызова.
package eligibility

import "github.com/Gunvolt24/bloodbank/internal/domain"

// Пороговые значения (границы включительно).
const (
	MinHaemoglobinMale   = 13.0 // г/дл
	MinHaemoglobinFemale = 12.5 // г/дл

	MinSystolicMmHg  = 90
	MaxSystolicMmHg  = 180
	MinDiastolicMmHg = 50
	MaxDiastolicMmHg = 100
)

// Criteria — описание порогов для отображения оператору.
type Criteria struct {
	MinHaemoglobinMale   float64 `json:"min_haemoglobin_male_g_dl"`
	MinHaemoglobinFemale float64 `json:"min_haemoglobin_female_g_dl"`
	SystolicRange        [2]int  `json:"systolic_range_mmhg"`
	DiastolicRange       [2]int  `json:"diastolic_range_mmhg"`
}

// CurrentCriteria — действующие пороги.
func CurrentCriteria() Criteria {
	return Criteria{
		MinHaemoglobinMale:   MinHaemoglobinMale,
		MinHaemoglobinFemale: MinHaemoglobinFemale,
		SystolicRange:        [2]int{MinSystolicMmHg, MaxSystolicMmHg},
		DiastolicRange:       [2]int{MinDiastolicMmHg, MaxDiastolicMmHg},
	}
}

// Evaluate — вердикт по одному обследованию.
// Обе проверки выполняются всегда, поэтому причины могут накопиться обе.
func Evaluate(in domain.DonorScreeningInput) domain.EligibilityVerdict {
	reasons := make([]domain.Reason, 0, 2)

	if !haemoglobinEligible(in.Sex, in.HaemoglobinGramsPerDeciliter) {
		reasons = append(reasons, domain.ReasonLowHaemoglobin)
	}
	if !bloodPressureEligible(in.SystolicMmHg, in.DiastolicMmHg) {
		reasons = append(reasons, domain.ReasonBloodPressureOutOfRange)
	}

	return domain.EligibilityVerdict{
		Eligible: len(reasons) == 0,
		Reasons:  reasons,
	}
}

// haemoglobinEligible — неизвестный пол проверку не проходит.
func haemoglobinEligible(sex domain.Sex, hb float64) bool {
	switch sex {
	case domain.SexMale:
		return hb >= MinHaemoglobinMale
	case domain.SexFemale:
		return hb >= MinHaemoglobinFemale
	default:
		return false
	}
}

func bloodPressureEligible(systolic, diastolic int) bool {
	return systolic >= MinSystolicMmHg && systolic <= MaxSystolicMmHg &&
		diastolic >= MinDiastolicMmHg && diastolic <= MaxDiastolicMmHg
}
