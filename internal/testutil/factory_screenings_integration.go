//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/bloodbank/internal/domain"
	"github.com/Gunvolt24/bloodbank/internal/eligibility"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeScreening — результат обследования с уникальным ID донации; вердикт считается по показателям.
func MakeScreening(opts ...func(*domain.DonorScreeningInput)) domain.ScreeningRecord {
	input := domain.DonorScreeningInput{
		Sex:                          domain.SexMale,
		HaemoglobinGramsPerDeciliter: 14.2,
		SystolicMmHg:                 120,
		DiastolicMmHg:                80,
	}
	for _, opt := range opts {
		opt(&input)
	}
	return domain.ScreeningRecord{
		DonationID:  "don-" + UniqSuffix(),
		Input:       input,
		Verdict:     eligibility.Evaluate(input),
		EvaluatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// LowHaemoglobin — модификатор для отказа по гемоглобину.
func LowHaemoglobin(in *domain.DonorScreeningInput) {
	in.Sex = domain.SexFemale
	in.HaemoglobinGramsPerDeciliter = 11.0
}

// HighBloodPressure — модификатор для отказа по давлению.
func HighBloodPressure(in *domain.DonorScreeningInput) {
	in.SystolicMmHg = 190
}
