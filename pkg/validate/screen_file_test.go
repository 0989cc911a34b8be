package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/bloodbank/internal/domain"
)

func formJSON(id, sex, hb, sys, dia string) string {
	return `{"donation_id":"` + id + `","sex":"` + sex + `","haemoglobin":"` + hb +
		`","systolic":"` + sys + `","diastolic":"` + dia + `"}`
}

func TestScreenFile_JSON_Auto_Eligible(t *testing.T) {
	ctx := context.Background()
	validator := NewScreeningValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	if err := os.WriteFile(path, []byte(formJSON("d-1", "male", "13.0", "120", "80")), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	res, err := ScreenFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.String() != "1 eligible / 0 ineligible / 0 invalid" {
		t.Fatalf("unexpected summary: %s", res)
	}

	var rec domain.ScreeningRecord
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &rec); err != nil {
		t.Fatalf("output is not a record: %v", err)
	}
	if rec.DonationID != "d-1" || !rec.Verdict.Eligible {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestScreenFile_JSON_Invalid(t *testing.T) {
	ctx := context.Background()
	validator := NewScreeningValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(formJSON("d-1", "", "13.0", "120", "80")), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	res, err := ScreenFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("invalid form must be counted, not failed: %v", err)
	}
	if res.InvalidCount != 1 || res.EligibleCount != 0 || res.IneligibleCount != 0 || out.Len() != 0 {
		t.Fatalf("unexpected result: %+v out=%q", res, out.String())
	}
}

func TestScreenFile_JSONL_Auto_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewScreeningValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "batch.jsonl")
	content := formJSON("d-1", "male", "13.0", "120", "80") + "\n" +
		"\n" + // пустая строка пропускается
		formJSON("d-2", "female", "10.0", "60", "40") + "\n" +
		formJSON("d-3", "female", "abc", "120", "80") + "\n" + // нечисловой гемоглобин
		`{"donation_id":"d-4","unknown":1}` + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	res, err := ScreenFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.String() != "1 eligible / 1 ineligible / 2 invalid" {
		t.Fatalf("unexpected summary: %s", res)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}

	var second domain.ScreeningRecord
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("invalid output line: %v", err)
	}
	if !second.Verdict.Has(domain.ReasonLowHaemoglobin) || !second.Verdict.Has(domain.ReasonBloodPressureOutOfRange) {
		t.Fatalf("expected both reasons, got %v", second.Verdict.Reasons)
	}
}

func TestScreenReader_UnsupportedFormat(t *testing.T) {
	_, err := ScreenReader(context.Background(), NewScreeningValidator(), strings.NewReader(""), InputFormat("xml"), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestScreenFile_OpenError(t *testing.T) {
	_, err := ScreenFile(context.Background(), NewScreeningValidator(), filepath.Join(t.TempDir(), "missing.json"), FormatAuto, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "open file") {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestDecodeForm_Strict(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"broken", "{"},
		{"unknown field", `{"sex":"male","blood_group":"O-"}`},
		{"trailing data", formJSON("d", "male", "13", "120", "80") + " {}"},
	}
	for _, tt := range tests {
		if _, err := DecodeForm([]byte(tt.raw)); !errors.Is(err, ErrInvalidScreening) {
			t.Fatalf("%s: expected ErrInvalidScreening, got %v", tt.name, err)
		}
	}

	form, err := DecodeForm([]byte(`{"sex":"female","haemoglobin":12.5,"systolic":90,"diastolic":50}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.Haemoglobin != "12.5" || form.Systolic != "90" {
		t.Fatalf("numbers must be kept as text: %+v", form)
	}
}

func TestWriteLine_MarshalError(t *testing.T) {
	var out bytes.Buffer
	err := writeLine(&out, make(chan int))
	if err == nil || !strings.Contains(err.Error(), "marshal record") {
		t.Fatalf("expected marshal error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing must be written on marshal error, got %q", out.String())
	}
}
