package services

import (
	"errors"
	"testing"
)

func TestValidateProfileInput(t *testing.T) {
	valid := ProfileInput{
		Name:                "Jordan Lee",
		Role:                "student",
		FreeTime:            "18:00-20:30",
		TrustedContactName:  "Sam Rivera",
		TrustedContactPhone: "15551234567",
	}

	tests := []struct {
		name    string
		mutate  func(input *ProfileInput)
		wantErr error
	}{
		{name: "valid input", mutate: func(input *ProfileInput) {}},
		{name: "optional fields empty", mutate: func(input *ProfileInput) {
			input.FreeTime = ""
			input.TrustedContactName = ""
			input.TrustedContactPhone = ""
		}},
		{name: "empty name", mutate: func(input *ProfileInput) { input.Name = "  " }, wantErr: ErrInvalidName},
		{name: "name with digits", mutate: func(input *ProfileInput) { input.Name = "Jordan99" }, wantErr: ErrInvalidName},
		{name: "unknown role", mutate: func(input *ProfileInput) { input.Role = "wizard" }, wantErr: ErrInvalidRole},
		{name: "malformed free time", mutate: func(input *ProfileInput) { input.FreeTime = "6pm to 8pm" }, wantErr: ErrInvalidFreeTime},
		{name: "inverted free time range", mutate: func(input *ProfileInput) { input.FreeTime = "20:00-18:00" }, wantErr: ErrInvalidFreeTime},
		{name: "contact name with symbols", mutate: func(input *ProfileInput) { input.TrustedContactName = "Sam!" }, wantErr: ErrInvalidName},
		{name: "contact phone with dashes", mutate: func(input *ProfileInput) { input.TrustedContactPhone = "555-1234" }, wantErr: ErrInvalidContactPhone},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			input := valid
			testCase.mutate(&input)
			err := ValidateProfileInput(input)
			if testCase.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if testCase.wantErr != nil && !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestIsValidFreeTimeRange(t *testing.T) {
	valid := []string{"00:00-23:59", "09:15-09:16", "18:00-20:30"}
	for _, value := range valid {
		if !isValidFreeTimeRange(value) {
			t.Fatalf("expected %q to be valid", value)
		}
	}

	invalid := []string{"", "18:00", "18:00-18:00", "24:00-25:00", "9:00-10:00", "18:00 - 20:00"}
	for _, value := range invalid {
		if isValidFreeTimeRange(value) {
			t.Fatalf("expected %q to be invalid", value)
		}
	}
}
