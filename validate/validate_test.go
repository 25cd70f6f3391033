// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"context"
	"testing"

	"github.com/danielhkuo/talent-studio/models"
)

func TestStruct(t *testing.T) {
	age := 7
	rating := 9

	tests := []struct {
		name    string
		input   any
		wantErr string
	}{
		{
			name: "valid submission",
			input: models.SubmitApplicationRequest{
				FullName: "Anna", Age: 10, WorkTitle: "Sunset", Email: "a@example.com",
				ContestName: "Spring", WorkFile: "aGVsbG8=", FileName: "sunset.jpg",
			},
		},
		{
			name: "missing email",
			input: models.SubmitApplicationRequest{
				FullName: "Anna", Age: 10, WorkTitle: "Sunset",
				ContestName: "Spring", WorkFile: "aGVsbG8=", FileName: "sunset.jpg",
			},
			wantErr: "Missing required field: email",
		},
		{
			name:    "payment without applicant data",
			input:   models.CreatePaymentRequest{Amount: 100, Description: "Entry fee"},
			wantErr: "Missing required field: application_data",
		},
		{
			name: "payment with zero amount",
			input: models.CreatePaymentRequest{
				Description:     "Entry fee",
				ApplicationData: &models.ApplicantData{FullName: "Anna", Age: &age},
			},
			wantErr: "Field is below minimum value: amount",
		},
		{
			name: "nested applicant name missing",
			input: models.CreatePaymentRequest{
				Amount: 100, Description: "Entry fee",
				ApplicationData: &models.ApplicantData{Age: &age},
			},
			wantErr: "Missing required field: application_data.full_name",
		},
		{
			name:    "rating out of range",
			input:   models.CreateReviewRequest{AuthorName: "Olga", Text: "Great", Rating: &rating},
			wantErr: "Field exceeds maximum value: rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(context.Background(), tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("expected %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}
