package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

func TestValidateIssueFields(t *testing.T) {
	longDesc := strings.Repeat("x", 501)

	tests := []struct {
		name        string
		title       string
		description string
		category    models.IssueCategory
		wantField   string
	}{
		{"valid", "Leaky tap", "The tap in room 101 has been leaking for days", models.CategoryPlumbing, ""},
		{"missing title", "", "The tap in room 101 has been leaking for days", models.CategoryPlumbing, "title"},
		{"short description", "Leaky tap", "too short", models.CategoryPlumbing, "description"},
		{"long description", "Leaky tap", longDesc, models.CategoryPlumbing, "description"},
		{"unknown category", "Leaky tap", "The tap in room 101 has been leaking for days", "laundry", "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateIssueFields(tt.title, tt.description, tt.category)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			var valErr *apperrors.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if valErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", valErr.Field, tt.wantField)
			}
		})
	}
}

func TestValidPaymentStatus(t *testing.T) {
	if st, ok := validPaymentStatus(" Success "); !ok || st != models.PaymentSuccess {
		t.Errorf("expected success to be accepted, got (%q, %v)", st, ok)
	}
	if st, ok := validPaymentStatus("failed"); !ok || st != models.PaymentFailed {
		t.Errorf("expected failed to be accepted, got (%q, %v)", st, ok)
	}
	if _, ok := validPaymentStatus("pending"); ok {
		t.Errorf("expected pending to be rejected")
	}
}

func TestNormalizeBlocks(t *testing.T) {
	got := normalizeBlocks([]string{" A ", "b", "", "C"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}
