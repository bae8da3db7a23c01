package entity

import (
	"testing"
	"time"
)

func TestComputeDaysUntilPPAP(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	m := &MassProduction{}
	m.ComputeDaysUntilPPAP(now)
	if m.DaysUntilPPAPSubmission != nil {
		t.Errorf("Expected nil countdown without a submission date, got %d", *m.DaysUntilPPAPSubmission)
	}

	future := now.AddDate(0, 0, 10)
	m.PPAPSubmissionDate = &future
	m.ComputeDaysUntilPPAP(now)
	if m.DaysUntilPPAPSubmission == nil || *m.DaysUntilPPAPSubmission != 10 {
		t.Errorf("Expected 10 days, got %v", m.DaysUntilPPAPSubmission)
	}

	past := now.AddDate(0, 0, -3)
	m.PPAPSubmissionDate = &past
	m.ComputeDaysUntilPPAP(now)
	if m.DaysUntilPPAPSubmission == nil || *m.DaysUntilPPAPSubmission != -3 {
		t.Errorf("Expected -3 days, got %v", m.DaysUntilPPAPSubmission)
	}
}

func TestFeasibilityFlagsCoverDeclaredFields(t *testing.T) {
	f := &Feasibility{}
	flags := f.Flags()
	if len(flags) != len(FeasibilityFields) {
		t.Fatalf("Expected %d flags, got %d", len(FeasibilityFields), len(flags))
	}
	for _, name := range FeasibilityFields {
		ptr, ok := flags[name]
		if !ok {
			t.Errorf("Attribute %q missing from Flags()", name)
			continue
		}
		*ptr = true
	}
	if !f.Product || !f.ProductionSite || !f.PPMLevel {
		t.Error("Flags() pointers do not write through to the entity")
	}
}
