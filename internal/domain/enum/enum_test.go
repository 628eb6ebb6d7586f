package enum

import (
	"encoding/json"
	"testing"
)

func TestProductStatus_JSONRoundTripsNames(t *testing.T) {
	var s ProductStatus
	if err := json.Unmarshal([]byte(`"Out of Stock"`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s != ProductStatusOutOfStock {
		t.Fatalf("expected OutOfStock, got %v", s)
	}
	if err := json.Unmarshal([]byte(`1`), &s); err != nil {
		t.Fatalf("unmarshal int: %v", err)
	}
	if s != ProductStatusDiscontinued || s.Selectable() {
		t.Fatalf("expected non-selectable Discontinued, got %v", s)
	}
}

func TestProductStatus_ScanAcceptsStrings(t *testing.T) {
	var s ProductStatus
	if err := s.Scan("Discontinued"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if s != ProductStatusDiscontinued {
		t.Fatalf("expected Discontinued, got %v", s)
	}
	if err := s.Scan(nil); err != nil || s != ProductStatusActive {
		t.Fatalf("nil scan should reset to Active, got %v (%v)", s, err)
	}
}

func TestProductType_BulkUnit(t *testing.T) {
	if ProductTypeMass.BulkUnit() != "kg" || ProductTypeVolume.BulkUnit() != "L" {
		t.Fatal("unexpected bulk units")
	}
}

func TestSubmissionState_Terminal(t *testing.T) {
	for _, s := range []SubmissionState{SubmissionStateIdle, SubmissionStateItemsSelected, SubmissionStateComputed} {
		if s.Terminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
	if !SubmissionStateBlocked.Terminal() || !SubmissionStateSubmittable.Terminal() {
		t.Fatal("decided states must be terminal")
	}
}
