package scoring

import "testing"

func TestEvaluate_Academic(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, "Very Low Academic Performance"},
		{1.99, "Very Low Academic Performance"},
		{2.0, "Low Academic Performance"},
		{3.0, "Moderate Academic Performance"},
		{4.0, "High Academic Performance"},
		{4.49, "High Academic Performance"},
		{4.5, "Very High Academic Performance"},
		{5.0, "Very High Academic Performance"},
	}

	for _, tt := range tests {
		band, err := Evaluate(DomainAcademic, tt.score)
		if err != nil {
			t.Fatalf("Evaluate(academic, %v): %v", tt.score, err)
		}
		if band.Label != tt.want {
			t.Errorf("Evaluate(academic, %v) = %q, want %q", tt.score, band.Label, tt.want)
		}
	}
}

// 2.99 and 3.0 must land in different, adjacent bands; values inside the
// literal gap (2.995) resolve to the lower band by the greatest-lower-bound rule.
func TestEvaluate_CareerBoundaryExactness(t *testing.T) {
	low, err := Evaluate(DomainCareer, 2.99)
	if err != nil {
		t.Fatal(err)
	}
	gap, err := Evaluate(DomainCareer, 2.995)
	if err != nil {
		t.Fatal(err)
	}
	high, err := Evaluate(DomainCareer, 3.0)
	if err != nil {
		t.Fatal(err)
	}

	if low.Label != "Uncertain" {
		t.Errorf("2.99 = %q, want Uncertain", low.Label)
	}
	if gap.Label != "Uncertain" {
		t.Errorf("2.995 = %q, want Uncertain", gap.Label)
	}
	if high.Label != "Moderate Clarity" {
		t.Errorf("3.0 = %q, want Moderate Clarity", high.Label)
	}
}

func TestEvaluate_SocioEmotional(t *testing.T) {
	band, err := Evaluate(DomainSocioEmotional, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if band.Label != "Depressed/Highly Anxious" {
		t.Errorf("1.5 = %q, want Depressed/Highly Anxious", band.Label)
	}

	band, err = Evaluate(DomainSocioEmotional, 4.6)
	if err != nil {
		t.Fatal(err)
	}
	if band.Label != "Highly Resilient" {
		t.Errorf("4.6 = %q, want Highly Resilient", band.Label)
	}
}

func TestEvaluate_OutOfCoverage(t *testing.T) {
	if _, err := Evaluate(DomainAcademic, 0.5); err != ErrRubricNotFound {
		t.Errorf("0.5: got %v, want ErrRubricNotFound", err)
	}
	if _, err := Evaluate(DomainAcademic, 5.5); err != ErrRubricNotFound {
		t.Errorf("5.5: got %v, want ErrRubricNotFound", err)
	}
	if _, err := Evaluate(Domain("unknown"), 3.0); err != ErrRubricNotFound {
		t.Errorf("unknown domain: got %v, want ErrRubricNotFound", err)
	}
}

// Legacy flow end to end: raw 80 normalizes to 4.0 which is the High band.
func TestEvaluate_LegacyNormalizedInput(t *testing.T) {
	score, err := NormalizeRaw(80)
	if err != nil {
		t.Fatal(err)
	}
	band, err := Evaluate(DomainAcademic, score)
	if err != nil {
		t.Fatal(err)
	}
	if band.Label != "High Academic Performance" {
		t.Errorf("raw 80 = %q, want High Academic Performance", band.Label)
	}
}

func TestOverallEvaluate(t *testing.T) {
	tests := []struct {
		score   float64
		want    string
		wantErr error
	}{
		{0, "Not Yet Evaluated", nil},
		{0.5, "Critical", nil},
		{1.49, "Critical", nil},
		{1.5, "Fair", nil},
		{2.5, "Good", nil},
		{3.49, "Good", nil},
		{3.5, "Very Good", nil},
		{4.49, "Very Good", nil},
		{4.5, "Excellent", nil},
		{5.0, "Excellent", nil},
		{-0.1, "", ErrRubricNotFound},
		{5.1, "", ErrRubricNotFound},
	}

	for _, tt := range tests {
		band, err := OverallEvaluate(tt.score)
		if err != tt.wantErr {
			t.Fatalf("OverallEvaluate(%v) error = %v, wantErr %v", tt.score, err, tt.wantErr)
		}
		if tt.wantErr == nil && band.Label != tt.want {
			t.Errorf("OverallEvaluate(%v) = %q, want %q", tt.score, band.Label, tt.want)
		}
	}
}

func TestMatchCriteria(t *testing.T) {
	bands := []Band{
		{Min: 1.0, Max: 2.9, Label: "Needs Support"},
		{Min: 3.0, Max: 5.0, Label: "On Track"},
	}

	got, err := MatchCriteria(bands, 2.5)
	if err != nil || got.Label != "Needs Support" {
		t.Errorf("2.5: got (%q, %v), want Needs Support", got.Label, err)
	}

	got, err = MatchCriteria(bands, 3.0)
	if err != nil || got.Label != "On Track" {
		t.Errorf("3.0: got (%q, %v), want On Track", got.Label, err)
	}

	// counselor-authored bands may leave gaps; 2.95 is uncovered here
	if _, err := MatchCriteria(bands, 2.95); err != ErrRubricNotFound {
		t.Errorf("2.95: got %v, want ErrRubricNotFound", err)
	}

	if _, err := MatchCriteria(nil, 3.0); err != ErrRubricNotFound {
		t.Errorf("nil bands: got %v, want ErrRubricNotFound", err)
	}
}
