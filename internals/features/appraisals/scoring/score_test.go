package scoring

import (
	"math"
	"testing"
)

func TestScoreCategory(t *testing.T) {
	tests := []struct {
		name      string
		responses []int
		want      float64
		wantErr   error
	}{
		{name: "all fives", responses: []int{5, 5, 5, 5}, want: 5.0},
		{name: "mixed", responses: []int{1, 2, 3}, want: 2.0},
		{name: "single", responses: []int{4}, want: 4.0},
		{name: "non-integer mean", responses: []int{1, 2}, want: 1.5},
		{name: "empty", responses: nil, wantErr: ErrEmptyResponses},
		{name: "below range", responses: []int{3, 0}, wantErr: ErrInvalidResponseValue},
		{name: "above range", responses: []int{3, 6}, wantErr: ErrInvalidResponseValue},
		{name: "negative", responses: []int{-1}, wantErr: ErrInvalidResponseValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreCategory(tt.responses)
			if err != tt.wantErr {
				t.Fatalf("ScoreCategory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScoreCategory() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeRaw(t *testing.T) {
	tests := []struct {
		raw     float64
		want    float64
		wantErr error
	}{
		{raw: 80, want: 4.0},
		{raw: 100, want: 5.0},
		{raw: 0, want: 0.0},
		{raw: 50, want: 2.5},
		{raw: -1, wantErr: ErrInvalidResponseValue},
		{raw: 101, wantErr: ErrInvalidResponseValue},
	}

	for _, tt := range tests {
		got, err := NormalizeRaw(tt.raw)
		if err != tt.wantErr {
			t.Fatalf("NormalizeRaw(%v) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
		}
		if tt.wantErr == nil && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeRaw(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

// Round-trip property: the stored category mean must be reproducible from the
// stored question responses.
func TestScoreCategory_RoundTrip(t *testing.T) {
	categories := [][]int{
		{5, 4, 3, 5, 2},
		{1, 1, 2},
		{3, 3, 3, 3, 3, 3, 3},
		{2, 5},
	}

	for i, responses := range categories {
		stored, err := ScoreCategory(responses)
		if err != nil {
			t.Fatalf("category %d: %v", i, err)
		}
		recomputed, err := ScoreCategory(responses)
		if err != nil {
			t.Fatalf("category %d recompute: %v", i, err)
		}
		if math.Abs(stored-recomputed) > 1e-9 {
			t.Errorf("category %d: stored %v != recomputed %v", i, stored, recomputed)
		}
	}
}
