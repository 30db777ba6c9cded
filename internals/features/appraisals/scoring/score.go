// Package scoring turns raw Likert responses into category scores and maps
// scores onto qualitative evaluation bands. Everything here is pure; callers
// persist the results.
package scoring

import "errors"

var (
	ErrInvalidResponseValue = errors.New("responses must be integers from 1 to 5")
	ErrEmptyResponses       = errors.New("cannot score an empty set of responses")
	ErrRubricNotFound       = errors.New("no evaluation band covers this score")
)

const (
	ResponseMin = 1
	ResponseMax = 5

	// Legacy fixed-rubric flow takes a 0-100 raw input and normalizes
	// it onto the 1-5 Likert scale.
	LegacyRawMax     = 100
	LegacyRawDivisor = 20
)

// ScoreCategory returns the arithmetic mean of the responses.
// Every response must be an integer in [1,5].
func ScoreCategory(responses []int) (float64, error) {
	if len(responses) == 0 {
		return 0, ErrEmptyResponses
	}
	sum := 0
	for _, r := range responses {
		if r < ResponseMin || r > ResponseMax {
			return 0, ErrInvalidResponseValue
		}
		sum += r
	}
	return float64(sum) / float64(len(responses)), nil
}

// NormalizeRaw maps a legacy 0-100 raw area score onto the 0-5 scale.
func NormalizeRaw(raw float64) (float64, error) {
	if raw < 0 || raw > LegacyRawMax {
		return 0, ErrInvalidResponseValue
	}
	return raw / LegacyRawDivisor, nil
}
