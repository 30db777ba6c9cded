package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Managing Exam Stress", "managing-exam-stress"},
		{"  Career Planning 101  ", "career-planning-101"},
		{"What's Next? College!!", "what-s-next-college"},
		{"multiple   spaces  here", "multiple-spaces-here"},
		{"---", "x"},
		{"", "x"},
	}

	for _, tc := range cases {
		got := GenerateSlug(tc.in)
		if got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
