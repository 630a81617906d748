package sensor

import "testing"

func TestPinName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pin  int
		want string
	}{
		{pin: 4, want: "GPIO4"},
		{pin: 17, want: "GPIO17"},
		{pin: 0, want: "GPIO0"},
	}

	for _, tc := range cases {
		if got := pinName(tc.pin); got != tc.want {
			t.Errorf("pinName(%d): want %q, got %q", tc.pin, tc.want, got)
		}
	}
}
