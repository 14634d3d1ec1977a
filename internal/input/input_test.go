package input

import (
	"reflect"
	"testing"
)

func TestNormalizeSequence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"mkr", "MKR"},
		{" m k\tr\nLL\r\n", "MKRLL"},
		{"acd-1*x", "ACD-1*X"},
		{" mk", "MK"},
		{"aék", "AÉK"},
	}
	for _, c := range cases {
		if got := NormalizeSequence(c.in); got.String() != c.want {
			t.Errorf("NormalizeSequence(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseCustomPositions(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"", []int{}},
		{"1, 3, 99, abc", []int{0, 2, 98}},
		{"5,5, 5 ", []int{4}},
		{"0,-2,1.5,,  ,7", []int{6}},
		{"10,2", []int{1, 9}},
	}
	for _, c := range cases {
		got := ParseCustomPositions(c.in).Sorted()
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseCustomPositions(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
