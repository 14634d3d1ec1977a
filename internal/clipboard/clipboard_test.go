package clipboard

import (
	"errors"
	"reflect"
	"testing"
)

func TestCommandFor(t *testing.T) {
	only := func(tools ...string) func(string) bool {
		return func(name string) bool {
			for _, t := range tools {
				if t == name {
					return true
				}
			}
			return false
		}
	}

	cases := []struct {
		goos  string
		tools []string
		name  string
		args  []string
	}{
		{"darwin", []string{"pbcopy"}, "pbcopy", nil},
		{"windows", nil, "cmd", []string{"/c", "clip"}},
		{"linux", []string{"xsel", "xclip"}, "xclip", []string{"-selection", "clipboard"}},
		{"linux", []string{"xsel"}, "xsel", []string{"--clipboard", "--input"}},
		{"freebsd", []string{"wl-copy", "xclip"}, "wl-copy", nil},
	}
	for _, c := range cases {
		name, args, err := commandFor(c.goos, only(c.tools...))
		if err != nil || name != c.name || !reflect.DeepEqual(args, c.args) {
			t.Errorf("%s %v: got %s %v %v", c.goos, c.tools, name, args, err)
		}
	}

	if _, _, err := commandFor("linux", only()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("want ErrUnavailable, got %v", err)
	}
}
