// Package clipboard copies rendered reports to the system clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool found (install pbcopy, wl-copy, xclip or xsel)")

// Write copies text to the system clipboard.
func Write(text string) error {
	name, args, err := commandFor(runtime.GOOS, lookPath)
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	_, _, err := commandFor(runtime.GOOS, lookPath)
	return err == nil
}

func lookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// commandFor picks the copy command for goos, probing installed tools with has.
func commandFor(goos string, has func(string) bool) (string, []string, error) {
	switch goos {
	case "darwin":
		if has("pbcopy") {
			return "pbcopy", nil, nil
		}
	case "windows":
		return "cmd", []string{"/c", "clip"}, nil
	default:
		if has("wl-copy") {
			return "wl-copy", nil, nil
		}
		if has("xclip") {
			return "xclip", []string{"-selection", "clipboard"}, nil
		}
		if has("xsel") {
			return "xsel", []string{"--clipboard", "--input"}, nil
		}
	}
	return "", nil, ErrUnavailable
}
