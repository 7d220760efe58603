package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/mpctl/mpctl/constant"
	"github.com/mpctl/mpctl/icon"
	"github.com/mpctl/mpctl/style"
)

// MissingDependencyError is returned when the player binary cannot be found.
type MissingDependencyError struct {
	Binary string
	GOOS   string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s not found in PATH", e.Binary)
}

// Pretty renders a boxed explanation with an install hint for the platform.
func (e *MissingDependencyError) Pretty() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Red).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.Red).Render(icon.Get(icon.Fail) + " Error: Missing Dependency")
	body := fmt.Sprintf("The player '%s' was not found in your PATH.", e.Binary)

	var suggestion string
	if hint := installHint(e.GOOS); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.Accent).Bold(true).Render(hint))
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body+suggestion))
}

func installHint(goos string) string {
	switch goos {
	case constant.Darwin:
		return "brew install mplayer"
	case constant.Linux:
		return "sudo apt install mplayer"
	case constant.Windows:
		return "scoop install mplayer"
	default:
		return ""
	}
}

// checkDependencies resolves binary in PATH.
func checkDependencies(binary string) (string, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", &MissingDependencyError{Binary: binary, GOOS: runtime.GOOS}
	}
	return path, nil
}

// requireBinary exits with a styled message when binary is missing.
func requireBinary(binary string) string {
	path, err := checkDependencies(binary)
	if missing, ok := err.(*MissingDependencyError); ok {
		fmt.Println(missing.Pretty())
	}
	handleErr(err)
	return path
}
