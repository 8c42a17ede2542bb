package terminal

import (
	"strings"
	"testing"
)

func TestDistroInfo(t *testing.T) {
	term := New()
	out, quit := term.Eval("distro-info")
	if quit {
		t.Fatal("unexpected quit")
	}
	if !strings.Contains(out, "Ubuntu 22.04 LTS") || !strings.Contains(out, "apt") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSwitchDistro(t *testing.T) {
	term := New()

	out, _ := term.Eval("switch-distro arch")
	if !strings.Contains(out, "Switched to arch") {
		t.Errorf("unexpected output %q", out)
	}
	if term.Distro() != "arch" {
		t.Errorf("expected distro arch, got %q", term.Distro())
	}

	out, _ = term.Eval("package-manager")
	if !strings.Contains(out, "pacman") {
		t.Errorf("expected pacman commands, got:\n%s", out)
	}

	out, _ = term.Eval("switch-distro slackware")
	if !strings.Contains(out, "unknown distro") {
		t.Errorf("expected unknown distro message, got %q", out)
	}
	if term.Distro() != "arch" {
		t.Errorf("failed switch changed distro to %q", term.Distro())
	}
}

func TestUnknownCommand(t *testing.T) {
	term := New()
	out, quit := term.Eval("frobnicate")
	if quit {
		t.Fatal("unexpected quit")
	}
	if !strings.Contains(out, "command not found") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestHistory(t *testing.T) {
	term := New()
	term.Eval("help")
	term.Eval("distro-info")

	out, _ := term.Eval("history")
	if !strings.Contains(out, "help") || !strings.Contains(out, "distro-info") {
		t.Errorf("history missing commands:\n%s", out)
	}
}

func TestRunLoop(t *testing.T) {
	term := New()
	in := strings.NewReader("distro-info\nexit\n")
	var out strings.Builder

	if err := term.Run(in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "user@ubuntu:~$") {
		t.Errorf("missing prompt in output:\n%s", got)
	}
	if !strings.Contains(got, "Bye!") {
		t.Errorf("missing exit message in output:\n%s", got)
	}
}
