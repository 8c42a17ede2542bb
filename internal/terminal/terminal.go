// Package terminal implements the simulated Linux practice terminal.
//
// Commands are a static lookup table; nothing is executed. The only state
// is the currently selected distro and the command history.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

type distroInfo struct {
	Name   string
	Pkg    string
	Init   string
	Family string
}

var distros = map[string]distroInfo{
	"ubuntu": {Name: "Ubuntu 22.04 LTS", Pkg: "apt", Init: "systemd", Family: "Debian"},
	"arch":   {Name: "Arch Linux", Pkg: "pacman", Init: "systemd", Family: "Arch"},
	"debian": {Name: "Debian 12", Pkg: "apt", Init: "systemd", Family: "Debian"},
	"fedora": {Name: "Fedora 39", Pkg: "dnf", Init: "systemd", Family: "Red Hat"},
}

var pkgCommands = map[string][]string{
	"ubuntu": {
		"sudo apt update - refresh the package list",
		"sudo apt upgrade - upgrade installed packages",
		"sudo apt install [package] - install a package",
		"sudo apt remove [package] - remove a package",
		"apt search [term] - search for packages",
	},
	"arch": {
		"sudo pacman -Syu - update the system",
		"sudo pacman -S [package] - install a package",
		"sudo pacman -R [package] - remove a package",
		"pacman -Ss [term] - search for packages",
		"yay -S [package] - install from the AUR",
	},
	"debian": {
		"sudo apt update - refresh the package list",
		"sudo apt upgrade - upgrade packages",
		"sudo apt install [package] - install a package",
		"apt-cache search [term] - search for packages",
	},
	"fedora": {
		"sudo dnf update - update the system",
		"sudo dnf install [package] - install a package",
		"sudo dnf remove [package] - remove a package",
		"dnf search [term] - search for packages",
	},
}

var exercises = []string{
	`Navigate directories with "cd", "ls" and "pwd"`,
	`Find a process with "ps aux | grep [name]"`,
	`Inspect service status with "systemctl status [service]"`,
	`Follow a log with "journalctl -u [service] -f"`,
	`Check disk usage with "df -h" and "du -sh [dir]"`,
}

const welcome = `Welcome to the Linux practice terminal.
Available commands:
• help - show this message
• distro-info - show info about the current distro
• package-manager - show the distro's package commands
• practice - suggest a practice exercise
• switch-distro [name] - change distro (ubuntu, arch, debian, fedora)
• history - show recent commands
• exit - leave the terminal`

// Terminal is a simulated shell session.
type Terminal struct {
	distro  string
	history []string
}

// New creates a terminal starting on ubuntu.
func New() *Terminal {
	return &Terminal{distro: "ubuntu"}
}

// Distro returns the currently selected distro key.
func (t *Terminal) Distro() string {
	return t.distro
}

// Eval dispatches one input line and returns its output. quit is true
// when the session should end.
func (t *Terminal) Eval(input string) (output string, quit bool) {
	cmd := strings.TrimSpace(input)
	if cmd == "" {
		return "", false
	}
	t.history = append(t.history, cmd)

	if name, ok := strings.CutPrefix(cmd, "switch-distro "); ok {
		return t.switchDistro(strings.TrimSpace(name)), false
	}

	switch cmd {
	case "help", "welcome":
		return welcome, false
	case "distro-info":
		info := distros[t.distro]
		return fmt.Sprintf("Distro: %s\nPackage Manager: %s\nInit System: %s\nFamily: %s",
			info.Name, info.Pkg, info.Init, info.Family), false
	case "package-manager":
		return fmt.Sprintf("%s commands:\n%s", t.distro, strings.Join(pkgCommands[t.distro], "\n")), false
	case "practice":
		return "Try this:\n" + exercises[(len(t.history)-1)%len(exercises)], false
	case "history":
		start := 0
		if len(t.history) > 10 {
			start = len(t.history) - 10
		}
		var b strings.Builder
		for i, c := range t.history[start:] {
			fmt.Fprintf(&b, "%d  %s\n", i+1, c)
		}
		return strings.TrimRight(b.String(), "\n"), false
	case "exit":
		return "Bye!", true
	}

	return fmt.Sprintf("%s: command not found. Type \"help\" for the command list.", cmd), false
}

func (t *Terminal) switchDistro(name string) string {
	if _, ok := distros[name]; !ok {
		names := make([]string, 0, len(distros))
		for k := range distros {
			names = append(names, k)
		}
		sort.Strings(names)
		return fmt.Sprintf("unknown distro %q (try: %s)", name, strings.Join(names, ", "))
	}
	t.distro = name
	return fmt.Sprintf("Switched to %s. Type \"distro-info\" for details.", name)
}

// Run drives a read-eval-print loop over r and w until exit or EOF.
func (t *Terminal) Run(r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, welcome)
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "user@%s:~$ ", t.distro)
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		out, quit := t.Eval(scanner.Text())
		if out != "" {
			fmt.Fprintln(w, out)
		}
		if quit {
			return nil
		}
	}
}
