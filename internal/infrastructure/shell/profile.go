package shell

import (
	"path/filepath"
	"strings"

	"github.com/doeshing/termdrop/internal/domain"
)

// familyByName maps shell basenames to their syntax family; anything else is POSIX.
var familyByName = map[string]domain.ShellFamily{
	"fish":       domain.ShellFamilyFish,
	"pwsh":       domain.ShellFamilyPowerShell,
	"powershell": domain.ShellFamilyPowerShell,
}

var unixCandidates = []string{
	"/bin/bash",
	"/usr/bin/bash",
	"/bin/zsh",
	"/usr/bin/zsh",
	"/usr/bin/fish",
	"/usr/local/bin/fish",
	"/bin/sh",
}

var windowsCandidates = []string{
	"pwsh.exe",
	"powershell.exe",
}

// baseName returns the lower-cased basename without a Windows executable suffix.
func baseName(path string) string {
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ToLower(name)
	return strings.TrimSuffix(name, ".exe")
}

// FamilyOf classifies a shell path by basename.
func FamilyOf(path string) domain.ShellFamily {
	if family, ok := familyByName[baseName(path)]; ok {
		return family
	}
	return domain.ShellFamilyPOSIX
}

// ProfileFor builds the profile for a shell path.
func ProfileFor(path string) domain.ShellProfile {
	family := FamilyOf(path)
	profile := domain.ShellProfile{
		Path:   path,
		Name:   baseName(filepath.Clean(path)),
		Family: family,
	}
	switch family {
	case domain.ShellFamilyFish:
		profile.Chain = domain.ChainFishAndSemicolon
		profile.ExecReplace = "exec " + QuoteIfNeeded(family, path)
	case domain.ShellFamilyPowerShell:
		profile.Chain = domain.ChainPowerShell
	default:
		profile.Chain = domain.ChainAndSemicolon
		profile.ExecReplace = "exec " + QuoteIfNeeded(family, path)
	}
	return profile
}

func familySupported(family domain.ShellFamily, goos string) bool {
	if goos == "windows" {
		return family == domain.ShellFamilyPowerShell
	}
	return true
}

func candidatesFor(goos string) []string {
	if goos == "windows" {
		return windowsCandidates
	}
	return unixCandidates
}

func lastResortFor(goos string) string {
	if goos == "windows" {
		return "powershell.exe"
	}
	return "/bin/sh"
}
