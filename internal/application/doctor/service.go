package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Environment    ports.EnvironmentProvider
	Selector       ports.TerminalSelector
	Shells         ports.ShellResolver
	History        ports.HistoryRepository
}

// Run executes checks and returns a report. Only a config load failure is
// returned as an error; everything else is reported as a check.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format %s", cfg.ConfigFormatVersion)))

	env := s.Environment.Refresh()
	if env.Session.Known() {
		checks = append(checks, ok("Session", sessionDetails(env)))
	} else {
		checks = append(checks, warn("Session", "desktop not recognized, using generic terminal order"))
	}

	if s.Shells != nil {
		profile := s.Shells.Resolve(cfg.Launch.Shell)
		checks = append(checks, ok("Shell", fmt.Sprintf("%s (%s)", profile.Path, profile.Family)))
	}

	checks = append(checks, s.terminalCheck(env, cfg.Launch.Terminal))

	if s.History != nil {
		if _, err := s.History.Records(1); err != nil {
			checks = append(checks, warn("History", err.Error()))
		} else {
			checks = append(checks, ok("History", s.History.Path()))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) terminalCheck(env domain.EnvironmentContext, override string) domain.HealthCheck {
	if len(env.Available) == 0 {
		return fail("Terminal", "no supported terminal emulator found")
	}
	term, err := s.Selector.Select(env, override)
	if err != nil {
		return fail("Terminal", err.Error())
	}
	return ok("Terminal", fmt.Sprintf("%s (available: %s)", term.ID, strings.Join(env.Available, ", ")))
}

func sessionDetails(env domain.EnvironmentContext) string {
	if env.DisplayServer == "" {
		return env.Session.String()
	}
	return env.Session.String() + " on " + env.DisplayServer
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
