package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/infrastructure/shell"
	"github.com/doeshing/termdrop/internal/infrastructure/terminal"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubEnvironment struct{ env domain.EnvironmentContext }

func (s stubEnvironment) Snapshot() domain.EnvironmentContext { return s.env }
func (s stubEnvironment) Refresh() domain.EnvironmentContext  { return s.env }

type stubResolver struct{}

func (stubResolver) Resolve(string) domain.ShellProfile { return shell.ProfileFor("/bin/bash") }

func statusOf(report domain.HealthReport, name string) domain.HealthStatus {
	for _, c := range report.Checks {
		if c.Name == name {
			return c.Status
		}
	}
	return ""
}

func TestDoctorHealthy(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1"}},
		Environment:    stubEnvironment{env: domain.EnvironmentContext{Session: domain.SessionKDE, DisplayServer: "wayland", Available: []string{"konsole"}}},
		Selector:       terminal.Selector{},
		Shells:         stubResolver{},
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed() {
		t.Fatalf("unexpected failure: %+v", report.Checks)
	}
	if statusOf(report, "Terminal") != domain.HealthOK || statusOf(report, "Shell") != domain.HealthOK {
		t.Fatalf("unexpected checks: %+v", report.Checks)
	}
}

func TestDoctorNoTerminal(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1"}},
		Environment:    stubEnvironment{},
		Selector:       terminal.Selector{},
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !report.Failed() || statusOf(report, "Session") != domain.HealthWarn {
		t.Fatalf("expected failed terminal and unknown session: %+v", report.Checks)
	}
}

func TestDoctorConfigError(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfig{err: errors.New("boom")}}
	report, err := svc.Run(context.Background())
	if err == nil || !report.Failed() {
		t.Fatalf("expected config failure, got %+v, %v", report, err)
	}
}
