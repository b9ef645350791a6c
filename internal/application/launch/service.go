package launch

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/ports"
)

// Service runs one launch: validate, select a terminal, resolve the shell,
// build the argv and spawn it. It keeps no state between calls.
type Service struct {
	Environment ports.EnvironmentProvider
	Selector    ports.TerminalSelector
	Shells      ports.ShellResolver
	Builder     ports.CommandBuilder
	Launcher    ports.ProcessLauncher
	History     ports.HistoryRepository
	Logger      ports.Logger
}

func (s *Service) ready() error {
	if s.Environment == nil || s.Selector == nil || s.Shells == nil || s.Builder == nil || s.Launcher == nil || s.Logger == nil {
		return errors.New("launch.Service dependencies not satisfied")
	}
	return nil
}

// Preview builds the invocation without spawning anything.
func (s *Service) Preview(req domain.LaunchRequest) (domain.Invocation, error) {
	if err := s.ready(); err != nil {
		return domain.Invocation{}, err
	}
	return s.plan(req)
}

// Launch spawns a terminal for req. Invalid input is rejected before any
// terminal is looked at. Every attempt past validation is recorded in the
// history when a repository is configured.
func (s *Service) Launch(req domain.LaunchRequest) (domain.LaunchResult, error) {
	if err := s.ready(); err != nil {
		return domain.LaunchResult{}, err
	}

	inv, err := s.plan(req)
	if err != nil {
		if errors.Is(err, domain.ErrNoTerminalAvailable) {
			s.record(req, inv, err)
		}
		return domain.LaunchResult{}, err
	}

	s.Logger.Debug("spawning terminal", map[string]interface{}{
		"terminal": inv.Terminal,
		"shell":    inv.Shell,
		"argv":     strings.Join(inv.Argv, " "),
	})

	result, err := s.Launcher.Launch(inv)
	s.record(req, inv, err)
	if err != nil {
		s.Logger.Error("launch failed", err, map[string]interface{}{"terminal": inv.Terminal})
		return domain.LaunchResult{}, err
	}
	return result, nil
}

func (s *Service) plan(req domain.LaunchRequest) (domain.Invocation, error) {
	dir, _, err := s.Builder.Validate(req)
	if err != nil {
		return domain.Invocation{}, err
	}

	env := s.Environment.Snapshot()
	term, err := s.Selector.Select(env, req.TerminalOverride)
	if err != nil {
		return domain.Invocation{Dir: dir, Terminal: req.TerminalOverride}, err
	}

	profile := s.Shells.Resolve(req.ShellOverride)
	s.Logger.Debug("launch planned", map[string]interface{}{
		"session":  env.Session.String(),
		"terminal": term.ID,
		"shell":    profile.Path,
		"family":   string(profile.Family),
	})
	return s.Builder.Build(req, term, profile)
}

func (s *Service) record(req domain.LaunchRequest, inv domain.Invocation, launchErr error) {
	if s.History == nil {
		return
	}
	rec := domain.LaunchRecord{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Directory: inv.Dir,
		Command:   strings.Join(domain.CommandWords(req.Command), " "),
		Terminal:  inv.Terminal,
		Outcome:   domain.OutcomeSuccess,
	}
	if launchErr != nil {
		rec.Outcome = domain.OutcomeFailure
		rec.Detail = launchErr.Error()
	}
	if err := s.History.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}
