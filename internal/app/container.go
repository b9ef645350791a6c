package app

import (
	"context"

	"github.com/doeshing/termdrop/internal/application/doctor"
	"github.com/doeshing/termdrop/internal/application/launch"
	"github.com/doeshing/termdrop/internal/infrastructure/command"
	"github.com/doeshing/termdrop/internal/infrastructure/config"
	"github.com/doeshing/termdrop/internal/infrastructure/history"
	"github.com/doeshing/termdrop/internal/infrastructure/process"
	"github.com/doeshing/termdrop/internal/infrastructure/shell"
	"github.com/doeshing/termdrop/internal/infrastructure/terminal"
	"github.com/doeshing/termdrop/internal/pkg/logger"
	"github.com/doeshing/termdrop/internal/ports"
)

// Options controls how the container is built.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         ports.Logger
	Environment    *terminal.Cache
	Selector       ports.TerminalSelector
	Shells         ports.ShellResolver
	LaunchService  *launch.Service
	DoctorService  *doctor.Service
	HistoryStore   ports.HistoryRepository
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(opts.Verbose)
	environment := terminal.NewCache(terminal.NewDetector(log))
	selector := terminal.Selector{}
	shells := shell.NewResolver(log)
	historyStore := history.Open(cfg.History.Backend, history.DefaultDir(), log)

	launchService := &launch.Service{
		Environment: environment,
		Selector:    selector,
		Shells:      shells,
		Builder:     command.NewBuilder(),
		Launcher:    process.NewLauncher(log),
		History:     historyStore,
		Logger:      log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Environment:    environment,
		Selector:       selector,
		Shells:         shells,
		History:        historyStore,
	}

	return &Container{
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
		Environment:    environment,
		Selector:       selector,
		Shells:         shells,
		LaunchService:  launchService,
		DoctorService:  doctorService,
		HistoryStore:   historyStore,
	}, nil
}
