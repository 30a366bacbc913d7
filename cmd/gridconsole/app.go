package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/young1lin/gridconsole/console"
	"github.com/young1lin/gridconsole/grid"
	"github.com/young1lin/gridconsole/internal/builder"
	"github.com/young1lin/gridconsole/internal/config"
	"github.com/young1lin/gridconsole/internal/logging"
	"github.com/young1lin/gridconsole/internal/sound"
	"github.com/young1lin/gridconsole/internal/store"
	"github.com/young1lin/gridconsole/internal/update"
	"github.com/young1lin/gridconsole/internal/watch"
	"github.com/young1lin/gridconsole/tui"
)

// historySize is the number of recent activations loaded into the TUI
const historySize = 3

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// TerminalSurface is a drawing surface the blocking loop can wake and release
type TerminalSurface interface {
	console.Surface
	Interrupt()
	Fini()
}

// AppDependencies contains the dependencies for the application commands
type AppDependencies struct {
	ConfigLoader   func(string) (*config.Config, error)
	DBOpener       func(string) (*store.DB, error)
	WatcherCreator func(string) (watch.WatcherInterface, error)
	SurfaceFactory func() (TerminalSurface, error)
	SoundFactory   func() (sound.Player, error)
	ProgramRunner  func(*tea.Program) error
	HistoryDBPath  func() string
	UpdateChecker  func() *update.Checker
	Stdout         io.Writer
	Stderr         io.Writer
}

// defaultDependencies wires the real terminal, store, watcher and speaker
func defaultDependencies() *AppDependencies {
	return &AppDependencies{
		ConfigLoader: config.Load,
		DBOpener:     store.Open,
		WatcherCreator: func(path string) (watch.WatcherInterface, error) {
			return watch.NewWatcher(path)
		},
		SurfaceFactory: func() (TerminalSurface, error) {
			return console.NewTcell()
		},
		SoundFactory: func() (sound.Player, error) {
			return sound.NewSpeaker()
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
		HistoryDBPath: config.HistoryDBPath,
		UpdateChecker: func() *update.Checker {
			return update.NewChecker(update.Version, config.UpdateStatePath())
		},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// runOptions carries the persistent command-line flags
type runOptions struct {
	ConfigPath string
	LogLevel   string
}

// app holds what every interactive command needs once configuration is loaded
type app struct {
	deps   *AppDependencies
	cfg    *config.Config
	logger *zap.Logger
	db     *store.DB
	player sound.Player
}

func setup(deps *AppDependencies, opts runOptions) (*app, error) {
	cfg, err := deps.ConfigLoader(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := opts.LogLevel
	if level == "" {
		level = cfg.App.LogLevel
	}
	if err := logging.Initialize(level, cfg.App.LogFile); err != nil {
		return nil, err
	}

	a := &app{
		deps:   deps,
		cfg:    cfg,
		logger: logging.Named("app"),
		player: sound.Nop{},
	}
	a.logger.Info("configuration loaded", zap.String("source", sourceName(cfg)))

	dbPath := cfg.App.HistoryDB
	if dbPath == "" && deps.HistoryDBPath != nil {
		dbPath = deps.HistoryDBPath()
	}
	if dbPath != "" && deps.DBOpener != nil {
		db, err := deps.DBOpener(dbPath)
		if err != nil {
			// History is optional, the grid still works without it
			a.warn("history disabled", err)
		} else {
			a.db = db
		}
	}

	if cfg.App.Sound && deps.SoundFactory != nil {
		player, err := deps.SoundFactory()
		if err != nil {
			a.warn("sound disabled", err)
		} else {
			a.player = player
		}
	}
	return a, nil
}

func (a *app) warn(msg string, err error) {
	a.logger.Warn(msg, zap.Error(err))
	if a.deps.Stderr != nil {
		fmt.Fprintf(a.deps.Stderr, "Warning: %s: %v\n", msg, err)
	}
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
	a.player.Close()
	logging.Sync()
}

// build creates the grid tree for cfg targeting s. Every activation is
// recorded, cued and then handed to post when it is non-nil.
func (a *app) build(cfg *config.Config, s console.Surface, post func(builder.Activation)) (*grid.Grid, error) {
	layout := sourceName(cfg)
	return builder.Build(&cfg.Layout, builder.Options{
		Target: s,
		Logger: logging.Named("grid"),
		OnActivate: func(act builder.Activation) {
			a.record(act, layout)
			if act.Kind == config.CellGrid {
				a.player.Play(sound.CueEnter)
			} else {
				a.player.Play(sound.CueActivate)
			}
			if post != nil {
				post(act)
			}
		},
	})
}

func (a *app) record(act builder.Activation, layout string) {
	if a.db == nil {
		return
	}
	_, err := a.db.RecordActivation(store.ActivationRecord{
		Timestamp: time.Now(),
		Path:      act.Where(),
		Kind:      string(act.Kind),
		Label:     act.Label,
		Parameter: act.Parameter,
		Layout:    layout,
	})
	if err != nil {
		a.logger.Warn("failed to record activation", zap.Error(err))
	}
}

func (a *app) recentHistory(limit int) []tui.HistoryEntry {
	if a.db == nil {
		return nil
	}
	records, err := a.db.GetRecentActivations(limit)
	if err != nil {
		a.logger.Warn("failed to load history", zap.Error(err))
		return nil
	}
	history := make([]tui.HistoryEntry, 0, len(records))
	for _, r := range records {
		history = append(history, tui.HistoryEntry{
			Timestamp: r.Timestamp.Format("15:04:05"),
			Where:     r.Path,
		})
	}
	return history
}

// startWatcher watches the layout file when the configuration asks for it.
// A nil watcher means hot reload is off.
func (a *app) startWatcher() watch.WatcherInterface {
	if !a.cfg.App.Watch || a.cfg.Source == "" || a.deps.WatcherCreator == nil {
		return nil
	}
	w, err := a.deps.WatcherCreator(a.cfg.Source)
	if err != nil {
		a.warn("layout watcher disabled", err)
		return nil
	}
	a.logger.Info("watching layout", zap.String("path", a.cfg.Source))
	return w
}

func sourceName(cfg *config.Config) string {
	if cfg.Source == "" {
		return "built-in"
	}
	return cfg.Source
}

// runTerminal drives the grid tree on the real terminal until Escape is
// pressed at the top level
func runTerminal(deps *AppDependencies, opts runOptions) error {
	a, err := setup(deps, opts)
	if err != nil {
		return err
	}
	defer a.close()

	surface, err := deps.SurfaceFactory()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer surface.Fini()

	root, err := a.build(a.cfg, surface, nil)
	if err != nil {
		return err
	}

	reloads := make(chan *config.Config, 1)
	if w := a.startWatcher(); w != nil {
		defer w.Close()
		go forwardReloads(w, deps.ConfigLoader, reloads, surface.Interrupt, a.logger)
	}

	return a.loop(root, surface, reloads)
}

// loop renders and reads keys on a single goroutine. Reloaded layouts are
// swapped in between keys.
func (a *app) loop(root *grid.Grid, surface TerminalSurface, reloads <-chan *config.Config) error {
	root.Invalidate()
	for {
		select {
		case cfg := <-reloads:
			next, err := a.build(cfg, surface, nil)
			if err != nil {
				a.logger.Warn("reloaded layout rejected", zap.Error(err))
				break
			}
			a.cfg = cfg
			root = next
			root.Invalidate()
			a.logger.Info("layout reloaded", zap.String("source", sourceName(cfg)))
		default:
		}

		root.Render()
		k := surface.ReadKey()

		switch {
		case k == console.KeyEscape && root.Depth() == 0:
			return nil
		case k == console.KeyBackspace && root.Depth() > 0:
			a.player.Play(sound.CueBack)
		}

		if err := root.HandleKey(k); err != nil {
			return err
		}
	}
}

// forwardReloads loads the layout every time the watcher reports a change
// and hands valid documents to the drawing loop. wake unblocks a pending
// ReadKey so the loop notices the new layout without a key press.
func forwardReloads(w watch.WatcherInterface, load func(string) (*config.Config, error), out chan *config.Config, wake func(), logger *zap.Logger) {
	for {
		select {
		case path, ok := <-w.Changes():
			if !ok {
				return
			}
			cfg, err := load(path)
			if err != nil {
				logger.Warn("failed to reload layout", zap.String("path", path), zap.Error(err))
				continue
			}
			// Only the newest layout matters
			select {
			case <-out:
			default:
			}
			out <- cfg
			wake()

		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			logger.Warn("layout watcher error", zap.Error(err))
		}
	}
}

// runTUI hosts the grid tree inside a bubbletea program
func runTUI(deps *AppDependencies, opts runOptions) error {
	a, err := setup(deps, opts)
	if err != nil {
		return err
	}
	defer a.close()

	buffer := console.NewBuffer(80, 20)
	inbox := tui.NewInbox(16)
	post := func(act builder.Activation) {
		inbox.Post(tui.ActivatedMsg{Where: act.Where(), Parameter: act.Parameter})
	}

	root, err := a.build(a.cfg, buffer, post)
	if err != nil {
		return err
	}

	model := tui.NewModel(root, buffer,
		tui.WithInbox(inbox),
		tui.WithSource(a.cfg.Source),
	)
	p := tea.NewProgram(model, tea.WithAltScreen())

	watcher := a.startWatcher()
	if watcher != nil {
		defer watcher.Close()
	}
	rebuild := func(cfg *config.Config) (*grid.Grid, error) {
		return a.build(cfg, buffer, post)
	}
	go runWatchLoop(p, watcher, a.cfg.Source, deps.ConfigLoader, rebuild, a.recentHistory(historySize))

	return deps.ProgramRunner(p)
}

// runWatchLoop feeds the TUI with history and rebuilt layouts. It returns
// when the watcher closes, or right after the history when there is none.
func runWatchLoop(sender ProgramSender, watcher watch.WatcherInterface, source string, load func(string) (*config.Config, error), rebuild func(*config.Config) (*grid.Grid, error), history []tui.HistoryEntry) {
	sender.Send(tui.HistoryLoadedMsg{Entries: history})

	if watcher == nil {
		return
	}
	sender.Send(tui.WatcherStartedMsg{Path: source})

	for {
		select {
		case path, ok := <-watcher.Changes():
			if !ok {
				return
			}
			cfg, err := load(path)
			if err != nil {
				sender.Send(tui.ErrorMsg{Err: err})
				continue
			}
			root, err := rebuild(cfg)
			if err != nil {
				sender.Send(tui.ErrorMsg{Err: err})
				continue
			}
			sender.Send(tui.LayoutReloadedMsg{Root: root, Source: cfg.Source})

		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			sender.Send(tui.WatcherFailedMsg{Err: err})
		}
	}
}
