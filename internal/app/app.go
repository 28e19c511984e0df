package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/vidprompt/internal/action"
	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/llm"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/internal/responder"
	"github.com/nguyentantai21042004/vidprompt/internal/transcriber"
	"github.com/nguyentantai21042004/vidprompt/internal/transcript"
	"github.com/nguyentantai21042004/vidprompt/internal/watcher"
	"github.com/nguyentantai21042004/vidprompt/pkg/executor"
)

// App owns the long-lived components shared by the CLI and the GUI.
type App struct {
	Config    *config.Config
	Logger    logger.Logger
	Cache     transcript.Cache
	Responder responder.Responder
	Runner    action.Runner

	transcriber transcriber.Transcriber
	generator   llm.Generator

	// debug pins the log level across reloads
	debug bool

	mu        sync.Mutex
	observer  action.StateFunc
	stopWatch func() error

	// applied is the config the last successful reload compared against
	applied *config.Config
}

// New wires the components described by cfg. Models are not loaded here.
// With debug set, config reloads never lower the log level.
func New(cfg *config.Config, log logger.Logger, debug bool) (*App, error) {
	tr, err := transcriber.New(cfg, executor.New(), log)
	if err != nil {
		return nil, fmt.Errorf("create transcriber: %w", err)
	}

	gen, err := llm.New(cfg.LLM, log)
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}

	return build(cfg, log, debug, tr, gen), nil
}

func build(cfg *config.Config, log logger.Logger, debug bool, tr transcriber.Transcriber, gen llm.Generator) *App {
	a := &App{
		Config:      cfg,
		Logger:      log,
		debug:       debug,
		transcriber: tr,
		generator:   gen,
		applied:     cfg,
	}
	a.Cache = transcript.New(cfg.Paths.Transcriptions, tr, log)
	a.Responder = responder.New(gen, llm.SamplingFromConfig(cfg.LLM), log)
	a.Runner = action.New(a.Cache, a.Responder, log, a.notify)
	return a
}

// SetStateObserver registers fn to receive runner state changes.
func (a *App) SetStateObserver(fn action.StateFunc) {
	a.mu.Lock()
	a.observer = fn
	a.mu.Unlock()
}

func (a *App) notify(id string, state action.State) {
	a.mu.Lock()
	fn := a.observer
	a.mu.Unlock()

	if fn != nil {
		fn(id, state)
	}
}

// Preload loads both models so the first action does not pay for it.
func (a *App) Preload(ctx context.Context) error {
	if err := a.transcriber.Load(ctx); err != nil {
		return fmt.Errorf("load transcriber: %w", err)
	}
	if err := a.generator.Load(ctx); err != nil {
		return fmt.Errorf("load generator: %w", err)
	}
	return nil
}

// Reload re-reads the config file and applies the settings that can change
// at runtime: log level and sampling params.
func (a *App) Reload(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("reload config: %w", err)
	}

	level := cfg.Logging.Level
	if a.debug {
		level = "debug"
	}
	a.Logger.SetLevel(level)
	a.Responder.SetSampling(llm.SamplingFromConfig(cfg.LLM))

	a.mu.Lock()
	prev := a.applied
	a.applied = cfg
	a.mu.Unlock()

	// warn once per change, not on every later reload
	if restartNeeded(prev, cfg) {
		a.Logger.Warn(ctx, "Model or storage settings changed in %s; restart to apply them", path)
	}
	a.Logger.Info(ctx, "Config reloaded: level=%s max_new_tokens=%d temperature=%.2f",
		level, cfg.LLM.MaxNewTokens, cfg.LLM.Temperature)
	return nil
}

func restartNeeded(old, cur *config.Config) bool {
	return old.Whisper != cur.Whisper ||
		old.FFmpeg != cur.FFmpeg ||
		old.Paths != cur.Paths ||
		old.LLM.Provider != cur.LLM.Provider ||
		old.LLM.BaseURL != cur.LLM.BaseURL ||
		old.LLM.APIKey != cur.LLM.APIKey ||
		old.LLM.Model != cur.LLM.Model
}

// Watch reloads the config whenever path changes, until Close.
func (a *App) Watch(ctx context.Context, path string) error {
	w, err := watcher.New(path, a.Reload, a.Logger, 0)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.Logger.Error(ctx, "Config watcher stopped: %v", err)
		}
	}()

	a.mu.Lock()
	a.stopWatch = func() error {
		cancel()
		<-done
		return w.Stop()
	}
	a.mu.Unlock()
	return nil
}

// Close cancels the running action, waits for it and releases the models.
func (a *App) Close() error {
	a.Runner.Cancel()
	a.Runner.Wait()

	a.mu.Lock()
	stopWatch := a.stopWatch
	a.stopWatch = nil
	a.mu.Unlock()

	var errs []error
	if stopWatch != nil {
		errs = append(errs, stopWatch())
	}
	errs = append(errs, a.transcriber.Unload(), a.generator.Unload())
	return errors.Join(errs...)
}
