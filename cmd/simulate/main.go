package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/sync/errgroup"

	"github.com/mirrodan/arcanum/internal/config"
	"github.com/mirrodan/arcanum/internal/spell"
	"github.com/mirrodan/arcanum/internal/stats"
	"github.com/mirrodan/arcanum/internal/world"
)

type options struct {
	ConfigPath string        `env:"ARCANUM_CONFIG" envDefault:"config/game.yaml"`
	LogLevel   string        `env:"ARCANUM_LOG_LEVEL" envDefault:"info"`
	Duration   time.Duration `env:"ARCANUM_DURATION" envDefault:"10s"`
	StepMs     int           `env:"ARCANUM_STEP_MS" envDefault:"50"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var opts options
	if err := env.Parse(&opts); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(opts.LogLevel),
	})))

	game, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading game config: %w", err)
	}
	slog.Info("arcanum simulation starting",
		"config", opts.ConfigPath,
		"duration", opts.Duration,
		"step_ms", opts.StepMs)

	w, hero, err := buildWorld(game)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return simulate(ctx, game, w, hero, opts)
	})
	return g.Wait()
}

// buildWorld spawns one hero and a ring of slimes around it.
func buildWorld(game *config.Game) (*world.World, *world.Entity, error) {
	heroArch, ok := game.Archetype("hero")
	if !ok {
		return nil, nil, fmt.Errorf("config has no hero archetype")
	}
	slimeArch, ok := game.Archetype("slime")
	if !ok {
		return nil, nil, fmt.Errorf("config has no slime archetype")
	}

	heroCfg, err := heroArch.StatsConfig()
	if err != nil {
		return nil, nil, err
	}
	slimeCfg, err := slimeArch.StatsConfig()
	if err != nil {
		return nil, nil, err
	}

	w := world.New()
	hero := world.NewEntity("hero", spell.Vec2{}, heroArch.Radius, heroCfg)
	w.AddEntity(hero)

	positions := []spell.Vec2{{X: 8}, {X: -6, Y: 5}, {X: 2, Y: -9}}
	for i, pos := range positions {
		s := world.NewEntity(fmt.Sprintf("slime-%d", i+1), pos, slimeArch.Radius, slimeCfg)
		w.AddEntity(s)
	}

	// Health bars: log every resource change in the world.
	for _, e := range w.Entities() {
		name := e.Name
		e.StatRegistry().SubscribeAll(func(ev stats.ChangeEvent) {
			slog.Info("resource changed",
				"entity", name,
				"kind", ev.Kind,
				"old", ev.Old,
				"new", ev.New,
				"ratio", fmt.Sprintf("%.2f", ev.Ratio))
		})
	}

	return w, hero, nil
}

func simulate(ctx context.Context, game *config.Game, w *world.World, hero *world.Entity, opts options) error {
	spellNames := []string{"fireball", "seeker"}
	defs := make([]*spell.Definition, 0, len(spellNames))
	for _, name := range spellNames {
		sd, ok := game.Spell(name)
		if !ok {
			return fmt.Errorf("config has no %s spell", name)
		}
		def, err := sd.Definition()
		if err != nil {
			return err
		}
		defs = append(defs, def)
	}

	step := time.Duration(opts.StepMs) * time.Millisecond
	dt := step.Seconds()
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	deadline := time.After(opts.Duration)
	castEvery := 1.5
	sinceCast := castEvery // cast immediately
	casts := 0

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-deadline:
			slog.Info("simulation finished", "casts", casts, "projectiles_left", w.ProjectileCount())
			return nil
		case <-ticker.C:
			sinceCast += dt
			if sinceCast >= castEvery {
				sinceCast = 0
				if _, pos, ok := w.NearestTarget(hero.Position, 50, hero.StatRegistry()); ok {
					def := defs[casts%len(defs)]
					dir := pos.Sub(hero.Position)
					w.CastSpell(def, hero, dir)
					casts++
					slog.Info("spell cast", "spell", def.Name, "target_at", pos)
				}
			}
			w.Step(dt)
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
