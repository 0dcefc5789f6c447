// Command golingo translates text through a persistent cache and a
// prioritized chain of translation providers.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/LocaleKit/golingo"
	"github.com/LocaleKit/golingo/cache"
	"github.com/LocaleKit/golingo/config"
	"github.com/LocaleKit/golingo/provider"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("golingo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	fromLang := fs.String("from", "auto", "Source language code (auto to detect)")
	toLang := fs.String("to", "en", "Target language code")
	configPath := fs.String("config", defaultConfigPath(), "Config file path")
	cacheFile := fs.String("cache", "", "Cache file path (overrides config)")
	prefer := fs.String("prefer", "", "Preferred provider id, tried first")
	toggleID := fs.String("toggle", "", "Toggle a provider's enabled state for this run")
	showStats := fs.Bool("stats", false, "Print cache statistics and exit")
	clearCache := fs.Bool("clear", false, "Clear the cache and exit")
	flushOnly := fs.Bool("flush", false, "Force an immediate cache flush and exit")
	watch := fs.Bool("watch", false, "Read lines from stdin and translate each")
	noNumbers := fs.Bool("no-numbers", false, "Disable number-pattern caching")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", golingo.Name, golingo.FullVersion())
		return nil
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{Level: level}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config unusable, using defaults", "path", *configPath, "error", err)
	}
	if *cacheFile != "" {
		cfg.CacheFile = *cacheFile
	}

	store := cache.NewStore(cache.NewFileBackend(cfg.CacheFile),
		cache.WithMaxEntries(cfg.MaxEntries),
		cache.WithLogger(logger),
		cache.WithNumberSubstitution(cfg.NumberSubstitutionEnabled() && !*noNumbers),
	)
	store.Load()

	// Administrative operations
	switch {
	case *showStats:
		printStats(stdout, store.Stats())
		return nil
	case *clearCache:
		store.Clear()
		fmt.Fprintln(stdout, "cache cleared")
		return nil
	case *flushOnly:
		store.Flush()
		fmt.Fprintln(stdout, "cache flushed")
		return nil
	}

	registry := buildRegistry(cfg)
	resolver := golingo.NewResolver(registry,
		golingo.WithCache(store),
		golingo.WithLogger(logger),
		golingo.WithPreferredProvider(firstNonEmpty(*prefer, cfg.PreferredProvider)),
	)

	if *toggleID != "" {
		enabled, found := resolver.ToggleProvider(*toggleID)
		if !found {
			return fmt.Errorf("unknown provider %q (known: %s)", *toggleID, strings.Join(registry.IDs(), ", "))
		}
		fmt.Fprintf(stdout, "%s: enabled=%v (set providers.%s.enabled in %s to persist)\n",
			*toggleID, enabled, *toggleID, *configPath)
		return nil
	}

	ctx := context.Background()

	if *watch {
		return watchLoop(ctx, resolver, store, cfg.FlushInterval, *fromLang, *toLang, stdout)
	}

	text := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(text) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		fs.Usage()
		return fmt.Errorf("no text to translate")
	}

	fmt.Fprintln(stdout, resolver.Resolve(ctx, text, *fromLang, *toLang))
	store.Flush()
	return nil
}

// watchLoop polls stdin for lines to translate and flushes the cache on
// a timer; both triggers funnel into the same resolver and store.
func watchLoop(ctx context.Context, resolver *golingo.Resolver, store *cache.Store, flushInterval time.Duration, from, to string, stdout io.Writer) error {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-ticker.C:
				store.Flush()
			case <-done:
				return
			}
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fmt.Fprintln(stdout, resolver.Resolve(ctx, line, from, to))
	}

	store.Flush()
	return scanner.Err()
}

// buildRegistry wires every known provider in default trial order with
// its configured options and enabled state.
func buildRegistry(cfg *config.Config) *golingo.Registry {
	registry := golingo.NewRegistry()

	registry.Register(provider.NewGoogleProvider(provider.GoogleConfig{}), cfg.ProviderEnabled("google"))
	registry.Register(provider.NewMyMemoryProvider(provider.MyMemoryConfig{}), cfg.ProviderEnabled("mymemory"))
	registry.Register(provider.NewLingvaProvider(provider.LingvaConfig{}), cfg.ProviderEnabled("lingva"))

	libre := cfg.Provider("libretranslate")
	registry.Register(provider.NewLibreTranslateProvider(provider.LibreTranslateConfig{
		APIKey: libre.APIKey,
	}), cfg.ProviderEnabled("libretranslate"))

	ms := cfg.Provider("microsoft")
	registry.Register(provider.NewMicrosoftProvider(provider.MicrosoftConfig{
		APIKey: ms.APIKey,
		Region: ms.Region,
	}), cfg.ProviderEnabled("microsoft"))

	oa := cfg.Provider("openai")
	registry.Register(provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey:  oa.APIKey,
		Model:   oa.Model,
		BaseURL: oa.BaseURL,
	}), cfg.ProviderEnabled("openai"))

	return registry
}

func printStats(w io.Writer, st cache.Stats) {
	fmt.Fprintf(w, "entries:    %d\n", st.EntryCount)
	fmt.Fprintf(w, "characters: %d\n", st.TotalCharacterSize)
	if st.EntryCount > 0 {
		fmt.Fprintf(w, "oldest:     %s\n", time.Unix(st.OldestCreatedAt, 0).Format(time.RFC3339))
		fmt.Fprintf(w, "newest:     %s\n", time.Unix(st.NewestCreatedAt, 0).Format(time.RFC3339))
	}
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "golingo", "config.yaml")
	}
	return "golingo.yaml"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
