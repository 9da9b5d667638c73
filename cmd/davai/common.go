package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/4thel00z/davai/internal"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
)

type app struct {
	cfg     *internal.Config
	store   *internal.Store
	session *internal.Session
	log     internal.LogFunc
}

// buildApp assembles the store and session from flags and config, and loads
// the working set from disk. The provider is only constructed for commands
// that talk to the LLM; everything else works offline.
func buildApp(cmd *cobra.Command, withProvider bool) (*app, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := internal.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	if root, _ := cmd.Flags().GetString("root"); root != "" {
		cfg.Root = root
	}

	logf := func(format string, args ...any) {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}

	codec := internal.NewCodec(cfg.Root, internal.DefaultLanguages())
	store := internal.NewStore(osfs.New("."), cfg.Root, codec, internal.WithLog(logf))
	if err := store.Fetch(); err != nil {
		return nil, fmt.Errorf("fetch assets: %w", err)
	}

	var provider internal.Provider
	if withProvider {
		provider, err = buildProvider(cmd, cfg)
		if err != nil {
			return nil, err
		}
	}

	yes, _ := cmd.Flags().GetBool("yes")

	session := internal.NewSession(
		store,
		internal.NewExtractor(codec, logf),
		provider,
		internal.NewTranscripts(cfg.Transcripts, logf),
		internal.WithThreshold(cfg.MatchThreshold),
		internal.WithConfirm(makeConfirm(cmd, yes)),
		internal.WithSessionLog(logf),
	)

	return &app{cfg: cfg, store: store, session: session, log: logf}, nil
}

func buildProvider(cmd *cobra.Command, cfg *internal.Config) (internal.Provider, error) {
	name := cfg.DefaultProvider
	if name == "" {
		name = "openai"
	}
	pc := cfg.Providers[name]

	apiKey := pc.APIKey
	envVar := strings.ToUpper(name) + "_API_KEY"
	if apiKey == "" {
		apiKey = os.Getenv(envVar)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set providers.%s.api_key or %s", internal.ErrNoProvider, name, envVar)
	}

	model := pc.Model
	if model == "" {
		model = "gpt-4o"
	}

	provider, err := internal.NewFantasyProvider(cmd.Context(), internal.FantasyConfig{
		Provider: name,
		APIKey:   apiKey,
		BaseURL:  pc.BaseURL,
		Model:    model,
	})
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	return provider, nil
}
