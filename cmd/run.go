package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oyunsanaa/oyunsanaa/internal/app"
	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/reflection"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
	"github.com/oyunsanaa/oyunsanaa/internal/store"
)

// runApp builds the store, result backends, and reflection provider,
// then launches the TUI.
func runApp(cmd *cobra.Command) error {
	deps, cleanup, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	return app.Run(deps)
}

// buildDeps wires the TUI dependencies. The returned cleanup closes the
// local store, when one was opened.
func buildDeps(cmd *cobra.Command) (app.Deps, func(), error) {
	ctx := cmd.Context()
	cleanup := func() {}

	if err := loadInstruments(cmd); err != nil {
		return app.Deps{}, cleanup, err
	}

	deps := app.Deps{
		Local: localCache(),
		User:  identity.Identity{ID: "local-user"},
	}

	verifier, token, hasSession := identity.FromEnv()
	if hasSession {
		id, err := verifier.Verify(ctx, token)
		if err != nil {
			return app.Deps{}, cleanup, fmt.Errorf("verify session: %w", err)
		}
		deps.User = id
	}

	if baseURL := remoteBaseURL(cmd); baseURL != "" {
		if !hasSession {
			return app.Deps{}, cleanup, fmt.Errorf("OYUNSANAA_SESSION_TOKEN must be set when syncing against %s", baseURL)
		}
		// Client mode: results go to the server, mood check-ins stay
		// unavailable until the wire grows a moods client.
		deps.Remote = results.NewHTTPRemote(baseURL, token)
	} else {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return app.Deps{}, cleanup, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return app.Deps{}, cleanup, fmt.Errorf("open store: %w", err)
		}
		cleanup = func() { st.Close() }

		deps.Remote = st.ResultRepo()
		deps.MoodRepo = st.MoodRepo()
	}

	provider, err := reflection.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Reflection provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI reflections will be unavailable.")
	} else {
		deps.Reflector = reflection.NewReflector(provider)
	}

	return deps, cleanup, nil
}

// localCache opens the bounded result cache, falling back to a no-op
// store when the cache directory cannot be resolved.
func localCache() results.LocalStore {
	path, err := results.DefaultCachePath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Result cache unavailable:", err)
		return results.NopStore{}
	}
	return results.NewFileStore(path)
}

// loadInstruments registers extra instrument definitions from the
// --instruments flag or OYUNSANAA_INSTRUMENTS, on top of the built-ins.
func loadInstruments(cmd *cobra.Command) error {
	dir, _ := cmd.Flags().GetString("instruments")
	if dir == "" {
		dir = strings.TrimSpace(os.Getenv("OYUNSANAA_INSTRUMENTS"))
	}
	if dir == "" {
		return nil
	}
	if err := catalog.LoadDir(dir); err != nil {
		return fmt.Errorf("load instruments from %s: %w", dir, err)
	}
	return nil
}

func remoteBaseURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("remote"); u != "" {
		return u
	}
	return strings.TrimSpace(os.Getenv("OYUNSANAA_REMOTE"))
}
