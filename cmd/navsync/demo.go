package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/navsync-dev/navsync/pkg/browser"
	"github.com/navsync-dev/navsync/pkg/histsync"
	"github.com/navsync-dev/navsync/pkg/navstate"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted in-memory simulation of the sync protocol",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

// runDemo walks through the main synchronization scenarios against an
// in-memory history, printing the browser's view after each step.
func runDemo() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	history := browser.NewMemoryHistory("/feed")
	store := navstate.NewStore(&navstate.NavigationState{
		Routes: []navstate.Route{{Name: "feed"}},
	})

	sync := histsync.New(history,
		histsync.WithContainer(store),
		histsync.WithLogger(logger),
	)
	if initial := sync.GetInitialState(); initial != nil {
		store.ResetRoot(initial)
	}
	sync.Start()
	defer sync.Stop()

	report := func(step string) {
		fmt.Printf("%-34s url=%-28s index=%d stack=%d/%d\n",
			step, history.Location(), history.Index(),
			history.Position()+1, history.Length())
	}
	report("start")

	store.Dispatch(navstate.NewNavigateAction(&navstate.NavigatePayload{
		Name:   "article",
		Params: map[string]string{"id": "42"},
	}))
	report("navigate article?id=42")

	store.Dispatch(navstate.NewNavigateAction(&navstate.NavigatePayload{
		Name: "comments",
	}))
	report("navigate comments")

	history.Back()
	report("browser back")

	history.Forward()
	report("browser forward")

	store.GoBack()
	report("programmatic back")

	return nil
}
