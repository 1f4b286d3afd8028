package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/routekit/routekit/convert"
	"github.com/routekit/routekit/formatter"
	"github.com/routekit/routekit/manifest"
	"github.com/routekit/routekit/pattern"
)

var watchManifests bool

var checkCmd = &cobra.Command{
	Use:   "check [manifests...]",
	Short: "Validate every route pattern in the given manifests",
	Long: `Parses and validates each pattern in the given YAML manifests and prints
all diagnostics. This is the fail-fast start-up path: a nonzero exit means
the route set must not be served.
Example) routekit check routes.yaml --watch`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide manifest paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		registry := convert.NewRegistry()
		failed := runCheck(ctx, args, registry)

		if watchManifests {
			watchAndRecheck(args, registry)
			return
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&watchManifests, "watch", "w", false, "Re-check manifests on change")
}

func runCheck(ctx context.Context, paths []string, registry *convert.Registry) bool {
	var bar *progressbar.ProgressBar
	if len(paths) > 1 {
		bar = progressbar.Default(int64(len(paths)), "checking manifests")
	}

	failed := false
	for _, path := range paths {
		select {
		case <-ctx.Done():
			logger.Error("Manifest check aborted", zap.Error(ctx.Err()))
			return true
		default:
		}
		if checkManifest(path, registry) {
			failed = true
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return failed
}

// checkManifest validates one manifest and prints its diagnostics.
// It reports whether anything failed.
func checkManifest(path string, registry *convert.Registry) bool {
	f, err := manifest.Load(path)
	if err != nil {
		logger.Error("Failed to load manifest", zap.String("path", path), zap.Error(err))
		return true
	}

	var diags []pattern.Diagnostic
	for _, r := range f.Routes {
		if _, ds := pattern.Compile(r.Pattern, registry); len(ds) > 0 {
			diags = append(diags, ds...)
		}
	}

	if len(diags) > 0 {
		fmt.Printf("%s:\n", path)
		fmt.Print(formatter.Format(diags))
	}
	fmt.Print(formatter.Summary(len(f.Routes), len(diags)))
	return len(diags) > 0
}

func watchAndRecheck(paths []string, registry *convert.Registry) {
	w, err := manifest.NewWatcher(paths, func(changed string) {
		checkManifest(changed, registry)
	})
	if err != nil {
		logger.Fatal("Failed to start manifest watcher", zap.Error(err))
	}
	if err := w.Start(); err != nil {
		logger.Fatal("Failed to start manifest watcher", zap.Error(err))
	}
	defer func() { _ = w.Stop() }()

	fmt.Println("watching for manifest changes; press Ctrl-C to stop")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
}
