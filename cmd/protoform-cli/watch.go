package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <definition>",
	Short: "Regenerate the prototype whenever the definition changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		definition := args[0]

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()

		// Watch the directory, not the file: editors replace files on save
		// and the original inode stops emitting events.
		if err := watcher.Add(filepath.Dir(definition)); err != nil {
			return fmt.Errorf("watch %q: %w", definition, err)
		}

		regenerate := func() {
			if err := generateCmd.RunE(cmd, args); err != nil {
				fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
			}
		}
		regenerate()
		fmt.Println(headingStyle.Render(fmt.Sprintf("Watching %s", definition)))

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		var debounce *time.Timer
		target := filepath.Clean(definition)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(200*time.Millisecond, regenerate)
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
			case <-stop:
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
