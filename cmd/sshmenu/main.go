// Package main is the entry point for the menu-driven front end. The menu
// only picks a profile; the ssh process is spawned after the TUI releases
// the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeloras/ssh-manager/internal/config"
	"github.com/zeloras/ssh-manager/internal/logger"
	"github.com/zeloras/ssh-manager/internal/notify"
	"github.com/zeloras/ssh-manager/internal/registry"
	"github.com/zeloras/ssh-manager/internal/runner"
	"github.com/zeloras/ssh-manager/internal/store"
	"github.com/zeloras/ssh-manager/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	settings, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(settings.LogLevel)

	reg := registry.Open(store.New(settings.ProfilesFile), log)

	model := tui.New(reg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}

	choice, ok := model.Choice()
	if !ok {
		return nil
	}

	// Stamp usage and get the command, then hand the terminal to ssh.
	sshCmd, err := reg.Connect(choice.Name, false)
	if err != nil {
		return err
	}

	fmt.Printf("Connecting to %s...\n", choice.Name)
	if err := runner.New().Run(ctx, sshCmd); err != nil {
		if errors.Is(err, runner.ErrInterrupted) {
			fmt.Println("\nConnection interrupted by user.")
			return nil
		}
		notifier := notify.New(settings.Notifications)
		if notifyErr := notifier.NotifyConnectFailure(choice.Name, err); notifyErr != nil {
			log.Debugf("notification failed: %v", notifyErr)
		}
		return err
	}
	return nil
}
