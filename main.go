package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/llehouerou/ambience/internal/config"
	"github.com/llehouerou/ambience/internal/errmsg"
	"github.com/llehouerou/ambience/internal/player"
	"github.com/llehouerou/ambience/internal/session"
	"github.com/llehouerou/ambience/internal/state"
	"github.com/llehouerou/ambience/internal/stderr"
)

func main() {
	// Capture ALSA noise before the audio device is opened; our own
	// output goes through stderr.WriteOriginal.
	captured := stderr.Start() == nil
	if captured {
		go func() {
			for range stderr.Messages {
				// Driver noise is dropped; the session owns the terminal.
			}
		}()
	}

	err := run()

	if captured {
		stderr.Stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer stateMgr.Close()

	dev, err := player.OpenDevice()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpDeviceOpen, err))
	}

	sess := session.New(session.DeviceFactory{Device: dev})

	// Session file: argument > config default > last session used
	sessionPath := sessionSource(cfg, stateMgr)
	if sessionPath == "" {
		return errors.New("no session file: pass a path or set default_session in the config")
	}
	if err := sess.Load(sessionPath, false); err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpSessionLoad, sessionPath, err))
	}

	// Explicit names cover grouped players too; "all" would not.
	names := sess.Names()

	vol := masterVolume(cfg, stateMgr)
	if vol != nil && len(names) > 0 {
		if err := sess.SetVolume(names, nil, *vol); err != nil {
			return errors.New(errmsg.Format(errmsg.OpVolumeSet, err))
		}
	}

	if cfg.Autoplay && len(names) > 0 {
		if err := sess.Play(names, nil); err != nil {
			return errors.New(errmsg.Format(errmsg.OpPlaybackStart, err))
		}
	}

	stderr.WriteOriginal(fmt.Sprintf("ambience: %d players from %s, ctrl-c to quit\n",
		sess.Len(), sessionPath))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	if len(names) > 0 {
		if err := sess.Stop(names, nil); err != nil {
			stderr.WriteOriginal(errmsg.Format(errmsg.OpPlaybackStop, err) + "\n")
		}
	}

	if err := stateMgr.SaveSnapshot(sessionPath, vol); err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpStateSave, err) + "\n")
	}
	return nil
}

func sessionSource(cfg *config.Config, stateMgr state.Interface) string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	if cfg.DefaultSession != "" {
		return cfg.DefaultSession
	}
	if last, err := stateMgr.GetLastSession(); err == nil {
		return last
	}
	return ""
}

func masterVolume(cfg *config.Config, stateMgr state.Interface) *uint {
	if cfg.MasterVolume != nil {
		return cfg.MasterVolume
	}
	if vol, err := stateMgr.GetMasterVolume(); err == nil {
		return vol
	}
	return nil
}
