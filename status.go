package main

import (
	"bufio"
	"context"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// statusUnknown is shown whenever no battery reading is available.
	statusUnknown = "--"

	upowerCommand = "upower -i $(upower -e | grep ps_controller) | grep percent"
	pollTimeout   = 5 * time.Second
)

var errNoOutput = errors.New("no output")

// StatusSource returns the raw line reported for the controller battery.
type StatusSource interface {
	Status(ctx context.Context) (string, error)
}

type upowerSource struct {
	shell   string
	command string
	timeout time.Duration
}

func newUpowerSource() *upowerSource {
	return &upowerSource{
		shell:   "/bin/bash",
		command: upowerCommand,
		timeout: pollTimeout,
	}
}

// Status runs the command and returns the first line it prints. The process
// is killed once the timeout expires.
func (s *upowerSource) Status(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.shell, "-c", s.command)
	// the pipeline children inherit stdout, so kill the whole group or the
	// read below never sees EOF
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", errors.Wrap(err, "stdout pipe")
	}
	if err := cmd.Start(); err != nil {
		return "", errors.Wrapf(err, "start %s", s.shell)
	}
	defer cmd.Wait()

	scanner := bufio.NewScanner(stdout)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", errors.Wrap(err, "read output")
		}
		if ctx.Err() != nil {
			return "", errors.Wrap(ctx.Err(), "poll")
		}
		return "", errNoOutput
	}
	line := scanner.Text()

	// stop the rest of the pipeline; only the first line matters
	cancel()
	return line, nil
}

// pollStatus asks src for the current reading and returns the last word of
// its first line, or statusUnknown when there is nothing usable.
func pollStatus(ctx context.Context, src StatusSource) string {
	line, err := src.Status(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("controller status unavailable")
		return statusUnknown
	}

	token := line[strings.LastIndex(line, " ")+1:]
	if token == "" {
		return statusUnknown
	}
	return token
}
