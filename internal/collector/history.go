package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// CommandSource runs a history command such as `last -x` and returns its
// standard output.
type CommandSource struct {
	Command []string
	Timeout time.Duration
}

func NewCommandSource(command []string, timeout time.Duration) *CommandSource {
	return &CommandSource{Command: command, Timeout: timeout}
}

func (s *CommandSource) Name() string {
	return strings.Join(s.Command, " ")
}

func (s *CommandSource) History(ctx context.Context) (string, error) {
	if len(s.Command) == 0 {
		return "", errors.New("no history command configured")
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.Command[0], s.Command[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%s timed out after %s", s.Name(), s.Timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("running %s: %w: %s", s.Name(), err, msg)
		}
		return "", fmt.Errorf("running %s: %w", s.Name(), err)
	}
	return stdout.String(), nil
}

// FileSource reads a saved history dump, e.g. `last -x > history.txt`.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string {
	return s.Path
}

func (s *FileSource) History(context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
