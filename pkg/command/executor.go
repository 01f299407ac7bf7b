package command

import (
	"context"
	"os"
	"os/exec"
	"time"
)

type Executor interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
	ExecuteWithTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error)
}

// OSExecutor runs commands on the local host. Dir and Env, when set, apply
// to every command it runs; Env is appended to the current environment.
type OSExecutor struct {
	Dir string
	Env []string
}

var _ Executor = &OSExecutor{}

func (e *OSExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir

	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}

	return cmd.CombinedOutput()
}

func (e *OSExecutor) ExecuteWithTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return e.Execute(ctx, name, args...)
}
