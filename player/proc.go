package player

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/mpvlink-cli/mpvlink/log"
	"golang.org/x/exp/slices"
)

// loaderEnv names the dynamic-linker variables scrubbed from the player's
// environment; the player must not load this invocation's libraries.
var loaderEnv = []string{"LD_LIBRARY_PATH", "LD_PRELOAD"}

// proxyEnv names every spelling the proxy URL is injected under; downstream
// tooling disagrees on case and scheme.
var proxyEnv = []string{"http_proxy", "HTTP_PROXY", "https_proxy", "HTTPS_PROXY"}

// Process supervises a spawned player instance. The child runs concurrently;
// the supervisor coordinates only with its exit status.
type Process struct {
	cmd     *exec.Cmd
	exited  chan struct{} // closed when the player exits
	waitErr error         // set before exited closes
}

// Spawn starts the player with the given argument vector and a sanitized
// environment. The process is detached from the dispatcher's process group so
// it survives terminal teardown.
func Spawn(path string, args []string, proxy string) (*Process, error) {
	cmd := exec.Command(path, args...)
	cmd.Env = buildEnv(os.Environ(), proxy)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Err: err}
	}
	log.Debugf("spawned player pid %d: %s %s", cmd.Process.Pid, path, strings.Join(args, " "))

	p := &Process{cmd: cmd, exited: make(chan struct{})}

	// Reap in the background to prevent zombies.
	go func() {
		p.waitErr = cmd.Wait()
		close(p.exited)
	}()

	return p, nil
}

// Wait blocks until the player terminates and maps its status to an outcome.
// A signal termination carries no code and defaults to 1.
func (p *Process) Wait() error {
	<-p.exited
	if p.waitErr == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(p.waitErr, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		return &ExitError{Code: code}
	}
	return &ExitError{Code: 1}
}

// Kill force-terminates the player and its process group.
func (p *Process) Kill() error {
	log.Warnf("killing player pid %d", p.cmd.Process.Pid)
	return killProcess(p.cmd)
}

// buildEnv copies the inherited environment minus the dynamic-loader
// overrides, appending the proxy variables when a proxy is configured.
func buildEnv(base []string, proxy string) []string {
	env := make([]string, 0, len(base)+len(proxyEnv))
	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if slices.Contains(loaderEnv, name) {
			continue
		}
		env = append(env, kv)
	}

	if proxy != "" {
		for _, name := range proxyEnv {
			env = append(env, name+"="+proxy)
		}
	}

	return env
}
