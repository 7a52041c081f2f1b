package player

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/touchmpv/touchmpv/log"
	"github.com/touchmpv/touchmpv/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

// Options configures how mpv is spawned and prepared.
type Options struct {
	// Binary is the mpv executable, looked up in PATH when not absolute.
	Binary string

	// Socket is an existing IPC socket to attach to instead of spawning.
	Socket string

	// InitOptions are passed on the command line before playback starts.
	InitOptions []Option

	// PostInitOptions are applied through set_property once the socket is ready.
	PostInitOptions []Option

	// Observe lists the properties the EventListener subscribes to.
	Observe []string
}

// MPV implements Facade using mpv's JSON-IPC protocol.
type MPV struct {
	options    Options
	socketPath string
	owned      bool
	cmd        *exec.Cmd
	exited     chan struct{} // closed when the spawned process exits
	mu         sync.Mutex    // serialises socket round trips
}

// NewMPV creates a new MPV instance. Nothing is started until Launch or Attach.
func NewMPV(options Options) *MPV {
	if options.Binary == "" {
		options.Binary = "mpv"
	}

	exited := make(chan struct{})
	close(exited)

	return &MPV{
		options: options,
		exited:  exited,
	}
}

// Launch spawns mpv on target with the configured init options,
// waits for its IPC socket and applies the post-init options.
func (m *MPV) Launch(target string) error {
	safe, err := sanitizeMediaTarget(target)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	dir := where.Sockets()
	m.socketPath = filepath.Join(dir, uuid.NewString()+".sock")

	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		"--force-window=yes",
		"--idle=once",
	}

	for _, o := range m.options.InitOptions {
		args = append(args, o.Flag())
	}

	// end of flags, target can't be mistaken for one
	args = append(args, "--", safe)

	m.cmd = exec.Command(m.options.Binary, args...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	log.Infof("starting %s with %d init options", m.options.Binary, len(m.options.InitOptions))
	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	m.owned = true
	m.exited = make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	m.applyPostInit()
	return nil
}

// Attach connects to an mpv instance that is already listening on the configured socket.
func (m *MPV) Attach() error {
	if m.options.Socket == "" {
		return fmt.Errorf("attach: no socket configured")
	}

	m.socketPath = m.options.Socket
	m.owned = false

	if _, err := m.sendCommand("get_property", "pid"); err != nil {
		return fmt.Errorf("attach %s: %w", m.socketPath, err)
	}

	m.applyPostInit()
	return nil
}

func (m *MPV) applyPostInit() {
	for _, o := range m.options.PostInitOptions {
		if _, err := m.sendCommand("set_property", o.Name, o.Typed()); err != nil {
			log.Warnf("post-init option %s: %v", o.Name, err)
		}
	}
}

// Wait returns a channel that is closed when the spawned mpv process exits.
// For attached instances it is already closed.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

// Observe returns the configured property list for an EventListener.
func (m *MPV) Observe() []string {
	return m.options.Observe
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Close quits mpv gracefully, killing it when it does not exit in time.
// An attached instance is left running.
func (m *MPV) Close() error {
	if m.socketPath == "" || !m.owned {
		return nil
	}

	if _, err := m.sendCommand("quit"); err != nil {
		log.Warnf("quit over IPC failed, terminating: %v", err)
		_ = terminateProcess(m.cmd)
	}

	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

func (m *MPV) Position() mo.Option[float64] { return m.getFloat("time-pos") }

func (m *MPV) Duration() mo.Option[float64] { return m.getFloat("duration") }

func (m *MPV) Speed() mo.Option[float64] { return m.getFloat("speed") }

func (m *MPV) Paused() mo.Option[bool] { return m.getBool("pause") }

func (m *MPV) MediaTitle() mo.Option[string] { return m.getString("media-title") }

func (m *MPV) Path() mo.Option[string] { return m.getString("path") }

func (m *MPV) SetPaused(paused bool) {
	m.command("set_property", "pause", paused)
}

func (m *MPV) SetSpeed(speed float64) {
	m.command("set_property", "speed", speed)
}

func (m *MPV) SeekAbsoluteExact(seconds float64) {
	m.command("seek", seconds, "absolute+exact")
}

func (m *MPV) SeekRelativeExact(delta float64) {
	m.command("seek", delta, "relative+exact")
}

func (m *MPV) CycleAudio()     { m.command("cycle", "aid") }
func (m *MPV) CycleSubtitles() { m.command("cycle", "sid") }

func (m *MPV) command(command ...interface{}) {
	if _, err := m.sendCommand(command...); err != nil {
		log.Warnf("mpv %v: %v", command[0], err)
	}
}

func (m *MPV) get(name string) (interface{}, bool) {
	if m.socketPath == "" {
		return nil, false
	}

	data, err := m.sendCommand("get_property", name)
	if err != nil {
		// nothing loaded yet is an expected state
		if !strings.Contains(err.Error(), errUnavailable) {
			log.Debugf("get %s: %v", name, err)
		}
		return nil, false
	}

	return data, data != nil
}

func (m *MPV) getFloat(name string) mo.Option[float64] {
	data, ok := m.get(name)
	if !ok {
		return mo.None[float64]()
	}

	f, ok := data.(float64)
	if !ok {
		log.Debugf("property %s: expected float64, got %T", name, data)
		return mo.None[float64]()
	}

	return mo.Some(f)
}

func (m *MPV) getBool(name string) mo.Option[bool] {
	data, ok := m.get(name)
	if !ok {
		return mo.None[bool]()
	}

	b, ok := data.(bool)
	return mo.TupleToOption(b, ok)
}

func (m *MPV) getString(name string) mo.Option[string] {
	data, ok := m.get(name)
	if !ok {
		return mo.None[string]()
	}

	s, ok := data.(string)
	return mo.TupleToOption(s, ok)
}

// sanitizeMediaTarget validates a target before it reaches the mpv command line.
func sanitizeMediaTarget(target string) (string, error) {
	t := strings.TrimSpace(target)
	if t == "" {
		return "", fmt.Errorf("empty target")
	}

	if strings.ContainsAny(t, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in target")
	}

	if strings.HasPrefix(t, "-") {
		return "", fmt.Errorf("target must not start with '-' (looks like a flag)")
	}

	if strings.Contains(t, "://") {
		u, err := url.Parse(t)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
			return t, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(t), nil
}
