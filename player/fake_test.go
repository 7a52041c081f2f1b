package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"path/filepath"
	"sync"
	"testing"
)

// fakeMPV answers JSON-IPC requests from a property table.
type fakeMPV struct {
	t          *testing.T
	listener   net.Listener
	socket     string
	mu         sync.Mutex
	properties map[string]interface{}
	commands   [][]interface{}
	silent     bool // record requests but never answer
}

func newFakeMPV(t *testing.T) *fakeMPV {
	socket := filepath.Join(t.TempDir(), "mpv.sock")
	listener, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatal(err)
	}

	f := &fakeMPV{
		t:        t,
		listener: listener,
		socket:   socket,
		properties: map[string]interface{}{
			"pid":         float64(42),
			"time-pos":    12.5,
			"duration":    100.0,
			"pause":       false,
			"speed":       1.0,
			"media-title": "Big Buck Bunny.mkv",
			"path":        "/videos/bbb.mkv",
		},
	}

	go f.serve()
	t.Cleanup(func() { listener.Close() })
	return f
}

func (f *fakeMPV) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeMPV) handle(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var req ipcCommand
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			return
		}

		f.mu.Lock()
		f.commands = append(f.commands, req.Command)
		if f.silent {
			f.mu.Unlock()
			continue
		}
		var lines []interface{}

		// an unrelated event first, clients must skip it
		lines = append(lines, map[string]interface{}{"event": "audio-reconfig"})

		reply := map[string]interface{}{"request_id": req.RequestID, "error": "success"}
		switch req.Command[0] {
		case "get_property":
			value, ok := f.properties[req.Command[1].(string)]
			if ok && value != nil {
				reply["data"] = value
			} else {
				reply["error"] = "property unavailable"
			}
		case "set_property":
			f.properties[req.Command[1].(string)] = req.Command[2]
		case "observe_property":
			name := req.Command[2].(string)
			lines = append(lines, reply, map[string]interface{}{
				"event": "property-change",
				"id":    req.Command[1],
				"name":  name,
				"data":  f.properties[name],
			})
			reply = nil
		}
		if reply != nil {
			lines = append(lines, reply)
		}
		f.mu.Unlock()

		for _, line := range lines {
			payload, _ := json.Marshal(line)
			if _, err := conn.Write(append(payload, '\n')); err != nil {
				return
			}
		}
	}
}

func (f *fakeMPV) hang() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.silent = true
}

func (f *fakeMPV) set(name string, value interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.properties[name] = value
}

// received renders every command as fmt.Sprint does, e.g. "[seek 30 absolute+exact]".
func (f *fakeMPV) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.commands))
	for i, c := range f.commands {
		out[i] = fmt.Sprint(c)
	}
	return out
}
