package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/touchmpv/touchmpv/log"
)

// Event is a property change or engine event pushed by mpv.
type Event struct {
	// Name is the property name for property changes, the event name otherwise.
	Name string
	Data interface{}
}

// EventCallback receives events on the listener goroutine.
// Hosts marshal them onto the control thread before touching any state.
type EventCallback func(Event)

// EventListener subscribes to property changes with observe_property
// and reads them from a dedicated connection.
type EventListener struct {
	socketPath string
	properties []string
	callback   EventCallback
	conn       net.Conn
	mu         sync.Mutex
	listening  bool
	done       chan struct{}
}

// NewEventListener creates a listener for the given properties.
func NewEventListener(socketPath string, properties []string, callback EventCallback) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		properties: properties,
		callback:   callback,
	}
}

// Start opens the event connection, registers the observers on it and starts reading.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	// observers are bound to the connection that registers them
	for i, name := range el.properties {
		payload, err := json.Marshal(ipcCommand{
			Command:   []interface{}{"observe_property", i + 1, name},
			RequestID: requestIDs.Add(1),
		})
		if err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}

		if _, err := conn.Write(append(payload, '\n')); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	el.listening = true
	el.done = make(chan struct{})

	go el.readLoop(conn, el.done)

	log.Infof("mpv event listener started on %s (observing: %v)", el.socketPath, el.properties)
	return nil
}

// Stop closes the event connection. Callbacks may still be running when it returns.
func (el *EventListener) Stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.listening {
		return
	}

	el.conn.Close()
	el.listening = false
}

// Done is closed when the read loop has exited.
func (el *EventListener) Done() <-chan struct{} {
	return el.done
}

func (el *EventListener) readLoop(conn net.Conn, done chan struct{}) {
	defer close(done)

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		if event, ok := parseEvent(scanner.Bytes()); ok && el.callback != nil {
			el.callback(event)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Debugf("event listener stopped: %v", err)
	}
}

// parseEvent decodes one line. Replies to our own commands are skipped.
func parseEvent(line []byte) (Event, bool) {
	var raw struct {
		Event string      `json:"event"`
		Name  string      `json:"name"`
		Data  interface{} `json:"data"`
	}

	if err := json.Unmarshal(line, &raw); err != nil || raw.Event == "" {
		return Event{}, false
	}

	if raw.Event == "property-change" {
		if raw.Name == "" {
			return Event{}, false
		}
		return Event{Name: raw.Name, Data: raw.Data}, true
	}

	return Event{Name: raw.Event}, true
}
