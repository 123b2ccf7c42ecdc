package serial

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	bugst "go.bug.st/serial"
)

// ErrClosed is returned when writing to a controller that is not connected.
var ErrClosed = errors.New("serial: controller not connected")

// startSignal tells the controller firmware to start its session timer.
const startSignal = 'S'

type ControllerState int

const (
	StateDisconnected ControllerState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ControllerState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Controller owns the serial link to the fitness controller. The port is read
// on a background goroutine; decoded commands wait in a buffered channel that
// the game drains once per tick without blocking.
// All shared fields are protected by mu.
type Controller struct {
	mu sync.RWMutex

	state     ControllerState
	lastError error
	port      io.ReadWriteCloser

	log       zerolog.Logger
	commandCh chan Command
	done      chan struct{}
	closeOnce sync.Once
}

func NewController(log zerolog.Logger, buffer int) *Controller {
	if buffer <= 0 {
		buffer = 64
	}
	return &Controller{
		state:     StateDisconnected,
		log:       log,
		commandCh: make(chan Command, buffer),
		done:      make(chan struct{}),
	}
}

// Connect opens the named port in a background goroutine and starts reading.
// Reads time out after readTimeout so the reader notices Disconnect.
func (c *Controller) Connect(name string, baud int, readTimeout time.Duration) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	go func() {
		port, err := bugst.Open(name, &bugst.Mode{BaudRate: baud})
		if err != nil {
			c.setError(fmt.Errorf("open %s: %w", name, err))
			return
		}
		if err := port.SetReadTimeout(readTimeout); err != nil {
			_ = port.Close()
			c.setError(fmt.Errorf("set read timeout on %s: %w", name, err))
			return
		}
		c.log.Info().Str("port", name).Int("baud", baud).Msg("controller connected")
		c.Attach(port)
	}()
}

// Attach starts reading from an already open port.
func (c *Controller) Attach(port io.ReadWriteCloser) {
	select {
	case <-c.done:
		_ = port.Close()
		return
	default:
	}

	c.mu.Lock()
	c.port = port
	c.state = StateConnected
	c.mu.Unlock()

	go c.read(port)
}

func (c *Controller) read(port io.Reader) {
	var dec Decoder
	buf := make([]byte, 256)
	for {
		n, err := port.Read(buf)
		switch {
		case n > 0:
			c.push(dec.Feed(buf[:n]))
		case err == nil && dec.Pending():
			// the line went quiet, decode whatever is held
			c.push(dec.Flush(nil))
		}

		select {
		case <-c.done:
			return
		default:
		}
		if err != nil {
			c.setError(fmt.Errorf("read: %w", err))
			return
		}
	}
}

func (c *Controller) push(cmds []Command) {
	for _, cmd := range cmds {
		select {
		case c.commandCh <- cmd:
		default:
			c.log.Warn().Stringer("command", cmd).Msg("controller buffer full, command dropped")
		}
	}
}

// Disconnect stops the reader and closes the port.
func (c *Controller) Disconnect() {
	c.closeOnce.Do(func() { close(c.done) })

	c.mu.Lock()
	port := c.port
	c.port = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if port != nil {
		_ = port.Close()
	}
}

// SendStart tells the controller a run has begun.
func (c *Controller) SendStart() error {
	c.mu.RLock()
	port := c.port
	c.mu.RUnlock()

	if port == nil {
		return ErrClosed
	}
	if _, err := port.Write([]byte{startSignal}); err != nil {
		return fmt.Errorf("send start: %w", err)
	}
	return nil
}

func (c *Controller) State() ControllerState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// DrainCommands returns all pending commands, non-blocking.
func (c *Controller) DrainCommands() []Command {
	return drainChan(c.commandCh)
}

func (c *Controller) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
	c.log.Error().Err(err).Msg("controller link failed")
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
