package notify

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

const historyLimit = 50

type Alert struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Center is the process-wide user notification channel. Every subscriber
// sees every alert in publish order.
type Center struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]func(Alert)
	history []Alert
	logger  *logrus.Entry
	now     func() time.Time
}

func New(logger *logrus.Entry) *Center {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Center{
		subs:   make(map[int]func(Alert)),
		logger: logger,
		now:    time.Now,
	}
}

// Subscribe registers fn and returns a func that removes it.
func (c *Center) Subscribe(fn func(Alert)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Center) Success(message string) { c.publish(LevelSuccess, message) }
func (c *Center) Error(message string)   { c.publish(LevelError, message) }
func (c *Center) Warning(message string) { c.publish(LevelWarning, message) }
func (c *Center) Info(message string)    { c.publish(LevelInfo, message) }

func (c *Center) publish(level Level, message string) {
	if c == nil {
		return
	}
	alert := Alert{Level: level, Message: message, At: c.now()}

	c.mu.Lock()
	c.history = append(c.history, alert)
	if len(c.history) > historyLimit {
		c.history = c.history[len(c.history)-historyLimit:]
	}
	subs := make([]func(Alert), 0, len(c.subs))
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	c.mu.Unlock()

	c.logger.WithField("level", string(level)).Debug(message)
	for _, fn := range subs {
		fn(alert)
	}
}

// Last returns the most recent alert.
func (c *Center) Last() (Alert, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.history) == 0 {
		return Alert{}, false
	}
	return c.history[len(c.history)-1], true
}

func (c *Center) History() []Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Alert, len(c.history))
	copy(out, c.history)
	return out
}
