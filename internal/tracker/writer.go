package tracker

import (
	"log/slog"
	"sync"
)

// Writer performs storage writes on a single background goroutine.
//
// Writes run in submission order. A write submitted for a key that still
// has a pending write replaces it, so only the latest value of each key is
// written. Failures are logged and dropped.
type Writer struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending map[string]func() error
	order   []string
	busy    bool
	closed  bool

	wake   chan struct{}
	stop   chan struct{}
	done   chan struct{}
	logger *slog.Logger
}

// NewWriter starts the writer goroutine.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}

	w := &Writer{
		pending: make(map[string]func() error),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		logger:  logger,
	}
	w.cond = sync.NewCond(&w.mu)

	go w.run()

	return w
}

// Submit queues write for key. After Close the write runs synchronously
// once the queued writes have drained.
func (w *Writer) Submit(key string, write func() error) {
	w.mu.Lock()

	if w.closed {
		w.mu.Unlock()
		<-w.done
		w.exec(key, write)

		return
	}

	if _, ok := w.pending[key]; !ok {
		w.order = append(w.order, key)
	}

	w.pending[key] = write
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Flush blocks until every submitted write has run.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for len(w.order) > 0 || w.busy {
		w.cond.Wait()
	}
}

// Close drains pending writes and stops the goroutine.
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}

	w.closed = true
	w.mu.Unlock()

	close(w.stop)
	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)

	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.stop:
			w.drain()
			return
		}
	}
}

func (w *Writer) drain() {
	for {
		w.mu.Lock()

		if len(w.order) == 0 {
			w.busy = false
			w.cond.Broadcast()
			w.mu.Unlock()

			return
		}

		key := w.order[0]
		w.order = w.order[1:]
		write := w.pending[key]
		delete(w.pending, key)
		w.busy = true
		w.mu.Unlock()

		w.exec(key, write)
	}
}

func (w *Writer) exec(key string, write func() error) {
	if err := write(); err != nil {
		w.logger.Error("failed to persist record",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
