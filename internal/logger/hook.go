package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook là một hook để ghi log bất đồng bộ, tránh blocking request handling.
// Hook buffer các log entries và ghi chúng vào các writers trong một goroutine riêng.
// Hỗ trợ nhiều writers (file, stdout) cùng lúc.
type AsyncHook struct {
	writers   []io.Writer
	entries   chan *logrus.Entry
	formatter logrus.Formatter
	wg        sync.WaitGroup
	mu        sync.Mutex
	closed    bool
}

// NewAsyncHookWithWriters tạo một async hook mới với nhiều writers.
// bufferSize: kích thước buffer cho log entries (mặc định 1000 nếu <= 0).
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
		formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		},
	}

	hook.wg.Add(1)
	go hook.worker()

	return hook
}

// Levels trả về tất cả các level mà hook xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đẩy entry vào buffer; nếu buffer đầy thì ghi đồng bộ để không mất log
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return h.write(entry)
	}
	h.mu.Unlock()

	// Dup để entry không bị mutate bởi caller sau khi Fire trả về
	dup := entry.Dup()
	dup.Level = entry.Level
	dup.Message = entry.Message

	select {
	case h.entries <- dup:
		return nil
	default:
		// Buffer đầy: ghi đồng bộ
		return h.write(dup)
	}
}

// worker chạy trong goroutine riêng, lấy entries từ channel và ghi vào writers
func (h *AsyncHook) worker() {
	defer h.wg.Done()
	for entry := range h.entries {
		if err := h.write(entry); err != nil {
			fmt.Fprintf(os.Stderr, "logger: failed to write log entry: %v\n", err)
		}
	}
}

// write format entry và ghi vào tất cả writers
func (h *AsyncHook) write(entry *logrus.Entry) error {
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	for _, w := range h.writers {
		if _, werr := w.Write(b); werr != nil {
			err = werr
		}
	}
	return err
}

// Close đóng hook, chờ ghi hết các entries còn trong buffer
func (h *AsyncHook) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
}
