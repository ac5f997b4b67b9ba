package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging.
const EnvVar = "LSPACE_DEBUG"

var (
	logFile *os.File
	envOnce sync.Once
	mu      sync.Mutex
)

// Init initializes debug logging to the specified file path, replacing any
// previously opened log file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// initFromEnv opens the file named by LSPACE_DEBUG once. Caller must hold mu.
func initFromEnv() {
	envOnce.Do(func() {
		if logFile != nil {
			return
		}
		if path := os.Getenv(EnvVar); path != "" {
			initLocked(path)
		}
	})
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled returns true if log messages are being written.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	initFromEnv()
	return logFile != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	initFromEnv()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}
