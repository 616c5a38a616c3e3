// Package logger provides structured JSON logging and metrics tracking for pwga.
//
// The logger supports multiple log levels (DEBUG, INFO, WARN, ERROR) and outputs
// structured JSON for easy parsing and analysis. All logs include timestamps and
// can include arbitrary structured fields.
//
// Metrics tracking includes counters (incrementing values), gauges (point-in-time values),
// and timings (duration measurements) with automatic statistical aggregation.
//
// Example usage:
//
//	logger.Info("Ranked players", logger.Fields{
//	    "players": 12,
//	    "policy":  "average",
//	})
//
//	logger.Error("Sheet fetch failed", logger.Fields{
//	    "url": scoresURL,
//	}, err)
//
//	logger.IncrCounter("sheet.fetch")
//	logger.RecordTiming("sheet.fetch", duration)
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logger provides structured logging. It is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	output   io.Writer
}

// Fields represents structured log fields
type Fields map[string]interface{}

// LogEntry represents a single log entry
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

var defaultLogger *Logger

func init() {
	// stdout carries command output, so logs go to stderr
	defaultLogger = New(LevelInfo, os.Stderr)
}

// New creates a new logger with the specified minimum log level and output destination.
// Messages below the minimum level will be discarded.
func New(level Level, output io.Writer) *Logger {
	return &Logger{
		minLevel: level,
		output:   output,
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" to a Level.
func ParseLevel(s string) (Level, error) {
	switch level := Level(strings.ToUpper(strings.TrimSpace(s))); level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return level, nil
	case "":
		return LevelInfo, nil
	default:
		return "", fmt.Errorf("invalid log level: %s", s)
	}
}

// SetDefault sets the default package-level logger used by the convenience functions
// (Debug, Info, Warn, Error). This allows centralizing logger configuration.
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// log writes a structured log entry
func (l *Logger) log(level Level, message string, fields Fields, err error) {
	// Check if we should log this level
	if !l.shouldLog(level) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}

	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)

	l.mu.Lock()
	defer l.mu.Unlock()

	if marshalErr != nil {
		// Fallback to plain text if JSON marshal fails
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			entry.Timestamp, entry.Level, entry.Message, marshalErr)
		return
	}

	fmt.Fprintln(l.output, string(data))
}

// shouldLog determines if a message should be logged based on level
func (l *Logger) shouldLog(level Level) bool {
	levels := map[Level]int{
		LevelDebug: 0,
		LevelInfo:  1,
		LevelWarn:  2,
		LevelError: 3,
	}
	return levels[level] >= levels[l.minLevel]
}

// Debug logs a debug message with optional structured fields.
// Debug messages are typically used for detailed diagnostic information.
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs an informational message with optional structured fields.
// Info messages are used for general operational information.
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a warning message with optional structured fields.
// Warning messages indicate potential issues that don't prevent operation.
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, fields, nil)
}

// Error logs an error message with optional structured fields and an error object.
// Error messages indicate failures that prevent normal operation.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using default logger

// Debug logs a debug message with the default logger
func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

// Info logs an info message with the default logger
func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

// Warn logs a warning message with the default logger
func Warn(message string, fields Fields) {
	defaultLogger.Warn(message, fields)
}

// Error logs an error message with the default logger
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

// Metrics tracks operational metrics including counters, gauges, and timings.
// All operations are thread-safe.
//
// Counters track incrementing values (e.g., number of sheet fetches).
// Gauges track point-in-time values (e.g., number of ranked players).
// Timings track durations, summarized as count/average/min/max in a Snapshot.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	gauges   map[string]float64
	timings  map[string][]time.Duration
}

var defaultMetrics *Metrics

func init() {
	defaultMetrics = NewMetrics()
}

// NewMetrics creates a new metrics tracker with empty counters, gauges, and timings.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		gauges:   make(map[string]float64),
		timings:  make(map[string][]time.Duration),
	}
}

// Since returns a function that records the time elapsed since it was
// created under name. Use it as: defer logger.Since("sheet.fetch")()
func (m *Metrics) Since(name string) func() {
	start := time.Now()
	return func() {
		m.RecordTiming(name, time.Since(start))
	}
}

// IncrCounter increments a counter by 1. If the counter doesn't exist, it is initialized to 1.
// Thread-safe.
func (m *Metrics) IncrCounter(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// SetGauge sets a gauge to the specified value, overwriting any previous value.
// Thread-safe.
func (m *Metrics) SetGauge(name string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

// RecordTiming records a duration measurement under name.
func (m *Metrics) RecordTiming(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], duration)
}

// TimingStats summarizes the durations recorded under one name.
type TimingStats struct {
	Count   int           `json:"count"`
	Total   time.Duration `json:"total_ns"`
	Average time.Duration `json:"average_ns"`
	Min     time.Duration `json:"min_ns"`
	Max     time.Duration `json:"max_ns"`
}

// Snapshot is a point-in-time copy of a Metrics tracker.
type Snapshot struct {
	Counters map[string]int64       `json:"counters"`
	Gauges   map[string]float64     `json:"gauges"`
	Timings  map[string]TimingStats `json:"timings"`
}

// Snapshot copies the current counters, gauges and timing statistics.
// The result does not change when more metrics are recorded.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Counters: make(map[string]int64, len(m.counters)),
		Gauges:   make(map[string]float64, len(m.gauges)),
		Timings:  make(map[string]TimingStats, len(m.timings)),
	}
	for k, v := range m.counters {
		snap.Counters[k] = v
	}
	for k, v := range m.gauges {
		snap.Gauges[k] = v
	}
	for name, durations := range m.timings {
		if len(durations) == 0 {
			continue
		}
		stats := TimingStats{Count: len(durations), Min: durations[0], Max: durations[0]}
		for _, d := range durations {
			stats.Total += d
			stats.Min = min(stats.Min, d)
			stats.Max = max(stats.Max, d)
		}
		stats.Average = stats.Total / time.Duration(len(durations))
		snap.Timings[name] = stats
	}
	return snap
}

// WriteText writes one line per metric, sorted by kind then name.
func (s Snapshot) WriteText(w io.Writer) error {
	var lines []string
	for _, name := range sortedKeys(s.Counters) {
		lines = append(lines, fmt.Sprintf("counter %s = %d", name, s.Counters[name]))
	}
	for _, name := range sortedKeys(s.Gauges) {
		lines = append(lines, fmt.Sprintf("gauge   %s = %g", name, s.Gauges[name]))
	}
	for _, name := range sortedKeys(s.Timings) {
		t := s.Timings[name]
		lines = append(lines, fmt.Sprintf("timing  %s = %d calls, avg %s, min %s, max %s",
			name, t.Count, t.Average, t.Min, t.Max))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package-level metrics functions using the default metrics tracker

// IncrCounter increments a counter on the default metrics tracker.
// Convenience function equivalent to calling defaultMetrics.IncrCounter(name).
func IncrCounter(name string) {
	defaultMetrics.IncrCounter(name)
}

// SetGauge sets a gauge on the default metrics tracker.
// Convenience function equivalent to calling defaultMetrics.SetGauge(name, value).
func SetGauge(name string, value float64) {
	defaultMetrics.SetGauge(name, value)
}

// RecordTiming records a timing on the default metrics tracker.
// Convenience function equivalent to calling defaultMetrics.RecordTiming(name, duration).
func RecordTiming(name string, duration time.Duration) {
	defaultMetrics.RecordTiming(name, duration)
}

// Since starts a timing on the default metrics tracker.
func Since(name string) func() {
	return defaultMetrics.Since(name)
}

// MetricsSnapshot returns a snapshot of the default tracker.
func MetricsSnapshot() Snapshot {
	return defaultMetrics.Snapshot()
}
