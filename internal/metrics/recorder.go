package metrics

import (
	"bufio"
	"encoding/json"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/normalhq/chatbox/server/internal/analysis/emotion"
	"github.com/normalhq/chatbox/server/internal/analysis/intensity"
)

// Recorder appends one anonymized JSON record per processed message:
// emotion, intensity, timestamp. Message content never reaches this file.
type Recorder struct {
	logger   *zap.Logger
	filePath string
}

// Stats aggregates the metadata log.
type Stats struct {
	Total       int            `json:"total"`
	Emotions    map[string]int `json:"emotions"`
	Intensities map[string]int `json:"intensities"`
}

type record struct {
	Emotion   string `json:"emotion"`
	Intensity string `json:"intensity"`
	Timestamp string `json:"timestamp"`
}

// NewRecorder opens a rotated JSONL sink at logFilePath.
func NewRecorder(logFilePath string) *Recorder {
	rotator := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Pure metadata records: no level, no message, no caller.
	encoderConfig.LevelKey = zapcore.OmitKey
	encoderConfig.MessageKey = zapcore.OmitKey
	encoderConfig.CallerKey = zapcore.OmitKey

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)

	return &Recorder{
		logger:   zap.New(core),
		filePath: logFilePath,
	}
}

// Record appends one anonymized entry.
func (r *Recorder) Record(category emotion.Category, level intensity.Level) {
	r.logger.Info("",
		zap.String("emotion", string(category)),
		zap.String("intensity", string(level)),
	)
}

// Sync flushes buffered records. Called on shutdown.
func (r *Recorder) Sync() error {
	return r.logger.Sync()
}

// Stats re-reads the active log file and aggregates it. A missing file is
// an empty aggregate, not an error; malformed lines are skipped.
func (r *Recorder) Stats() (Stats, error) {
	stats := Stats{
		Emotions:    make(map[string]int),
		Intensities: make(map[string]int),
	}

	file, err := os.Open(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return Stats{}, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		var entry record
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		if entry.Emotion == "" && entry.Intensity == "" {
			continue
		}
		stats.Total++
		stats.Emotions[entry.Emotion]++
		stats.Intensities[entry.Intensity]++
	}

	if err := scanner.Err(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
