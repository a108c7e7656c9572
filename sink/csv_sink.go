package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"diag-hub/domain"
	"diag-hub/errors"
)

var csvHeader = []string{"timestamp", "name", "email", "rating", "message"}

// CSVSink appends feedback records to a durable, append-only tabular file.
// The file is shared across all sessions of the process, so appends are
// serialized behind an exclusive lock: two concurrent submissions always
// land as two intact rows. Rows are never rewritten or deleted.
type CSVSink struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

func NewCSVSink(path string, log *slog.Logger) *CSVSink {
	return &CSVSink{path: path, log: log}
}

// Deliver appends one record. The header row is written exactly once, when
// the file is empty: the check is on current size, never a truncate, so an
// existing log survives restarts untouched.
func (s *CSVSink) Deliver(_ context.Context, record domain.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLogSink, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLogSink, err)
	}

	writer := csv.NewWriter(file)
	if info.Size() == 0 {
		if err := writer.Write(csvHeader); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrLogSink, err)
		}
	}

	row := []string{
		record.At.UTC().Format(time.RFC3339),
		record.Name,
		record.Email,
		strconv.Itoa(record.Rating),
		record.Message,
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLogSink, err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLogSink, err)
	}

	s.log.Debug("Feedback row appended", "id", record.ID, "path", s.path)
	return nil
}
