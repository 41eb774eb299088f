package conversation

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/ganot/cursor-recap/internal/repository"
)

// recordKeyPrefix marks conversation records in the state store.
const recordKeyPrefix = "composerData:"

const (
	defaultName  = "Untitled conversation"
	unknownValue = "unknown"
)

// Service runs the extraction pipeline.
type Service struct {
	store  repository.StateOpener
	logger *slog.Logger
}

// NewService creates a new extraction service.
func NewService(store repository.StateOpener, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger}
}

// Extract returns a summary for every conversation created or updated on the
// given day, oldest first. A store connection is opened for the duration of
// the call and closed on every exit path. Store-level failures are reported
// to the logger and produce an empty result; a corrupt record is skipped so
// it never hides the rest.
func (s *Service) Extract(ctx context.Context, day time.Time) []Summary {
	summaries := make([]Summary, 0)

	store, err := s.store.Open(ctx)
	if err != nil {
		s.logger.Error("failed to open state store", "error", err)
		return summaries
	}
	defer store.Close()

	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	startMS := startOfDay.UnixMilli()
	endMS := startOfDay.Add(24 * time.Hour).UnixMilli()

	entries, err := store.ScanPrefix(ctx, recordKeyPrefix)
	if err != nil {
		s.logger.Error("failed to scan conversation records", "error", err)
		return summaries
	}

	for _, entry := range entries {
		var rec Record
		if err := json.Unmarshal([]byte(entry.Value), &rec); err != nil {
			continue
		}
		if !within(rec.CreatedAt, startMS, endMS) && !within(rec.LastUpdated, startMS, endMS) {
			continue
		}
		summaries = append(summaries, s.summarize(ctx, store, rec))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TimestampMS < summaries[j].TimestampMS
	})

	return summaries
}

// within reports whether ts falls in the half-open window [start, end).
func within(ts, start, end int64) bool {
	return ts >= start && ts < end
}

func (s *Service) summarize(ctx context.Context, store repository.StateStore, rec Record) Summary {
	name := rec.Name
	if name == "" {
		name = defaultName
	}
	status := rec.Status
	if status == "" {
		status = unknownValue
	}
	model := rec.ModelConfig.ModelName
	if model == "" {
		model = unknownValue
	}

	createdAt := unknownValue
	if rec.CreatedAt != 0 {
		createdAt = time.UnixMilli(rec.CreatedAt).Format("15:04")
	}

	return Summary{
		ID:           rec.ComposerID,
		Name:         name,
		CreatedAt:    createdAt,
		TimestampMS:  rec.CreatedAt,
		Status:       status,
		Model:        model,
		MessageCount: len(rec.Headers),
		FirstMessage: firstUserMessage(ctx, store, rec.ComposerID, rec.Headers),
		Workspace:    inferWorkspace(rec.CodeBlocks),
	}
}
