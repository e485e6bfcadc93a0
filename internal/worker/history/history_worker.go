package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"github.com/route-planner/internal/worker"
	"go.uber.org/zap"
)

const (
	WorkerName = "route-history"

	defaultBatchSize = 20
	emptyQueueSleep  = 100 * time.Millisecond
	errorSleep       = time.Second
)

// RouteHistoryWorker сохраняет события режима обучения в историю
// и увеличивает счётчик запусков профиля
type RouteHistoryWorker struct {
	*worker.BaseWorker
	streamRepo  repository.StreamRepository
	historyRepo repository.HistoryRepository
	prefRepo    repository.PreferenceRepository
	batchSize   int
}

// NewRouteHistoryWorker создает новый RouteHistoryWorker
func NewRouteHistoryWorker(
	streamRepo repository.StreamRepository,
	historyRepo repository.HistoryRepository,
	prefRepo repository.PreferenceRepository,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *RouteHistoryWorker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &RouteHistoryWorker{
		BaseWorker:  worker.NewBaseWorker(WorkerName, consumerGroup, logger),
		streamRepo:  streamRepo,
		historyRepo: historyRepo,
		prefRepo:    prefRepo,
		batchSize:   batchSize,
	}
}

// Start запускает воркер
func (w *RouteHistoryWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RouteHistoryWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRouteHistory, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.processBatch(ctx)
		pause := time.Duration(0)
		switch {
		case err != nil:
			logger.Error("Failed to process batch", zap.Error(err))
			pause = errorSleep
		case processed == 0:
			pause = emptyQueueSleep
		}

		if pause > 0 && !w.Pause(ctx, pause) {
			if ctx.Err() != nil {
				logger.Info("Context cancelled")
				return ctx.Err()
			}
			logger.Info("Worker stopped")
			return nil
		}
	}
}

// processBatch читает пачку событий и возвращает число прочитанных сообщений.
// Сначала перечитываются свои неподтверждённые сообщения, затем новые.
// Не сохранённые события остаются в pending до следующей попытки.
func (w *RouteHistoryWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumePending(
		ctx,
		domain.StreamRouteHistory,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to read pending: %w", err)
	}
	retry := len(messages) > 0

	if !retry {
		messages, err = w.streamRepo.ConsumeBatch(
			ctx,
			domain.StreamRouteHistory,
			w.ConsumerGroup(),
			w.ConsumerName(),
			w.batchSize,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to consume batch: %w", err)
		}
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch",
		zap.Int("message_count", len(messages)),
		zap.Bool("retry", retry))

	ackIDs := make([]string, 0, len(messages))
	failed := 0
	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			// битое сообщение подтверждаем, чтобы оно не застревало
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		record := event.ToRecord()
		inserted, err := w.historyRepo.Insert(ctx, record)
		if err != nil {
			logger.Error("Failed to store history record",
				zap.String("message_id", msg.ID),
				zap.String("history_id", record.ID),
				zap.Error(err))
			failed++
			continue
		}

		// повторная доставка уже сохранённого события запуск не считает
		if inserted {
			if err := w.prefRepo.IncrementRuns(ctx, record.ProfileID); err != nil {
				logger.Warn("Failed to increment runs",
					zap.String("profile_id", record.ProfileID),
					zap.Error(err))
			}
		}
		ackIDs = append(ackIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamRouteHistory, w.ConsumerGroup(), ackIDs); err != nil {
		return len(messages), fmt.Errorf("failed to ack messages: %w", err)
	}

	logger.Info("Batch processed",
		zap.Int("received", len(messages)),
		zap.Int("acked", len(ackIDs)),
		zap.Int("failed", failed))

	if failed > 0 {
		return len(messages), fmt.Errorf("failed to store %d history records", failed)
	}
	return len(messages), nil
}

func parseMessage(msg domain.StreamMessage) (*domain.RouteHistoryEvent, error) {
	var event domain.RouteHistoryEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.ID == "" {
		return nil, fmt.Errorf("event without id")
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	return &event, nil
}
