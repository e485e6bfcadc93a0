package worker

import (
	"context"
)

// Worker - фоновый процесс, управляемый WorkerManager
type Worker interface {
	// Start блокируется до Stop или отмены контекста
	Start(ctx context.Context) error

	// Stop сигнализирует о завершении
	Stop() error

	Name() string
}
