package tasks

import (
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StartImportWorker runs the asynq server that drains the imports queue.
// Concurrency is deliberately 1: batches against the same vendor master must
// not interleave.
func StartImportWorker(redisOpt asynq.RedisClientOpt, handler *ImportTaskHandler, logger *zap.Logger) {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 1,
		Queues: map[string]int{
			"imports": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.Handle(TypeVendorImport, handler)

	if err := srv.Run(mux); err != nil {
		logger.Fatal("Import worker failed", zap.Error(err))
	}
}
