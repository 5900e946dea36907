package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hopeharbor/backend/pkg/queue"
	"github.com/hopeharbor/backend/pkg/storage"
)

// CleanupProcessor retries best-effort asset deletes that failed inline:
// replaced team photos and attachments of deleted records. Nothing
// user-facing waits on it.
type CleanupProcessor struct {
	s3     *storage.S3
	queue  *queue.Queue
	logger *zap.Logger
}

// NewCleanupProcessor creates an asset cleanup processor.
func NewCleanupProcessor(s3 *storage.S3, q *queue.Queue, logger *zap.Logger) *CleanupProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CleanupProcessor{s3: s3, queue: q, logger: logger}
}

// Process executes one cleanup job.
func (p *CleanupProcessor) Process(ctx context.Context, job *queue.Job) error {
	if job.Type != queue.JobTypeAssetCleanup {
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
	var payload queue.AssetCleanupPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if payload.Key == "" {
		return nil
	}
	if err := p.s3.Delete(ctx, payload.Key); err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	p.logger.Info("orphaned asset removed", zap.String("key", payload.Key), zap.String("reason", payload.Reason))
	return nil
}

// Run starts the worker loop: dequeue, process, retry on error.
func (p *CleanupProcessor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("cleanup worker stopping")
			return
		default:
		}

		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			p.logger.Warn("dequeue error", zap.Error(err))
			time.Sleep(queue.RetryBackoff)
			continue
		}
		if job == nil {
			continue
		}

		if err := p.Process(ctx, job); err != nil {
			p.logger.Error("cleanup job failed", zap.String("job_id", job.ID), zap.Error(err))
			if err := p.queue.Retry(ctx, job); err != nil {
				p.logger.Error("requeue failed", zap.String("job_id", job.ID), zap.Error(err))
			}
			time.Sleep(queue.RetryBackoff)
		}
	}
}
