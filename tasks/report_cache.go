package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vendor-import-backend/vendors/services"
)

const reportTTL = 24 * time.Hour

// ReportCache keeps finished batch reports in redis so pollers get the full
// row-level report cheaply; the database keeps only the counters and row logs
// for the long term.
type ReportCache struct {
	client *redis.Client
}

func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

func reportKey(batchID uuid.UUID) string {
	return fmt.Sprintf("vendor:import:report:%s", batchID)
}

func (c *ReportCache) SaveReport(ctx context.Context, batchID uuid.UUID, report *services.ImportReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return c.client.Set(ctx, reportKey(batchID), data, reportTTL).Err()
}

// GetReport returns (nil, nil) when the report has expired or was never cached.
func (c *ReportCache) GetReport(ctx context.Context, batchID uuid.UUID) (*services.ImportReport, error) {
	data, err := c.client.Get(ctx, reportKey(batchID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var report services.ImportReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached report: %w", err)
	}
	return &report, nil
}
