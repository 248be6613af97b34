package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

const maxCleanupRetries = 3
const cleanupRetryDelay = 2 * time.Minute

// CleanupExpiredFiles removes a generated report file once it is older than
// the TTL.
func CleanupExpiredFiles(filePath string, ttl time.Duration) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error checking file: %v", err)
	}

	if time.Since(info.ModTime()) > ttl {
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("error deleting expired file: %v", err)
		}
		log.Printf("expired report %s deleted", filePath)
	}
	return nil
}

// CleanupExpiredReports walks the generated-report directory and purges files
// past the TTL. Cached report keys in redis carry their own TTL, so here we
// only prune stray keys left behind by aborted batches.
func CleanupExpiredReports(fileTTL time.Duration, redisClient *redis.Client) error {
	files, err := os.ReadDir("./public/files")
	if err != nil {
		return fmt.Errorf("error reading files directory: %v", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		filePath := fmt.Sprintf("./public/files/%s", file.Name())
		if err := CleanupExpiredFiles(filePath, fileTTL); err != nil {
			log.Println("error cleaning up file:", err)
		}
	}

	ctx := context.Background()
	iter := redisClient.Scan(ctx, 0, "vendor:import:report:*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		ttl, err := redisClient.TTL(ctx, key).Result()
		if err != nil {
			continue
		}
		if ttl < 0 { // no expiry set, should not happen for report keys
			if err := redisClient.Del(ctx, key).Err(); err != nil {
				log.Println("error deleting stray report key:", err)
			}
		}
	}
	return iter.Err()
}

// RunScheduledCleanup runs cleanup daily at 1 AM with retries.
func RunScheduledCleanup(redisClient *redis.Client) {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled cleanup task...")

		for retries := 0; retries < maxCleanupRetries; retries++ {
			err := CleanupExpiredReports(24*time.Hour, redisClient)
			if err == nil {
				log.Println("cleanup successful")
				return
			}
			log.Printf("cleanup attempt %d failed: %v", retries+1, err)
			time.Sleep(cleanupRetryDelay)
		}
		log.Println("cleanup giving up until next schedule")
	})

	c.Start()
}
