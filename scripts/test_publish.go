//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/route-planner/internal/domain"
)

// Публикует тестовое событие истории маршрута и ждёт, пока воркер его подтвердит
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	profile := flag.String("profile", domain.DefaultProfileID, "Profile ID")
	group := flag.String("group", "route-history-workers", "Consumer group to watch")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие (강남역 → 서울역)
	event := domain.RouteHistoryEvent{
		ID:          uuid.NewString(),
		ProfileID:   *profile,
		Timestamp:   time.Now().UTC(),
		Origin:      "강남역",
		Destination: "서울역",
		TotalMin:    31.5,
		Modes:       []domain.Mode{domain.ModeWalk, domain.ModeSubway, domain.ModeWalk},
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamRouteHistory,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamRouteHistory)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.ID)
	fmt.Printf("   Profile: %s\n", event.ProfileID)

	fmt.Printf("\nWaiting for group %q to acknowledge...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for acknowledgement")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, domain.StreamRouteHistory).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Name != *group {
					continue
				}
				if g.Pending == 0 && g.LastDeliveredID >= result {
					fmt.Printf("Event stored (last delivered %s)\n", g.LastDeliveredID)
					return
				}
			}
		}
	}
}
