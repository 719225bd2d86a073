//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type ClickEvent struct {
	DeviceID  string    `json:"device_id"`
	PlaceID   string    `json:"place_id"`
	PlaceName string    `json:"place_name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Category  string    `json:"category"`
	Services  []string  `json:"services,omitempty"`
	ClickedAt time.Time `json:"clicked_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	deviceID := flag.String("device", "test-device", "Device id for the event")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Test event (East Harlem site)
	event := ClickEvent{
		DeviceID:  *deviceID,
		PlaceID:   "onpoint-east-harlem",
		PlaceName: "OnPoint NYC - East Harlem",
		Address:   "104 E 126th St, New York, NY 10035",
		Latitude:  40.8075,
		Longitude: -73.9370,
		Category:  "harm-reduction",
		Services:  []string{"naloxone", "syringe-exchange"},
		ClickedAt: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:interaction:click",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:interaction:click\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Device: %s\n", event.DeviceID)
	fmt.Printf("   Place: %s (%s)\n", event.PlaceName, event.PlaceID)
	fmt.Printf("   Coordinates: %.6f, %.6f\n", event.Latitude, event.Longitude)
	fmt.Printf("\nRun cmd/worker to see the event archived.\n")
}
