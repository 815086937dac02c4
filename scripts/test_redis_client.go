package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/frontandrew/garage/internal/domain"
	"github.com/frontandrew/garage/internal/pkg/config"
	"github.com/frontandrew/garage/internal/pkg/redis"
)

// Проверка Redis кэша API на реальном сервере: подключение, запись
// и чтение записи клиента, истечение TTL.
func main() {
	fmt.Println("=========================================")
	fmt.Println("Garage cache check")
	fmt.Println("=========================================")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := redis.NewClient(ctx, &cfg.Redis)
	if err != nil {
		fmt.Printf("❌ Failed to connect to Redis at %s: %v\n", cfg.Redis.Address(), err)
		os.Exit(1)
	}
	defer client.Close()

	fmt.Printf("✅ Connected to Redis at %s\n\n", cfg.Redis.Address())

	// Test 1: PING
	fmt.Println("Test 1: PING")
	if err := client.Ping(ctx); err != nil {
		fmt.Printf("❌ PING failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ PING successful")
	fmt.Println()

	// Test 2: запись клиента в формате кэширующего репозитория
	fmt.Println("Test 2: SET/GET client entry")
	key := "client:check"
	phone := "0123456789"
	want := domain.Client{ID: -1, LastName: "Check", FirstName: "Cache", Phone: &phone}

	data, err := json.Marshal(want)
	if err != nil {
		fmt.Printf("❌ Marshal failed: %v\n", err)
		os.Exit(1)
	}
	if err := client.Set(ctx, key, data, time.Minute); err != nil {
		fmt.Printf("❌ SET failed: %v\n", err)
		os.Exit(1)
	}

	raw, err := client.Get(ctx, key)
	if err != nil {
		fmt.Printf("❌ GET failed: %v\n", err)
		os.Exit(1)
	}
	var got domain.Client
	if err := json.Unmarshal(raw, &got); err != nil || got.LastName != want.LastName || got.Phone == nil {
		fmt.Printf("❌ GET returned unexpected entry: %s\n", raw)
		os.Exit(1)
	}
	fmt.Printf("✅ %s = %s\n\n", key, raw)

	// Test 3: отсутствующий ключ
	fmt.Println("Test 3: cache miss")
	if _, err := client.Get(ctx, "client:missing"); !errors.Is(err, redis.ErrCacheMiss) {
		fmt.Printf("❌ Expected cache miss, got: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Missing key reported as cache miss")
	fmt.Println()

	// Test 4: TTL
	fmt.Println("Test 4: TTL expiration")
	if err := client.Set(ctx, key, data, time.Second); err != nil {
		fmt.Printf("❌ SET failed: %v\n", err)
		os.Exit(1)
	}
	time.Sleep(1500 * time.Millisecond)
	if _, err := client.Get(ctx, key); !errors.Is(err, redis.ErrCacheMiss) {
		fmt.Printf("❌ Entry should have expired, got: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Entry expired after TTL")
	fmt.Println()

	fmt.Println("=========================================")
	fmt.Println("✅ All cache checks passed")
	fmt.Println("=========================================")
}
