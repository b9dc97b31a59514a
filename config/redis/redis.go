package redis

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var Rdb *goredis.Client

const cacheTTL = 10 * time.Minute

func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Rdb = goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := Rdb.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unreachable, cache disabled: ", err)
		Rdb = nil
	}
}

func SetCache(ctx context.Context, key string, value interface{}) error {
	if Rdb == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Rdb.Set(ctx, key, raw, cacheTTL).Err()
}

/*
* Fetch key into out
* Returns false when the key is absent or the cache is disabled
 */
func GetCache(ctx context.Context, key string, out interface{}) (bool, error) {
	if Rdb == nil {
		return false, nil
	}
	raw, err := Rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, out)
}

func DeleteCache(ctx context.Context, key string) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Del(ctx, key).Err()
}
