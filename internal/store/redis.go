package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"atrack-svr/internal/codec"
	"atrack-svr/internal/observability"
)

var ctx = context.Background()
var rdb *redis.Client

func InitRedis(addr string, db int) error {
	rdb = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// WriteSeries appends one decoded record to the device's stream and mirrors
// the latest values into a hash for lookups. Fire-and-forget: errors are
// counted and logged via metrics, never returned to the protocol engine.
func WriteSeries(deviceID uint64, ts int64, values []codec.DecodedValue) {
	if rdb == nil {
		return
	}
	fields := make(map[string]interface{}, len(values)+1)
	fields["_ts"] = ts
	for _, v := range values {
		fields[v.Name] = fmt.Sprint(v.Value())
	}

	key := "ts:" + strconv.FormatUint(deviceID, 10)
	if err := rdb.XAdd(ctx, &redis.XAddArgs{Stream: key, Values: fields}).Err(); err != nil {
		observability.SinkErrors.WithLabelValues("redis").Inc()
		fmt.Printf("[ERROR] redis XADD %s: %v\n", key, err)
		return
	}

	last := "dev:" + strconv.FormatUint(deviceID, 10) + ":last"
	if err := rdb.HSet(ctx, last, fields).Err(); err != nil {
		observability.SinkErrors.WithLabelValues("redis").Inc()
		fmt.Printf("[ERROR] redis HSET %s: %v\n", last, err)
	}
}

// GetLastValues returns the most recent decoded values for a device, as
// written by WriteSeries.
func GetLastValues(deviceID uint64) map[string]string {
	if rdb == nil {
		return nil
	}
	out, err := rdb.HGetAll(ctx, "dev:"+strconv.FormatUint(deviceID, 10)+":last").Result()
	if err != nil {
		return nil
	}
	return out
}
