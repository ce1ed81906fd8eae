package redisclient

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	// redisClient 是全局Redis客户端实例
	redisClient *redis.Client

	// 保护全局变量的互斥锁
	mutex sync.RWMutex

	// redisEnabled 标记Redis是否可用
	redisEnabled bool
)

// InitRedis 初始化Redis连接
func InitRedis(addr, password string, db int) error {
	mutex.Lock()
	defer mutex.Unlock()

	// 关闭之前的连接（如果存在）
	if redisClient != nil {
		redisClient.Close()
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := redisClient.Ping(ctx).Result()
	if err != nil {
		log.Printf("Redis连接失败: %v", err)
		redisEnabled = false
		return err
	}

	log.Println("Redis连接成功")
	redisEnabled = true
	return nil
}

// IsRedisEnabled 检查Redis是否启用
func IsRedisEnabled() bool {
	mutex.RLock()
	defer mutex.RUnlock()
	return redisEnabled && redisClient != nil
}

// CloseRedis 关闭Redis连接
func CloseRedis() error {
	mutex.Lock()
	defer mutex.Unlock()

	if redisClient != nil {
		err := redisClient.Close()
		redisClient = nil
		redisEnabled = false
		return err
	}
	return nil
}

// CacheJSON 把对象序列化后写入缓存
// Redis不可用时静默跳过，缓存失败不影响请求本身
func CacheJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	if !IsRedisEnabled() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("缓存序列化失败 %s: %v", key, err)
		return
	}

	mutex.RLock()
	client := redisClient
	mutex.RUnlock()

	if err := client.Set(ctx, key, data, expiration).Err(); err != nil {
		log.Printf("写入缓存失败 %s: %v", key, err)
	}
}

// GetJSON 从缓存读取并反序列化到 dest，命中返回 true
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if !IsRedisEnabled() {
		return false
	}

	mutex.RLock()
	client := redisClient
	mutex.RUnlock()

	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("读取缓存失败 %s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("缓存反序列化失败 %s: %v", key, err)
		return false
	}

	return true
}

// Invalidate 删除指定的缓存键
func Invalidate(ctx context.Context, keys ...string) {
	if !IsRedisEnabled() {
		return
	}

	mutex.RLock()
	client := redisClient
	mutex.RUnlock()

	if err := client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("删除缓存失败 %v: %v", keys, err)
	}
}
