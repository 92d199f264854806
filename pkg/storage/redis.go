package storage

import (
	"context"
	"encoding/json"
	"time"

	"perfumeHelper/pkg/utils"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	base "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const maxPingTime = time.Minute

type RedisClient struct {
	baseClient *base.Client
}

func NewClient(cfg *RedisConfig) (*RedisClient, error) {
	err := cfg.Validate()
	if err.HasErrors() {
		return nil, err
	}

	rdb := base.NewClient(&base.Options{
		Addr:     cfg.Addr,
		Password: cfg.Pass,
		DB:       cfg.DB,
	})

	redisCheckErr := checkRedis(rdb)
	if redisCheckErr != nil {
		logrus.Errorf("failed to ping redis %q", cfg.Addr)
		return nil, redisCheckErr
	}

	logrus.Infof("ping to redis %q is successful", cfg.Addr)
	return &RedisClient{baseClient: rdb}, nil
}

func checkRedis(cl *base.Client) error {
	logrus.Infof("will ping redis")
	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		status := cl.Ping(ctx)
		err := status.Err()
		if err != nil {
			logrus.Errorf("Failed to connect to redis: %v", err)
			return err
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxPingTime

	err := backoff.Retry(operation, b)
	if err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}

	return nil
}

func (c *RedisClient) Read(ctx context.Context, key string) (raw []byte, found bool, err error) {
	log := logrus.WithContext(ctx)

	val, err := c.baseClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, base.Nil) {
			log.Debugf("nothing found in redis under key %q", key)
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to get data from redis under key %q", key)
	}

	if isLoggable(ctx) {
		log.Debugf("successfully read data %q from redis under key %q", string(val), key)
	} else {
		log.Debugf("successfully read data from redis under key %q", key)
	}

	return val, true, nil
}

func (c *RedisClient) Write(ctx context.Context, key string, raw []byte, exp time.Duration) error {
	log := logrus.WithContext(ctx)

	err := c.baseClient.Set(ctx, key, raw, exp).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to write data to redis under key %q", key)
	}

	if isLoggable(ctx) {
		log.Debugf("wrote data %q to redis under key %q", string(raw), key)
	} else {
		log.Debugf("wrote hidden data to redis under key %q", key)
	}

	return nil
}

func (c *RedisClient) Delete(ctx context.Context, key string) error {
	log := logrus.WithContext(ctx)

	err := c.baseClient.Del(ctx, key).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to delete data from redis under key %q", key)
	}

	log.Debugf("deleted data from redis under key %q", key)
	return nil
}

func (c *RedisClient) Load(ctx context.Context, key string, target interface{}) (found bool, err error) {
	rawData, found, err := c.Read(ctx, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to read data from storage")
	}

	if !found {
		return false, nil
	}

	return true, unmarshal(ctx, rawData, target)
}

func (c *RedisClient) Save(ctx context.Context, key string, data interface{}, validity time.Duration) error {
	rawBytes, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %q to json", utils.GetType(data))
	}

	return c.Write(ctx, key, rawBytes, validity)
}

func (c *RedisClient) Close() error {
	return c.baseClient.Close()
}

func unmarshal(ctx context.Context, rawData []byte, target interface{}) error {
	targetType := utils.GetType(target)
	logrus.WithContext(ctx).Debugf("will load %q", targetType)

	err := json.Unmarshal(rawData, target)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %s to %q", string(rawData), targetType)
	}

	return nil
}
