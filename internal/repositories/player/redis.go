package player

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/greenvalley/rpg-core/internal/entities"
	"github.com/greenvalley/rpg-core/internal/errors"
	"github.com/greenvalley/rpg-core/internal/pkg/clock"
	redisclient "github.com/greenvalley/rpg-core/internal/redis"
)

const (
	playerKeyPrefix = "player:"

	errPlayerNil     = "player cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.Player.ID

	now := r.clock.Now().Unix()
	input.Player.SchemaVersion = entities.CurrentSchemaVersion
	input.Player.Version = 1
	input.Player.CreatedAt = now
	input.Player.UpdatedAt = now

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	set, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}
	if !set {
		return nil, errors.AlreadyExistsf("player with ID %s already exists", input.Player.ID)
	}

	return &CreateOutput{Player: input.Player}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := r.client.Get(ctx, playerKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var p entities.Player
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player data")
	}

	return &GetOutput{Player: &p}, nil
}

// Update performs an optimistic check-and-set: the write only lands when the
// stored version still matches the version the caller loaded.
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.Player.ID

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("player with ID %s not found", input.Player.ID)
			}
			return errors.Wrapf(err, "failed to read player")
		}

		var stored entities.Player
		if err := json.Unmarshal([]byte(current), &stored); err != nil {
			return errors.Wrapf(err, "failed to unmarshal stored player")
		}
		if stored.Version != input.Player.Version {
			return errors.Abortedf("player %s version %d is stale (stored %d)",
				input.Player.ID, input.Player.Version, stored.Version)
		}

		input.Player.Version++
		input.Player.UpdatedAt = r.clock.Now().Unix()

		data, err := json.Marshal(input.Player)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal player data")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}, key)
	if err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Abortedf("player %s was modified concurrently", input.Player.ID)
		}
		if errors.GetCode(err) != errors.CodeInternal {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to update player")
	}

	return &UpdateOutput{Player: input.Player}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	deleted, err := r.client.Del(ctx, playerKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete player")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("player with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
