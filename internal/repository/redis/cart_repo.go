package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
	"github.com/shuvajitmaitra/glamor-gallery/internal/cfg"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/internal/repository/redis/converter"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/clients"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/logger"
)

// CartRepo хранит корзину сессии одним значением под ключом
// cart:<session_id>. Последовательность позиций сериализуется как есть,
// порядок и уникальность ключей позиций сохраняются.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCart возвращает корзину сессии. Отсутствие ключа — пустая корзина,
// не ошибка: новая сессия начинается с пустого состояния.
func (c *CartRepo) GetCart(ctx context.Context, sessionID string) (domain.CartState, error) {
	data, err := c.client.Client.Get(ctx, c.cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return domain.CartState{}, nil
		}

		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return domain.CartState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return domain.CartState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToDomain(model), nil
}

// SaveCart полностью перезаписывает корзину сессии и продлевает её TTL.
func (c *CartRepo) SaveCart(ctx context.Context, sessionID string, state domain.CartState) error {
	data, err := json.Marshal(c.conv.ToRedisModel(state))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.cartKey(sessionID), data, c.cfg.CartTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) DeleteCart(ctx context.Context, sessionID string) error {
	if err := c.client.Client.Del(ctx, c.cartKey(sessionID)).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// cartKey возвращает Redis-ключ корзины сессии
func (c *CartRepo) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
