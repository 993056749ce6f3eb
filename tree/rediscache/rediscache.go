/*
Package rediscache caches fetched trees in a redis DB so that a
tree delivered once by the model-serving backend can be reused
across invocations in the same demo session.
*/
package rediscache

import (
	"bytes"
	"context"
	"fmt"

	"github.com/exploratory-ai/treelight/tree"
	treejson "github.com/exploratory-ai/treelight/tree/json"
	"gopkg.in/redis.v5"
)

/*
Cache stores and retrieves whole trees on a redis DB under a
configurable key prefix, serializing them with the tree/json
codec.
*/
type Cache struct {
	rc     *redis.Client
	prefix string
}

// New builds a Cache backed by the given redis client using the
// given key prefix.
func New(rc *redis.Client, prefix string) *Cache {
	return &Cache{rc, prefix}
}

/*
Store takes a context, a key and a tree and stores the tree on
redis under the key. It returns an error if the tree cannot be
encoded or stored, or if the context expires first.
*/
func (c *Cache) Store(ctx context.Context, key string, t *tree.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	err := treejson.WriteTree(t, &buf)
	if err != nil {
		return fmt.Errorf("caching tree %q: %v", key, err)
	}
	_, err = c.rc.Set(c.keyFor(key), buf.Bytes(), 0).Result()
	if err != nil {
		return fmt.Errorf("caching tree %q in redis: %v", key, err)
	}
	return nil
}

/*
Fetch takes a context and a key and returns the tree cached under
the key, or nil if no tree is cached there, or an error if the
cached payload cannot be retrieved or decoded.
*/
func (c *Cache) Fetch(ctx context.Context, key string) (*tree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := c.rc.Get(c.keyFor(key)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving cached tree %q: %v", key, err)
	}
	t, err := treejson.ReadTree(bytes.NewReader([]byte(data)))
	if err != nil {
		return nil, fmt.Errorf("retrieving cached tree %q: %v", key, err)
	}
	return t, nil
}

/*
Drop takes a context and a key and removes the tree cached under
the key, if any. It returns an error if the deletion cannot be
performed.
*/
func (c *Cache) Drop(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.rc.Del(c.keyFor(key)).Result()
	if err != nil {
		return fmt.Errorf("dropping cached tree %q from redis: %v", key, err)
	}
	return nil
}

func (c *Cache) keyFor(key string) string {
	return fmt.Sprintf("%s:%s", c.prefix, key)
}
