package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"github.com/lexishift/lexishift"
)

func TestRedisGetSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisFromClient(db, time.Hour, "")

	mock.ExpectSet("lexishift:key", "value", time.Hour).SetVal("OK")
	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	mock.ExpectGet("lexishift:key").SetVal("value")
	got, ok := c.Get("key")
	if !ok || got != "value" {
		t.Errorf("Get = (%q, %v)", got, ok)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRedisGetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisFromClient(db, 0, "")

	mock.ExpectGet("lexishift:absent").RedisNil()
	if _, ok := c.Get("absent"); ok {
		t.Error("missing key reported a hit")
	}
}

func TestRedisGetErrorDegradesToMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisFromClient(db, 0, "")

	mock.ExpectGet("lexishift:key").SetErr(errors.New("connection reset"))
	if _, ok := c.Get("key"); ok {
		t.Error("backend error must degrade to a miss")
	}
}

func TestRedisSetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisFromClient(db, 0, "")

	mock.ExpectSet("lexishift:key", "value", time.Duration(0)).SetErr(errors.New("readonly replica"))
	err := c.Set("key", "value")

	var cacheErr *lexishift.CacheError
	if !errors.As(err, &cacheErr) {
		t.Fatalf("expected CacheError, got %v", err)
	}
}

func TestRedisCustomPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisFromClient(db, 0, "batch42:")

	mock.ExpectGet("batch42:key").SetVal("value")
	if got, ok := c.Get("key"); !ok || got != "value" {
		t.Errorf("Get = (%q, %v)", got, ok)
	}
}

func TestRedisEntries(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisFromClient(db, 0, "")

	mock.ExpectScan(0, "lexishift:*", 0).SetVal([]string{"lexishift:a", "lexishift:b"}, 0)
	mock.ExpectGet("lexishift:a").SetVal("1")
	mock.ExpectGet("lexishift:b").SetVal("2")

	entries, err := c.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 || entries["a"] != "1" || entries["b"] != "2" {
		t.Errorf("Entries = %v", entries)
	}
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	_, err := NewRedis(RedisConfig{URL: "not a url"})
	var cacheErr *lexishift.CacheError
	if !errors.As(err, &cacheErr) {
		t.Fatalf("expected CacheError, got %v", err)
	}
}
