/* Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 */
package s3store

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/gregjones/httpcache/test"
)

// the bucket is read from the environment rather than internal to avoid an
// import cycle with internal's cached http client
const testBucketEnvVar = "DOUBLESLEAGUE_TEST_BUCKET"

func testBucket() string {
	if b := os.Getenv(testBucketEnvVar); b != "" {
		return b
	}
	return "bopmatic-doublesleague-prod"
}

func TestS3Store(t *testing.T) {
	cache := New(context.Background(), testBucket(), "test", false, true)
	err := cache.Init()
	if err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			testBucket(), err))
	}

	test.Cache(t, cache)
}

func TestS3StoreWithGzip(t *testing.T) {
	cache := New(context.Background(), testBucket(), "test", true, true)
	err := cache.Init()
	if err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			testBucket(), err))
	}

	test.Cache(t, cache)
}

func TestObjectKey(t *testing.T) {
	plain := New(context.Background(), "bucket", "league", false, false)
	gz := New(context.Background(), "bucket", "league", true, false)

	cases := []struct {
		c    *Cache
		key  string
		want string
	}{
		{plain, "roster", "/league/roster"},
		{plain, "session/0b7c", "/league/session/0b7c"},
		{gz, "roster", "/league/roster.gz"},
	}
	for _, c := range cases {
		if got := c.c.objectKey(c.key); got != c.want {
			t.Errorf("objectKey(%q): got %q want %q", c.key, got, c.want)
		}
	}

	hashed := plain.objectKey("https://example.com/signups?event=3")
	if !strings.HasPrefix(hashed, "/league/") || len(hashed) != len("/league/")+32 {
		t.Errorf("url key should be hashed: %q", hashed)
	}
	if plain.objectKey("../escape") == "/escape" {
		t.Errorf("relative keys must not escape the prefix")
	}
}
