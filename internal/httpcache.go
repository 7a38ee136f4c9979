/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/doublesleague/s3store"
)

// NewCachedHttpClient returns an http.Client whose responses are cached in
// the given S3 bucket under the "webcache" prefix. If the bucket cannot be
// reached it falls back to an in-memory cache. Origin cache headers are
// rewritten so every response is kept for maxAge.
func NewCachedHttpClient(ctx context.Context, bucket string,
	maxAge time.Duration) *http.Client {

	var cache httpcache.Cache
	s3c := s3store.New(ctx, bucket, "webcache", true, true)
	if err := s3c.Init(); err != nil {
		log.Printf("httpcache: warning failed to init S3 cache: %v; falling back to in-memory cache", err)
		cache = httpcache.NewMemoryCache()
	} else {
		cache = s3c
	}

	return newCachingClient(cache, http.DefaultTransport, maxAge)
}

func newCachingClient(cache httpcache.Cache, rt http.RoundTripper,
	maxAge time.Duration) *http.Client {

	hc := httpcache.NewTransport(cache)
	// sign-up pages rarely send cache headers, so force our own TTL
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: rt,
		Request: func(req *http.Request) {
			req.Header.Set("User-Agent", UserAgent)
		},
		Response: func(resp *http.Response) error {
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			resp.Header.Set("Cache-Control",
				fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don't stomp on the caller's original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
