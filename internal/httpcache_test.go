/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gregjones/httpcache"
)

func TestCachingClient(t *testing.T) {
	var hits int32
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		gotUA = r.Header.Get("User-Agent")
		// origin asks not to be cached; the client overrides it
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte("<html>signups</html>"))
	}))
	defer ts.Close()

	client := newCachingClient(httpcache.NewMemoryCache(),
		http.DefaultTransport, 5*time.Minute)

	for i := 0; i < 3; i++ {
		resp, err := client.Get(ts.URL)
		if err != nil {
			t.Fatalf("get %v: %v", i, err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("read %v: %v", i, err)
		}
		if string(data) != "<html>signups</html>" {
			t.Errorf("unexpected body %q", data)
		}
		if i > 0 && resp.Header.Get(httpcache.XFromCache) != "1" {
			t.Errorf("response %v not served from cache", i)
		}
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("expected 1 origin hit, got %v", n)
	}
	if gotUA != UserAgent {
		t.Errorf("user agent: got %q want %q", gotUA, UserAgent)
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-03-04", "2025-03-04", false},
		{"03/04/2025", "2025-03-04", false},
		{"March 4, 2025", "2025-03-04", false},
		{"", "", true},
		{"not a date", "", true},
	}
	for _, c := range cases {
		got, err := NormalizeDate(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("NormalizeDate(%q): err=%v wantErr=%v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("NormalizeDate(%q): got %q want %q", c.in, got, c.want)
		}
	}
}

func TestParseDateOrZero(t *testing.T) {
	for _, s := range []string{"", "null"} {
		d, err := ParseDateOrZero(s)
		if err != nil || !d.IsZero() {
			t.Errorf("ParseDateOrZero(%q): got %v, %v", s, d, err)
		}
	}
}
