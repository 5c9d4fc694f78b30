// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Transport records duration and cache usage of every request made to one
// remote service.
type Transport struct {
	Base    http.RoundTripper
	service string
	metrics Provider
}

func NewTransport(service string, base http.RoundTripper, metrics Provider) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, service: service, metrics: metrics}
}

func (t *Transport) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	start := time.Now()
	resp, err = t.Base.RoundTrip(req)
	elapsed := float64(time.Since(start)) / float64(time.Second)
	// throttled request cancelled or connection error
	if resp == nil && err != nil {
		return resp, err
	}
	handler := NormalizePath(req.URL.Path)
	statusCode := strconv.Itoa(resp.StatusCode)
	t.metrics.ObserveRequestDuration(t.service, req.Method, handler, statusCode, elapsed)

	if resp.Header.Get("X-From-Cache") == "1" {
		t.metrics.IncreaseCacheHits(t.service, req.Method, handler)
	} else {
		t.metrics.IncreaseCacheMisses(t.service, req.Method, handler)
	}

	return resp, err
}

func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// NormalizePath replaces the numeric segments of a request path with ":id" so that
// label cardinality does not grow with the number of migrated issues.
func NormalizePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		base := segment
		if dot := strings.IndexByte(segment, '.'); dot > 0 {
			base = segment[:dot]
		}
		if _, err := strconv.Atoi(base); err == nil {
			segments[i] = ":id" + segment[len(base):]
		}
	}
	return strings.Join(segments, "/")
}
