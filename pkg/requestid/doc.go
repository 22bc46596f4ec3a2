// Package requestid attaches a correlation id to each inbound request and
// propagates it to logs and to outbound API calls.
//
// Middleware accepts a client-supplied X-Request-ID when it is at most 128
// characters of [a-zA-Z0-9_-], otherwise it generates a UUID. LoggerExtractor
// plugs the id into pkg/logger, and Transport copies it onto requests made with
// the request context.
//
//	r.Use(requestid.Middleware)
//	client := &http.Client{Transport: &requestid.Transport{}}
package requestid
