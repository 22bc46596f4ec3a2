// Package cardapi is the HTTP client for the remote card REST API.
//
// Every response is wrapped in an envelope {"status", "message", "data"}; the
// client unwraps data into svc/card types. Non-2xx answers become *APIError
// carrying the envelope message, and a 404 matches ErrNotFound.
//
// Reads (List, Get) are retried on transport failures and on 408, 425, 429 and
// 5xx answers using the configured BackoffStrategy. Writes (Create, Update,
// Delete) are sent exactly once.
//
//	api, err := cardapi.New("https://sii-test-api.onrender.com/api",
//		cardapi.WithTimeout(10*time.Second),
//		cardapi.WithMaxRetries(2),
//		cardapi.WithLogger(log),
//	)
//	cards, err := api.List(ctx)
//
// The default transport forwards the request id from ctx (see pkg/requestid).
package cardapi
