// Package httpclient implements the DataFetcher and Downloader ports over
// a real *http.Client.
//
// Fetches return the response body and metadata whatever the status code;
// HTTP-level failures (4xx, 5xx) are data for the caller, only failures at
// the network layer become *ports.TransportError. Context cancellation and
// deadline expiry surface as *ports.TransportError wrapping the cause, so
// errors.Is(err, context.Canceled) and errors.Is(err, context.DeadlineExceeded)
// keep working after wrapping.
//
// Downloads are materialized under a per-client temporary directory that
// Close removes.
package httpclient
