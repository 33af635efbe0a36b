// Package rpcclient is the JSON-RPC gateway to a Bitcoin-family node.
package rpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/ratelimit"
)

// RPCError is returned for every failed call: transport failure, non-success
// HTTP status, an error object in the response envelope, or cancellation.
type RPCError struct {
	Method string
	Reason string
	Err    error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc %s: %s", e.Method, e.Reason)
}

func (e *RPCError) Unwrap() error {
	return e.Err
}

// ObservedClient issues raw JSON-RPC calls with metrics, rate limiting and a per-call timeout.
// It never retries.
type ObservedClient struct {
	client     RawClient
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
	timeout    time.Duration
}

// NewObservedClient wraps client. rps <= 0 disables rate limiting; timeout <= 0 disables the per-call timeout.
func NewObservedClient(client RawClient, rpcMetrics RPCMetrics, rps int, timeout time.Duration) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
		timeout:    timeout,
	}
}

// Call sends method with params and returns the raw result field.
func (c *ObservedClient) Call(ctx context.Context, method string, params ...any) (result json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(method, err, started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, &RPCError{Method: method, Reason: "canceled", Err: err}
	}

	rawParams := make([]json.RawMessage, 0, len(params))
	for i, p := range params {
		raw, mErr := json.Marshal(p)
		if mErr != nil {
			err = &RPCError{Method: method, Reason: fmt.Sprintf("marshal param %d", i), Err: mErr}
			return nil, err
		}
		rawParams = append(rawParams, raw)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	type response struct {
		result json.RawMessage
		err    error
	}
	done := make(chan response, 1)
	go func() {
		c.limiter.Take()
		res, reqErr := c.client.RawRequest(method, rawParams)
		done <- response{result: res, err: reqErr}
	}()

	select {
	case <-ctx.Done():
		err = &RPCError{Method: method, Reason: "canceled", Err: ctx.Err()}
		return nil, err
	case res := <-done:
		if res.err != nil {
			err = classify(method, res.err)
			return nil, err
		}
		return res.result, nil
	}
}

func classify(method string, err error) *RPCError {
	var nodeErr *btcjson.RPCError
	if errors.As(err, &nodeErr) {
		return &RPCError{
			Method: method,
			Reason: fmt.Sprintf("node error %d: %s", nodeErr.Code, nodeErr.Message),
			Err:    err,
		}
	}
	return &RPCError{Method: method, Reason: err.Error(), Err: err}
}

// Dial builds a btcd HTTP POST mode client for rawURL.
func Dial(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host + parsed.Path,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}
	return rpcclient.New(cfg, nil)
}
