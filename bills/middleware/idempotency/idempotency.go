// Package idempotency makes the tagged mutation endpoints safe to retry: the
// first request under a key runs, duplicates replay its cached response, and
// a duplicate with a different body is rejected.
package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/bills/model"
)

const IdempotencyHeader = "X-Idempotency-Key"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := requestBodyHash(req)
	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := IdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if !errors.Is(cacheErr, cache.Miss) {
			rlog.Error("idempotency cache lookup failed", "key", key, "error", cacheErr)
			return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
		}

		// First request under this key.
		if err := markProcessing(req.Context(), cacheKey, bodyHash); err != nil {
			return middleware.Response{Err: err}
		}

		response := next(req)
		if response.Err != nil {
			// Clear the entry so the client can retry the failed call.
			clearEntry(req.Context(), cacheKey)
		} else {
			markCompleted(req.Context(), cacheKey, bodyHash, response)
		}
		return response
	}

	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{Err: &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "idempotency key conflict: request body does not match previous request",
		}}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("duplicate request while original is in flight", "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}}
	case statusCompleted:
		return replayResponse(req, next, entry, key)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(IdempotencyHeader))
	}

	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	return key, nil
}

// requestBodyHash fingerprints the request payload for conflict detection.
// Returns "" when there is no payload, which disables the check.
func requestBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body for hashing", "error", err)
		return ""
	}
	return hashBody(body)
}

func hashBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])
}

// replayResponse rebuilds the cached payload into the endpoint's response
// type. A corrupted cache entry falls through to a fresh call.
func replayResponse(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		if responseType := req.Data().API.ResponseType; responseType != nil {
			value := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(entry.Response, value); err == nil {
				rlog.Info("returning cached response", "key", key)
				return middleware.Response{Payload: value}
			}
			rlog.Error("failed to unmarshal cached response", "key", key)
		}
	}

	return next(req)
}

func markProcessing(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string) *errs.Error {
	entry := model.IdempotencyCacheEntry{
		Status:          statusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	}
	if err := IdempotencyCache.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

func markCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, response middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payload, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		entry.Response = payload
	}

	if err := IdempotencyCache.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache completed response", "error", err)
	}
}

func clearEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := IdempotencyCache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear idempotency entry", "error", err)
	}
}
