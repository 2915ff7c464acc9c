package models

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchHandle_StartsPending(t *testing.T) {
	handle, _ := NewFetchHandle()

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", handle.ID().String())
	assert.Equal(t, FetchStatusPending, handle.Result().Status)

	select {
	case <-handle.Done():
		t.Fatal("Done channel closed before completion")
	default:
	}
}

func TestFetchHandle_Complete(t *testing.T) {
	handle, complete := NewFetchHandle()

	complete(FetchStatusSuccess, "")

	select {
	case <-handle.Done():
	default:
		t.Fatal("Done channel not closed after completion")
	}

	result := handle.Result()
	assert.Equal(t, FetchStatusSuccess, result.Status)
	assert.Empty(t, result.Message)
}

func TestFetchHandle_CompleteIsExactlyOnce(t *testing.T) {
	handle, complete := NewFetchHandle()

	complete(FetchStatusFailure, "backend unreachable")
	complete(FetchStatusSuccess, "late completion must be ignored")

	result := handle.Result()
	assert.Equal(t, FetchStatusFailure, result.Status)
	assert.Equal(t, "backend unreachable", result.Message)
}

func TestFetchHandle_ConcurrentCompletion(t *testing.T) {
	handle, complete := NewFetchHandle()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			complete(FetchStatusSuccess, "")
		}()
	}
	wg.Wait()

	assert.Equal(t, FetchStatusSuccess, handle.Result().Status)
}

func TestFetchHandle_Await(t *testing.T) {
	handle, complete := NewFetchHandle()

	go func() {
		time.Sleep(10 * time.Millisecond)
		complete(FetchStatusSuccess, "")
	}()

	result, err := handle.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FetchStatusSuccess, result.Status)
}

func TestFetchHandle_AwaitCancelled(t *testing.T) {
	handle, _ := NewFetchHandle()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	result, err := handle.Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, FetchStatusPending, result.Status)
}
