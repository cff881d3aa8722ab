package storage

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryReadEmpty(t *testing.T) {
	m := NewMemory()

	data, ok, err := m.Read(context.Background())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ok {
		t.Error("Read() on fresh medium reported ok=true")
	}
	if data != nil {
		t.Errorf("Read() on fresh medium returned data %q", data)
	}
}

func TestMemoryWriteRead(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Write(ctx, []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, ok, err := m.Read(ctx)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !ok {
		t.Fatal("Read() after Write() reported ok=false")
	}
	if string(data) != `[{"id":"a"}]` {
		t.Errorf("Read() = %q, want the written payload", data)
	}
}

func TestMemoryWriteEmptyPayloadStillPresent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Write(ctx, []byte{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	_, ok, err := m.Read(ctx)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !ok {
		t.Error("Read() after writing empty payload reported ok=false, want present")
	}
}

func TestMemoryErase(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Write(ctx, []byte("payload")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := m.Erase(ctx); err != nil {
		t.Fatalf("Erase() error = %v", err)
	}

	_, ok, err := m.Read(ctx)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ok {
		t.Error("Read() after Erase() reported ok=true")
	}
}

func TestMemoryReadReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Write(ctx, []byte("original")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, _, err := m.Read(ctx)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	data[0] = 'X'

	again, _, err := m.Read(ctx)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(again) != "original" {
		t.Errorf("Read() = %q after mutating a previous result, want %q", again, "original")
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.Write(ctx, []byte("payload"))
		}()
		go func() {
			defer wg.Done()
			_, _, _ = m.Read(ctx)
		}()
	}
	wg.Wait()

	data, ok, err := m.Read(ctx)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !ok || string(data) != "payload" {
		t.Errorf("Read() after concurrent writes = %q (ok=%v), want %q", data, ok, "payload")
	}
}
