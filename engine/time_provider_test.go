package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Fatalf("Expected initial time %v, got %v", start, mock.Now())
	}

	got := mock.Advance(3 * time.Second)
	if want := start.Add(3 * time.Second); !got.Equal(want) || !mock.Now().Equal(want) {
		t.Errorf("Expected %v after advance, got %v", want, got)
	}

	// Negative advances and backwards jumps are ignored
	mock.Advance(-time.Second)
	mock.SetTime(start)
	if want := start.Add(3 * time.Second); !mock.Now().Equal(want) {
		t.Errorf("Expected clock to stay at %v, got %v", want, mock.Now())
	}

	later := start.Add(time.Minute)
	mock.SetTime(later)
	if !mock.Now().Equal(later) {
		t.Errorf("Expected %v after SetTime, got %v", later, mock.Now())
	}
}
