package telemetry

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-kick/internal/testutil"
)

func TestNewScopeValidation(t *testing.T) {
	for _, size := range []int{0, -4, 3, 1000} {
		if _, err := NewScope(size); err == nil {
			t.Errorf("NewScope(%d): expected error", size)
		}
	}

	s, err := NewScope(DefaultScopeSize)
	if err != nil {
		t.Fatal(err)
	}
	if s.Cap() != 1024 || s.Len() != 0 {
		t.Fatalf("Cap=%d Len=%d", s.Cap(), s.Len())
	}
}

func TestScopeOrderAndDrop(t *testing.T) {
	s, _ := NewScope(8)

	if n := s.Write([]float64{1, 2, 3, 4, 5}); n != 5 {
		t.Fatalf("Write = %d, want 5", n)
	}

	dst := make([]float64, 3)
	if n := s.Read(dst); n != 3 {
		t.Fatalf("Read = %d, want 3", n)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{1, 2, 3}, 0)

	// 2 unread + 6 new fills the ring; the remaining 2 are dropped.
	if n := s.Write([]float64{6, 7, 8, 9, 10, 11, 12, 13}); n != 6 {
		t.Fatalf("Write into partially full ring = %d, want 6", n)
	}
	if s.Dropped() != 2 {
		t.Fatalf("Dropped() = %d, want 2", s.Dropped())
	}

	all := make([]float64, 16)
	n := s.Read(all)
	testutil.RequireSliceNearlyEqual(t, all[:n], []float64{4, 5, 6, 7, 8, 9, 10, 11}, 0)
	if s.Len() != 0 {
		t.Fatalf("Len() after drain = %d", s.Len())
	}
}

func TestScopeConcurrentProducerConsumer(t *testing.T) {
	s, _ := NewScope(64)

	const total = 20000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		block := make([]float64, 16)
		next := 0.0
		for next < total {
			for i := range block {
				block[i] = next + float64(i)
			}
			next += float64(s.Write(block))
		}
	}()

	got := make([]float64, 0, total)
	buf := make([]float64, 32)
	for len(got) < total {
		n := s.Read(buf)
		got = append(got, buf[:n]...)
	}
	wg.Wait()

	for i, v := range got {
		if v != float64(i) {
			t.Fatalf("sample %d = %v, order broken", i, v)
		}
	}
}

func TestScopePeak(t *testing.T) {
	s, _ := NewScope(16)
	s.Write([]float64{0.1, -0.7, 0.3})

	if p := s.Peak(make([]float64, 2)); p != 0.7 {
		t.Fatalf("Peak() = %v, want 0.7", p)
	}
	if s.Len() != 0 {
		t.Fatal("Peak should drain the ring")
	}
}

func TestMixDown(t *testing.T) {
	dst := make([]float64, 3)
	MixDown(dst, []float64{1, 0, -1}, []float64{0, 1, -1})
	testutil.RequireSliceNearlyEqual(t, dst, []float64{0.5, 0.5, -1}, 1e-15)
}

func TestLayerSnapshotFreezes(t *testing.T) {
	s := NewLayerSnapshot()
	if s.InProgress() || s.Len() != 0 {
		t.Fatal("new snapshot should be idle and empty")
	}

	s.Start()
	for i := 0; i < SnapshotLength+100; i++ {
		s.Record(float64(i), -float64(i), 0.5)
	}

	if s.InProgress() {
		t.Fatal("snapshot should stop when full")
	}
	if s.Len() != SnapshotLength {
		t.Fatalf("Len() = %d, want %d", s.Len(), SnapshotLength)
	}

	body := make([]float64, SnapshotLength+10)
	if n := s.CopyLayer(LayerBody, body); n != SnapshotLength {
		t.Fatalf("CopyLayer = %d", n)
	}
	if body[SnapshotLength-1] != -float64(SnapshotLength-1) {
		t.Fatalf("last body sample = %v", body[SnapshotLength-1])
	}

	s.Start()
	s.Record(9, 9, 9)
	if !s.InProgress() || s.Len() != 1 {
		t.Fatalf("restart failed: inProgress=%v len=%d", s.InProgress(), s.Len())
	}

	sub := make([]float64, 4)
	if n := s.CopyLayer(LayerSub, sub); n != 1 || sub[0] != 9 {
		t.Fatalf("CopyLayer after restart = %d %v", n, sub)
	}
	if n := s.CopyLayer(Layer(7), sub); n != 0 {
		t.Fatal("invalid layer should copy nothing")
	}
}

func TestLayerString(t *testing.T) {
	if LayerAttack.String() != "attack" || LayerSub.String() != "sub" || Layer(9).String() != "Layer(9)" {
		t.Fatal("unexpected layer names")
	}
}
