package shaping

import (
	"testing"

	"github.com/quenchtext/quench/internal/engine/segment"
)

func TestMonoShaperASCII(t *testing.T) {
	s := NewMonoShaper()
	face := Face{Name: "mono", Size: 10}
	run := s.ShapeRun("abc", segment.NewRange(0, 3), face, LeftToRight)

	if len(run.Clusters) != 3 {
		t.Fatalf("expected 3 clusters, got %d", len(run.Clusters))
	}
	for i, c := range run.Clusters {
		if c.Advance != 6 {
			t.Errorf("cluster %d: expected advance 6, got %v", i, c.Advance)
		}
		if c.Range.Start != i || c.Range.End != i+1 {
			t.Errorf("cluster %d: expected range [%d:%d), got %v", i, i, i+1, c.Range)
		}
	}
	if run.Width != 18 {
		t.Errorf("expected width 18, got %v", run.Width)
	}
}

func TestMonoShaperWideCluster(t *testing.T) {
	s := NewMonoShaper()
	face := Face{Name: "mono", Size: 10}
	run := s.ShapeRun("a世", segment.NewRange(0, 4), face, LeftToRight)

	if len(run.Clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(run.Clusters))
	}
	if run.Clusters[0].Advance != 6 {
		t.Errorf("expected advance 6 for 'a', got %v", run.Clusters[0].Advance)
	}
	if run.Clusters[1].Advance != 12 {
		t.Errorf("expected advance 12 for wide cluster, got %v", run.Clusters[1].Advance)
	}
	if run.Clusters[1].Range.Start != 1 || run.Clusters[1].Range.End != 4 {
		t.Errorf("expected range [1:4), got %v", run.Clusters[1].Range)
	}
}

func TestMonoShaperSubrange(t *testing.T) {
	s := NewMonoShaper()
	face := Face{Name: "mono", Size: 10}
	run := s.ShapeRun("hello world", segment.NewRange(6, 11), face, LeftToRight)

	if run.Range.Start != 6 || run.Range.End != 11 {
		t.Errorf("expected range [6:11), got %v", run.Range)
	}
	if len(run.Clusters) != 5 {
		t.Fatalf("expected 5 clusters, got %d", len(run.Clusters))
	}
	if run.Clusters[0].Range.Start != 6 {
		t.Errorf("expected absolute cluster offsets, got start %d", run.Clusters[0].Range.Start)
	}
}

func TestMonoShaperEmojiZWJ(t *testing.T) {
	s := NewMonoShaper()
	face := Face{Name: "mono", Size: 10}
	text := "\U0001F468‍\U0001F469‍\U0001F467"
	run := s.ShapeRun(text, segment.NewRange(0, len(text)), face, LeftToRight)

	if len(run.Clusters) != 1 {
		t.Fatalf("expected 1 cluster for joined emoji, got %d", len(run.Clusters))
	}
	if run.Clusters[0].Range.End != len(text) {
		t.Errorf("expected cluster to span %d bytes, got %v", len(text), run.Clusters[0].Range)
	}
}

func TestMetricsLineHeight(t *testing.T) {
	s := NewMonoShaper()
	m := s.Metrics(Face{Size: 10})
	if m.LineHeight() != m.Ascent+m.Descent+m.LineGap {
		t.Error("expected line height to sum the vertical metrics")
	}
	if m.LineHeight() != 12 {
		t.Errorf("expected line height 12, got %v", m.LineHeight())
	}
}

func TestClusterAt(t *testing.T) {
	s := NewMonoShaper()
	run := s.ShapeRun("abc", segment.NewRange(0, 3), Face{Size: 10}, LeftToRight)

	if got := run.ClusterAt(1); got != 1 {
		t.Errorf("expected cluster 1, got %d", got)
	}
	if got := run.ClusterAt(3); got != -1 {
		t.Errorf("expected -1 past end, got %d", got)
	}
}

func TestSplitRunsLTROnly(t *testing.T) {
	runs := SplitRuns("hello world", LeftToRight)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Direction != LeftToRight {
		t.Errorf("expected ltr, got %v", runs[0].Direction)
	}
	if runs[0].Range.Start != 0 || runs[0].Range.End != 11 {
		t.Errorf("expected [0:11), got %v", runs[0].Range)
	}
}

func TestSplitRunsMixed(t *testing.T) {
	// Latin, Hebrew, Latin. Each Hebrew letter is 2 bytes.
	text := "abc אבג def"
	runs := SplitRuns(text, LeftToRight)
	if len(runs) < 2 {
		t.Fatalf("expected multiple runs, got %d: %v", len(runs), runs)
	}

	// Every byte must be covered exactly once across runs.
	covered := make([]bool, len(text))
	rtl := 0
	for _, r := range runs {
		for i := r.Range.Start; i < r.Range.End; i++ {
			if covered[i] {
				t.Fatalf("byte %d covered twice", i)
			}
			covered[i] = true
		}
		if r.Direction == RightToLeft {
			rtl++
		}
	}
	for i, c := range covered {
		if !c {
			t.Errorf("byte %d not covered by any run", i)
		}
	}
	if rtl == 0 {
		t.Error("expected at least one rtl run")
	}
}

func TestSplitRunsEmpty(t *testing.T) {
	if runs := SplitRuns("", LeftToRight); runs != nil {
		t.Errorf("expected nil for empty string, got %v", runs)
	}
}

func TestReorderVisual(t *testing.T) {
	runs := []BidiRun{
		{Range: segment.NewRange(0, 2), Direction: LeftToRight},
		{Range: segment.NewRange(2, 4), Direction: RightToLeft},
		{Range: segment.NewRange(4, 6), Direction: RightToLeft},
		{Range: segment.NewRange(6, 8), Direction: LeftToRight},
	}
	out := reorderVisual(runs)
	if out[1].Range.Start != 4 || out[2].Range.Start != 2 {
		t.Errorf("expected rtl sequence reversed, got %v", out)
	}
	if out[0].Range.Start != 0 || out[3].Range.Start != 6 {
		t.Errorf("expected ltr runs to stay in place, got %v", out)
	}
}
