package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	for range 3 {
		stop := Track("meshing.BuildChunkMesh")
		time.Sleep(time.Millisecond)
		stop()
	}
	Track("renderer.Render")()

	if got := Count("meshing.BuildChunkMesh"); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
	snap := Snapshot()
	if snap["meshing.BuildChunkMesh"] < 3*time.Millisecond {
		t.Fatalf("total = %v, want >= 3ms", snap["meshing.BuildChunkMesh"])
	}

	top := TopN(1)
	if !strings.HasPrefix(top, "meshing.BuildChunkMesh:") || strings.Contains(top, ",") {
		t.Fatalf("TopN(1) = %q", top)
	}
	if got := TopN(10); !strings.Contains(got, "renderer.Render:") {
		t.Fatalf("TopN(10) = %q", got)
	}

	ResetFrame()
	if len(Snapshot()) != 0 || Count("renderer.Render") != 0 {
		t.Fatal("ResetFrame left totals behind")
	}
}
