package meshing

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"mini-vox/internal/profiling"
	"mini-vox/internal/world"
)

// MeshJob represents a meshing job request
type MeshJob struct {
	Coord world.ChunkCoord
	// Chunk must not be mutated while the job is queued or running;
	// submit a Clone when the world may still be edited.
	Chunk *world.Chunk
	// Result channel - will be sent the result when done
	ResultChan chan<- MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	Coord world.ChunkCoord
	Mesh  Mesh
	Error error
}

// WorkerPool manages goroutines for mesh generation
type WorkerPool struct {
	jobQueue  chan MeshJob
	workers   int
	opts      Options
	slowBuild time.Duration
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewWorkerPool creates a new mesh worker pool. Builds slower than
// slowBuild are logged; zero disables the log.
func NewWorkerPool(workers, queueSize int, opts Options, slowBuild time.Duration) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue:  make(chan MeshJob, queueSize),
		workers:   workers,
		opts:      opts,
		slowBuild: slowBuild,
		ctx:       ctx,
		cancel:    cancel,
	}

	for i := range workers {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// SubmitJob submits a mesh generation job to the pool
// Returns true if job was submitted successfully, false if queue is full
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking submits a job and blocks until it's queued, ctx is done,
// or the pool shuts down.
func (p *WorkerPool) SubmitJobBlocking(ctx context.Context, job MeshJob) error {
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return errors.New("mesh pool shut down")
	}
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			start := time.Now()
			stop := profiling.Track("meshing.BuildChunkMesh")
			mesh, err := BuildChunkMeshWithOptions(job.Coord, job.Chunk, p.opts)
			stop()
			if d := time.Since(start); p.slowBuild > 0 && d > p.slowBuild {
				log.Printf("mesh worker %d: slow build of chunk (%d, %d): %v", id, job.Coord.X, job.Coord.Z, d)
			}

			select {
			case job.ResultChan <- MeshResult{Coord: job.Coord, Mesh: mesh, Error: err}:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// BuildWorld meshes every chunk of w on the pool. Chunks are cloned before
// submission, so w may be edited as soon as BuildWorld has queued them.
// Results are returned in grid order; failed chunks are left out and their
// errors joined.
func (p *WorkerPool) BuildWorld(ctx context.Context, w *world.World) ([]ChunkMesh, error) {
	coords := w.Coords()
	results := make(chan MeshResult, len(coords))

	submitted := 0
	for _, cc := range coords {
		c, err := w.Chunk(cc)
		if err != nil {
			return nil, err
		}
		if err := p.SubmitJobBlocking(ctx, MeshJob{Coord: cc, Chunk: c.Clone(), ResultChan: results}); err != nil {
			return nil, err
		}
		submitted++
	}

	byCoord := make(map[world.ChunkCoord]Mesh, submitted)
	var errs []error
	for range submitted {
		select {
		case r := <-results:
			if r.Error != nil {
				errs = append(errs, r.Error)
				continue
			}
			byCoord[r.Coord] = r.Mesh
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	out := make([]ChunkMesh, 0, len(byCoord))
	for _, cc := range coords {
		if m, ok := byCoord[cc]; ok {
			out = append(out, ChunkMesh{Coord: cc, Mesh: m})
		}
	}
	return out, errors.Join(errs...)
}

// Shutdown stops the workers and waits for them to exit.
// Queued jobs that have not started are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLength returns the current number of jobs in the queue
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}
