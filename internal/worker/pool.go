// Package worker provides a worker pool for searching root moves in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// WorkItem represents one root move to be searched.
type WorkItem struct {
	Index int // Generation order of the move, used to reduce results deterministically
	Move  chess.Move
}

// ProcessResult represents the outcome of searching one root move.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Score int    // Score from the mover's point of view
	Nodes uint64 // Positions visited (leaf count for perft)
	Err   error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans root moves out to a fixed number of goroutines. A Pool runs
// once.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Stop signals workers to skip the moves they have not started yet.
// Moves already being searched run to completion.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Run searches every move, waits for the workers and returns the results
// indexed by generation order. Moves skipped after Stop are left zero and
// marked as missing in the returned done slice.
func (p *Pool) Run(moves []chess.Move) (results []ProcessResult, done []bool) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go func() {
		for i, m := range moves {
			if p.IsStopped() {
				break
			}
			p.workChan <- WorkItem{Index: i, Move: m}
		}
		close(p.workChan)
		p.wg.Wait()
		close(p.resultChan)
	}()

	results = make([]ProcessResult, len(moves))
	done = make([]bool, len(moves))
	for r := range p.resultChan {
		results[r.Index] = r
		done[r.Index] = true
	}
	return results, done
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}
