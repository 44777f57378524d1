package terrain

import "sync"

// Rebuilder manages regeneration with latest-wins semantics: a request
// issued while another build is in flight supersedes it, and a superseded
// result is discarded rather than installed over a newer one.
type Rebuilder struct {
	gen *Generator

	mu      sync.Mutex
	seq     uint64
	current *HeightField
	lastErr error
}

// NewRebuilder wraps a generator.
func NewRebuilder(gen *Generator) *Rebuilder {
	return &Rebuilder{gen: gen}
}

// Request starts an asynchronous build. The returned channel closes once the
// request has been resolved, whether its result was installed or discarded.
func (r *Rebuilder) Request(spec GridSpec, params FBMParams) <-chan struct{} {
	r.mu.Lock()
	r.seq++
	id := r.seq
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		hf, err := r.gen.BuildHeightField(spec, params)

		r.mu.Lock()
		defer r.mu.Unlock()
		if id != r.seq {
			// A newer request took over while this one was sampling.
			return
		}
		if err != nil {
			r.lastErr = err
			return
		}
		r.current = hf
		r.lastErr = nil
	}()
	return done
}

// Current returns the most recently installed height field and the error of
// the latest resolved request. The field stays valid when a later build
// fails validation.
func (r *Rebuilder) Current() (*HeightField, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.lastErr
}
