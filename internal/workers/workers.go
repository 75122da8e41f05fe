package workers

// Workers is an aggregate that runs every registered background worker.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers into a single aggregate.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every registered worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
