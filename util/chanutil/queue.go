package chanutil

// Queue forwards the values sent to In to Out without a size limit, in the order they were sent.
type Queue struct {
	in, out chan any
	stop    chan struct{}
	stopped chan struct{}
	pending []any
}

func NewQueue(inSize, outSize int) *Queue {
	q := &Queue{
		in:      make(chan any, inSize),
		out:     make(chan any, outSize),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go q.forward()
	return q
}

func (q *Queue) In() chan<- any {
	return q.in
}

func (q *Queue) Out() <-chan any {
	return q.out
}

// Stops forwarding and waits for it to end. Pending values are dropped. Must be called once.
func (q *Queue) Close() {
	close(q.stop)
	<-q.stopped
}

func (q *Queue) forward() {
	defer close(q.stopped)
	for {
		// a nil out channel disables the send case
		var out chan any
		var head any
		if len(q.pending) > 0 {
			out = q.out
			head = q.pending[0]
		}
		select {
		case <-q.stop:
			return
		case v := <-q.in:
			q.pending = append(q.pending, v)
		case out <- head:
			q.pending[0] = nil
			q.pending = q.pending[1:]
		}
	}
}
