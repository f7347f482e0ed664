package graph

import "sync"

// CountParallel counts contiguous shards of fields concurrently and merges
// them in shard order. The result equals CountFields on the same input.
func CountParallel(fields []*string, delimiter string, workers int) *Counts {
	if workers <= 1 || len(fields) < 2*workers {
		return CountFields(fields, delimiter)
	}

	shardSize := (len(fields) + workers - 1) / workers
	shards := make([]*Counts, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * shardSize
		if lo >= len(fields) {
			shards[w] = NewCounts()
			continue
		}
		hi := lo + shardSize
		if hi > len(fields) {
			hi = len(fields)
		}
		wg.Add(1)
		go func(w int, part []*string) {
			defer wg.Done()
			shards[w] = CountFields(part, delimiter)
		}(w, fields[lo:hi])
	}
	wg.Wait()

	total := NewCounts()
	for _, s := range shards {
		total.Merge(s)
	}
	return total
}
