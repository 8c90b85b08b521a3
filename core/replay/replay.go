// Package replay applies recorded workloads to an LRU cache and reports what happened.
package replay

import (
	"fmt"

	"github.com/pyropy/lrucache/core/model"
	"github.com/pyropy/lrucache/lib/logger"
	"github.com/pyropy/lrucache/lib/lru_cache"
	"github.com/pyropy/lrucache/lib/utils"
	"go.uber.org/zap"
)

var log, _ = logger.New("replay")

const DemoCapacity = 2

// DemoOps is the classic two slot walkthrough: 2 is evicted after 1 is read,
// then 1 is evicted by 4.
func DemoOps() []model.Op {
	return []model.Op{
		model.Put(1, 10),
		model.Put(2, 20),
		model.Get(1),
		model.Put(3, 30),
		model.Get(2),
		model.Put(4, 40),
		model.Get(1),
		model.Get(3),
		model.Get(4),
	}
}

// Step is the outcome of a single op. For puts Hit means the key was already cached.
type Step struct {
	Op           model.Op
	Hit          bool
	Value        int
	Evicted      bool
	EvictedKey   int
	EvictedValue int
	Keys         []int
}

type Report struct {
	Capacity  int
	Steps     []Step
	// Hits and Misses count gets only, puts are split into Inserts and Updates.
	Hits      int
	Misses    int
	Inserts   int
	Updates   int
	Evictions int
	// EvictedMisses counts get misses on keys the cache had evicted earlier.
	EvictedMisses int
	DistinctKeys  []int
	Keys          []int
}

type Replayer struct {
	Log *zap.SugaredLogger
}

func NewReplayer(log *zap.SugaredLogger) *Replayer {
	return &Replayer{
		Log: log,
	}
}

// Replay runs ops against a fresh cache with the default logger.
func Replay(capacity int, ops []model.Op) (*Report, error) {
	return NewReplayer(log).Replay(capacity, ops)
}

func (r *Replayer) Replay(capacity int, ops []model.Op) (*Report, error) {
	var step *Step
	var evictedKeys []int
	touched := make([]int, 0, len(ops))

	onEvict := func(key, value int) {
		r.Log.Infow("evict", "key", key, "value", value)
		step.Evicted = true
		step.EvictedKey = key
		step.EvictedValue = value
		evictedKeys = append(evictedKeys, key)
	}

	cache, err := lru_cache.NewLRU[int, int](capacity, lru_cache.WithEvictCallback(onEvict))
	if err != nil {
		return nil, err
	}

	report := &Report{
		Capacity: capacity,
		Steps:    make([]Step, 0, len(ops)),
	}

	for _, op := range ops {
		step = &Step{Op: op}
		touched = append(touched, op.Key)

		switch op.Kind {
		case model.OpGet:
			step.Value, step.Hit = cache.Get(op.Key)
			if step.Hit {
				report.Hits++
			} else {
				report.Misses++
				if utils.Contains(evictedKeys, op.Key) {
					report.EvictedMisses++
				}
			}
			r.Log.Debugw("get", "key", op.Key, "hit", step.Hit, "value", step.Value)
		case model.OpPut:
			step.Hit = cache.Contains(op.Key)
			step.Value = op.Value
			cache.Put(op.Key, op.Value)
			if step.Hit {
				report.Updates++
			} else {
				report.Inserts++
			}
			r.Log.Debugw("put", "key", op.Key, "value", op.Value, "update", step.Hit)
		default:
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidOp, op.Kind)
		}
		if step.Evicted {
			report.Evictions++
		}

		step.Keys = cache.Keys()
		report.Steps = append(report.Steps, *step)
	}

	report.Keys = cache.Keys()
	report.DistinctKeys = utils.Dedup(touched)

	r.Log.Infow("replay", "status", "done", "ops", len(ops), "hits", report.Hits, "misses", report.Misses, "inserts", report.Inserts, "updates", report.Updates, "evictions", report.Evictions)

	return report, nil
}
