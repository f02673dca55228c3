package disjointset

import (
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// loggerOrDefault returns l, or the process-wide logger when l is nil.
func loggerOrDefault(l *zap.Logger) *zap.Logger {
	if l != nil {
		return l
	}
	return log.L()
}

// warnSpanningForest logs that a spanning tree over n points could not be
// completed, i.e. the input graph is disconnected.
func warnSpanningForest(lg *zap.Logger, algo Algorithm, n, edges int) {
	lg.Warn("disjointset: input is disconnected, returning a spanning forest",
		zap.String("algorithm", string(algo)),
		zap.Int("points", n),
		zap.Int("edges", edges),
		zap.Int("components", n-edges))
}
