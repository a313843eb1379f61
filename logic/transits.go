package logic

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"cosmind-backend/models"
	"cosmind-backend/pkg"
)

const transitNamespace = "transits"

// TransitCache is the namespaced key-value boundary used for the shared
// transit forecast. *pkg.KVStore satisfies it.
type TransitCache interface {
	Get(namespace, key string) ([]byte, error)
	Set(namespace, key string, value []byte) error
}

// TransitLogic serves the planetary transit forecast. The forecast for a
// given day is shared between users: the first request runs the metered
// workflow and caches the result under the date key; later reads hit the
// cache and cost nothing.
type TransitLogic struct {
	workflow *FeatureWorkflow
	cache    TransitCache
	logger   *zap.Logger
}

func NewTransitLogic(workflow *FeatureWorkflow, cache TransitCache, logger *zap.Logger) *TransitLogic {
	return &TransitLogic{
		workflow: workflow,
		cache:    cache,
		logger:   logger,
	}
}

// Current returns today's forecast, generating it through the metered
// workflow on a cache miss. cached reports whether the read was free.
func (l *TransitLogic) Current(ctx context.Context, userID uint64) (*models.TransitAnalysis, bool, error) {
	key := time.Now().Format("2006-01-02")

	if data, err := l.cache.Get(transitNamespace, key); err == nil {
		var analysis models.TransitAnalysis
		if err := json.Unmarshal(data, &analysis); err == nil {
			return &analysis, true, nil
		}
		l.logger.Warn("discarding corrupt transit cache entry", zap.String("date", key))
	} else if !errors.Is(err, pkg.ErrKeyNotFound) {
		return nil, false, err
	}

	result, err := l.workflow.Run(ctx, userID, models.FeatureTransits, nil)
	if err != nil {
		return nil, false, err
	}
	analysis, ok := result.Record.(*models.TransitAnalysis)
	if !ok {
		return nil, false, models.ErrUnknownFeature
	}

	if data, err := json.Marshal(analysis); err == nil {
		if err := l.cache.Set(transitNamespace, key, data); err != nil {
			l.logger.Error("failed to cache transit forecast", zap.String("date", key), zap.Error(err))
		}
	}

	return analysis, false, nil
}
