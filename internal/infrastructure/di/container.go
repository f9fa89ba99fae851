package di

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pumpsui/pumpsui_service/internal/infrastructure/config"
	"github.com/pumpsui/pumpsui_service/pkg/constants"
	"github.com/pumpsui/pumpsui_service/pkg/logger"
	"github.com/pumpsui/pumpsui_service/pkg/metrics"
	"github.com/pumpsui/pumpsui_service/pkg/sui"
)

// Container holds the application dependencies
type Container struct {
	Config    *config.Config
	Logger    *logger.Logger
	Constants *constants.Set
}

// NewContainer builds the effective constant set for this deployment and
// refuses to start when any value is malformed.
func NewContainer(cfg *config.Config, log *logger.Logger) (*Container, error) {
	set, err := BuildConstantSet(constants.Default(), cfg.Constants.Overrides, log)
	if err != nil {
		return nil, err
	}

	metrics.ConstantSetSize.Set(float64(set.Len()))

	return &Container{
		Config:    cfg,
		Logger:    log,
		Constants: set,
	}, nil
}

// BuildConstantSet applies overrides to base and validates the result
func BuildConstantSet(base *constants.Set, overrides map[string]string, log *logger.Logger) (*constants.Set, error) {
	set := base
	if len(overrides) > 0 {
		var err error
		set, err = base.WithOverrides(overrides)
		if err != nil {
			return nil, fmt.Errorf("apply constant overrides: %w", err)
		}

		keys := make([]string, 0, len(overrides))
		for k := range overrides {
			keys = append(keys, strings.ToUpper(strings.TrimSpace(k)))
		}
		sort.Strings(keys)
		for _, k := range keys {
			entry, _ := set.Entry(k)
			value := entry.Value
			if entry.Kind == constants.KindObjectID {
				value = sui.ShortObjectID(value)
			}
			log.Info("Constant override applied", "key", k, "value", value)
		}
	}

	if err := constants.Validate(set); err != nil {
		log.Error("Constant set failed validation", "invalid_keys", constants.InvalidKeys(err), "error", err)
		return nil, fmt.Errorf("invalid constant set: %w", err)
	}

	log.Info("Constant set loaded", "count", set.Len(), "overrides", len(overrides))
	return set, nil
}
