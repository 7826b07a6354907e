package main

import (
	"github.com/pkg/errors"
	"github.com/united-manufacturing-hub/umh-utils/env"
)

const defaultMaxInput = 16 << 20

type config struct {
	Forgiving     bool
	RejectInvalid bool
	Stream        bool
	// MaxInput caps the bytes read per input in non-stream mode.
	// Zero means no limit.
	MaxInput int
}

func loadConfig() (config, error) {
	var cfg config
	var err error

	if cfg.Forgiving, err = env.GetAsBool("B64_FORGIVING", false, true); err != nil {
		return cfg, errors.Wrap(err, "B64_FORGIVING")
	}
	if cfg.RejectInvalid, err = env.GetAsBool("B64_REJECT_INVALID", false, false); err != nil {
		return cfg, errors.Wrap(err, "B64_REJECT_INVALID")
	}
	if cfg.Stream, err = env.GetAsBool("B64_STREAM", false, false); err != nil {
		return cfg, errors.Wrap(err, "B64_STREAM")
	}
	if cfg.MaxInput, err = env.GetAsInt("B64_MAX_INPUT", false, defaultMaxInput); err != nil {
		return cfg, errors.Wrap(err, "B64_MAX_INPUT")
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.MaxInput < 0 {
		return errors.Errorf("B64_MAX_INPUT must not be negative, got %d", c.MaxInput)
	}
	if c.RejectInvalid && !c.Forgiving {
		return errors.New("B64_REJECT_INVALID requires B64_FORGIVING")
	}
	if c.Stream && !c.Forgiving {
		return errors.New("B64_STREAM requires B64_FORGIVING")
	}
	return nil
}
