// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// Every failing group contributes its own sentinel error; the results are
// joined so that a misconfigured deployment sees all problems at once.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.AdminLogin == "" || cfg.App.AdminPasswordHash == "" {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	if cfg.Workers.StartConcurrency < 0 {
		err = errors.Join(err, ErrInvalidWorkerConfigs)
	}

	return err
}

func (cfg *ClientConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
