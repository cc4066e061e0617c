// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command fixchevrons updates the ChevronRight icons in app/account.jsx,
// relative to the working directory.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/jsxfix/pkg/config"
	"github.com/walteh/jsxfix/pkg/fix"
	"github.com/walteh/jsxfix/pkg/log"
	"github.com/walteh/jsxfix/pkg/operation"
	"github.com/walteh/jsxfix/pkg/status"
)

func main() {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	logger := log.NewWithZerolog(os.Stdout, zlog)
	ctx := log.NewContext(zlog.WithContext(context.Background()), logger)

	if err := run(ctx, zlog); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, zlog zerolog.Logger) error {
	cfg := config.Default()
	files := status.New(cfg.Root, &zlog, status.Options{InPlace: cfg.InPlace, Backup: cfg.Backup})

	ops, err := operation.Build(cfg, files, false, false, fix.ChevronName)
	if err != nil {
		return err
	}
	return operation.NewRunner(&zlog, false).Run(ctx, ops...)
}
