// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package telemetry exposes portfolio usage as Prometheus metrics.
//
// All collectors live on a private registry served by Metrics.Handler, so
// tests and multiple servers in one process never collide. A nil *Metrics
// records nothing.
package telemetry
