// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the bot keeper management CLI.
//
// [App] parses a subcommand and its flags, calls the management API through
// an [adapter.ManagementAdapter] and renders the result to its output
// writer. Client listings are drawn as lipgloss tables.
package client
