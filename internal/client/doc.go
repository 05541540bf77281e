// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, and the background sync
// tracker into a single process lifecycle: the tracker follows the identity
// provider in the background while the UI signs the user in and shows the
// dashboard.
package client
