// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means no transport had both an address and a
// handler, so there is nothing to serve.
var errNoServersAreCreated = errors.New("no servers are created: set SERVER_ADDRESS or SERVER_GRPC_ADDRESS")
