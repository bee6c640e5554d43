// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoManagementAPI is returned by NewHandlers when the server
// configuration carries no HTTP address. The management API is the only way
// to administer clients, so starting without it is a misconfiguration.
var errNoManagementAPI = errors.New("management API address is not configured")
