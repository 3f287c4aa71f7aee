// SPDX-License-Identifier: Apache-2.0

// Package client implements the companion sync client runtime.
//
// It wires the entity cache, persisted storage, the backend adapter and the
// background synchronization job into a single process lifecycle.
package client
