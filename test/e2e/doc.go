/*
Package e2e runs end-to-end specs against a complete shoedryer stack.

# Package Structure

	test/e2e/
	├── doc.go              This file
	├── e2e_suite_test.go   Ginkgo runner
	├── pool_test.go        Specs driving the pool through pkg/client
	└── infra/
	    └── infra.go        Stack: database, pool, handlers and server in-process

# Stack

infra.StartStack wires the store, the settings and run services, the pool and the
HTTP server the same way the run command does, and serves them through an
httptest server with JWT authentication enabled. Specs talk to it only through
pkg/client, so they exercise routing, authentication, parameter binding and
error mapping as a real operator would.

A stack started with a DataFolder persists its journal; starting a second stack on
the same folder simulates a restart.

# Running

	go test ./test/e2e/...
*/
package e2e
