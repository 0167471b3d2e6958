// Package handlers implements the HTTP API layer of shoedryer.
//
// Handlers delegate to the services layer and only deal with request validation,
// response formatting and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request validation                                           │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  Pool │ RunService │ SettingsService                            │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler implements the ServerInterface of api/v1 and is registered with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
// Pool Endpoints (pool.go):
//
//	┌────────┬───────────────┬───────────────────────────────────────────┐
//	│ Method │ Endpoint      │ Description                               │
//	├────────┼───────────────┼───────────────────────────────────────────┤
//	│ GET    │ /pool         │ Pool state, counts and command gates      │
//	│ POST   │ /pool         │ Execute the Start command                 │
//	│ DELETE │ /pool         │ Execute the Stop command                  │
//	│ POST   │ /pool/cancel  │ Cancel the running Start command          │
//	│ PUT    │ /pool/workers │ Set and persist the next worker count     │
//	└────────┴───────────────┴───────────────────────────────────────────┘
//
// POST /pool accepts an optional {"workers": n} body and a restart query flag. Without
// restart the Start gate applies, so starting a running pool fails with 409.
//
// Run Endpoints (runs.go):
//
//	┌────────┬────────────┬──────────────────────────────────────────────┐
//	│ Method │ Endpoint   │ Description                                  │
//	├────────┼────────────┼──────────────────────────────────────────────┤
//	│ GET    │ /runs      │ Journaled runs, newest first, paginated      │
//	│ GET    │ /runs/{id} │ One run with its worker outcomes             │
//	└────────┴────────────┴──────────────────────────────────────────────┘
//
// Pagination uses limit (default 20, max 100) and offset. The outcome parameter can be
// repeated to filter by several outcomes.
//
// # Error Handling
//
//	┌──────────────────────────────┬───────────────────────────────┐
//	│ Error                        │ HTTP Status                   │
//	├──────────────────────────────┼───────────────────────────────┤
//	│ InvalidWorkerCountError      │ 400 Bad Request               │
//	│ ResourceNotFoundError        │ 404 Not Found                 │
//	│ GateViolationError           │ 409 Conflict                  │
//	│ PoolClosedError              │ 409 Conflict                  │
//	│ anything else                │ 500 Internal Server Error     │
//	└──────────────────────────────┴───────────────────────────────┘
//
// Errors are returned as {"error": "message"}.
package handlers
