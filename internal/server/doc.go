// Package server provides the HTTP server of shoedryer.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│  GET /health (no middleware)                                  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  ginzap.Ginzap (request logging, "http" logger)         │  │
//	│  │  ginzap.RecoveryWithZap (panic recovery)                │  │
//	│  │  JWTAuth (only when Auth.Enabled)                       │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// Gin runs in release mode when ServerMode is "prod" and in debug mode otherwise.
// Unknown routes return a JSON 404.
//
// # Authentication
//
// With Auth.Enabled every /api/v1 route requires an "Authorization: Bearer" header
// carrying an HS256 token signed with Auth.Secret and issued by Auth.Issuer. Tokens
// must carry an expiration. SignToken issues such tokens; the ctl command uses it.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-shutdownCh
//	srv.Stop(ctx)
//
// Start blocks until the server stops and returns nil on a graceful stop. Stop waits
// for in-flight requests until ctx expires.
package server
