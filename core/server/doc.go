// Package server runs an http.Handler with graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, r))
//	return g.Wait()
//
// Run serves until the context is canceled and then calls Stop, which waits
// up to the shutdown timeout for in-flight requests.
package server
