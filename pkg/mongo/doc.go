// Package mongo provides MongoDB connection management for the booking
// page service.
//
// Configuration is entirely environment-driven (see Config) and injected
// through constructors, keeping credentials out of source. New retries
// the initial connection to ride out transient startup failures, and
// Healthcheck yields a probe function for the readiness endpoint.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "barberpages")
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(ctx)
package mongo
