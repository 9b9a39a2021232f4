// Package mongo connects to MongoDB with the official v2 driver and backs
// uniqueness rules with a field lookup.
//
// Connect pings the primary with retries. FieldLookup counts documents whose
// field equals the value (limit 1) and satisfies validator.Lookup.
// NewTargetLookup resolves a "collection.field" target inside a database.
//
// # Usage
//
//	client, err := mongo.Connect(ctx, cfg, logger)
//	if err != nil {
//	    return err
//	}
//	defer client.Disconnect(ctx)
//
//	handles, err := mongo.NewTargetLookup(client.Database(cfg.Database), "profiles.handle")
//	if err != nil {
//	    return err
//	}
//	rule := validator.Unique(handles)
package mongo
