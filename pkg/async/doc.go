// Package async provides a small generic Future used to run validations
// concurrently and collect their outcomes.
//
// Async starts a function on its own goroutine and returns a *Future
// immediately. The caller waits with Await, bounds the wait with
// AwaitContext, or polls with IsComplete. Resolved wraps a value that is
// already known, which lets synchronous and asynchronous paths share one type.
//
// WaitAll and Settle coordinate several futures: WaitAll returns every result
// plus the joined errors, Settle keeps each error next to its own result.
//
// # Usage
//
//	ctx := context.Background()
//	futures := make([]*async.Future[bool], 0, len(values))
//	for _, v := range values {
//	    futures = append(futures, async.Async(ctx, v, check))
//	}
//	for i, out := range async.Settle(futures...) {
//	    fmt.Println(values[i], out.Value, out.Err)
//	}
//
// # Error Handling
//
// The package defines no error types of its own; a future completes with the
// error returned by the callback, or with ctx.Err() if the context ended
// before the callback started or while AwaitContext was waiting.
package async
