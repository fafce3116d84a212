// Package internal drives the loop rewriter over one compilation unit at a
// time.
//
// Engine parses a unit, resolves its names, honours nolint comments and
// rewrites every admitted for-each loop in place. The Result it returns
// carries the rewritten tree, one loops.Decision per candidate loop and the
// matching report entries.
//
// Watcher re-runs a callback whenever a Java source under a watched
// directory changes.
//
// Usage:
//
//	engine := internal.NewEngine(logger, nil)
//	res, err := engine.Run("app/Main.java", src)
//	if err != nil {
//	    // the unit is left untouched
//	}
//	for _, issue := range res.Issues {
//	    fmt.Printf("%s: %s\n", issue.Start, issue.Message)
//	}
//
// This package is intended for internal use within the tool and should not be
// imported by external packages.
package internal
