// Package store provides the persistence layer for MacroMind.
//
// The package defines the [KV] interface, a minimal key-value contract with
// two engines: [Bolt] (BoltDB, the default) and the SQLite engine in the
// sqlite sub-package. [Open] selects one by [Driver].
//
// # Records
//
// Application state is kept under four independent logical keys
// ([KeyEntries], [KeySavedFoods], [KeyGoals], [KeyTheme]). Values are JSON
// documents holding the full current value; there is no incremental diff
// and no schema version.
//
// # Default fallback
//
// [Load] never fails its caller: a missing key returns the supplied
// default, and a read or parse failure is logged and also returns the
// default. Because keys are independent, a corrupt entry history does not
// affect goals or favorites:
//
//	records := store.NewRecords(kv, logger)
//	goals := records.Goals() // DefaultGoals() when missing or corrupt
package store
