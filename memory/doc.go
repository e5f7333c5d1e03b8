// Package memory holds the in-process conversation transcript.
//
// The transcript is append-only for the lifetime of one session and is
// discarded on exit. It is owned exclusively by the orchestration loop;
// nothing else mutates it.
package memory
