/*
Package walker provides a neighbor-graph builder over 12-bit phonetic
feature vectors and a weighted, temperature-controlled random-walk sampler
on top of it.

A Corpus of annotated syllables is loaded once (from SQLite, JSON, or plain
records), a NeighborGraph is built once at startup, and a Walker then serves
any number of concurrent walk requests against that shared read-only state.
Walks are deterministic given a seed, and named WalkProfiles bundle the
sampling parameters into reusable presets.
*/
package walker
