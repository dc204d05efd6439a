// Package feed exposes the public contracts for loading and parsing
// product feeds: Source/Document origin wrappers, the Loader and Parser
// stage interfaces, and the Feed/Entry model whose extension collections
// carry the gm-namespaced metadata elements. Implementations live under
// internal/feed to keep decoding details out of the public API.
package feed
