// Package backend implements the driven ports backed by the GrowLaw
// HTTP API.
//
// A single Client carries the base URL, the shared http.Client and a
// proactive rate limiter; the capability types (PlacesAPI, AnalysisAPI,
// DocumentAPI, RankingAPI, AssistantAPI) are thin wrappers sharing it.
//
// Server error bodies carry either {"error": "..."} or
// {"message": "..."}; both are surfaced through APIError.
package backend
