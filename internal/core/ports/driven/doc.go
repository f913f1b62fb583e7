// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - PlacesAPI: Law-firm directory and city search
//   - AnalysisAPI: Firm website analysis jobs (create + poll)
//   - DocumentAPI: Document grading uploads and history
//   - RankingAPI: AI assistant visibility checks
//   - AssistantAPI: Free-form assistant search queries
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Local cache of completed document gradings. Without
//     it, the history command is backend-only.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
