// Package panel serves the dictionary panel as a JSON API.
//
// HTTP API
//
//	GET    /health
//	GET    /dict?q=           entries matching q with total and shown counts
//	PUT    /dict/{cipher}     body {"decoded": "..."}; add or override an entry
//	DELETE /dict/{cipher}     remove an entry, hiding any bundled value
//	POST   /dict/import       raw JSON object of cipher -> decoded
//	GET    /dict/export       merged dictionary as a JSON attachment
//	POST   /page/apply        body {"target": "..."} (optional); decode a page
//	POST   /page/restore      body {"target": "..."} (optional); reload a page
//
// Every response except export carries a "status" line. Page failures are
// reported in that line with 200 so the panel stays usable.
package panel
