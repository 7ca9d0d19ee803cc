// Package tradetrackr provides the functions and types for keeping a personal
// trading-performance journal. It is designed to be local-first: everything
// lives in a single JSON file the user fully controls.
//
// The core functionalities include:
//   - Journal Management: Recording trading weeks, the trades inside them,
//     and the participants who share in the results.
//   - Profit Sharing: Per-participant default ratios with per-week overrides,
//     and the proportional allocation of a week's net gain.
//   - Statistics: A stateless derivation layer that computes per-week and
//     cross-week summaries, chart series and the overall overview.
//   - Data Persistence: Encoding and decoding the journal to and from a
//     durable JSON file, plus a portable backup format and a CSV report.
//
// This package serves as the foundational logic for the `tradetrackr`
// command-line tool.
package tradetrackr
