// Package writers turns frames into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, pretty blocks, JSON/JSONL).
//   • Scene stays domain-only; Pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   • The HTML artifact is written atomically so a failed run never leaves
//     a truncated page behind.
package writers
